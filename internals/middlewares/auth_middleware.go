// internals/middlewares/auth_middleware.go
package middlewares

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"srs_backend/internals/configs"
	helperAuth "srs_backend/internals/helpers/auth"
)

// AuthJWT verifies the Bearer token and hydrates user_id/role into Locals.
// Token issuance lives outside this service; we only validate.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals(helperAuth.LocRole, role)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
