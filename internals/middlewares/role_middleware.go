package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "srs_backend/internals/helpers/auth"
)

// RequireRoles rejects the request unless the token role matches one of the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(helperAuth.LocRole).(string)
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}
