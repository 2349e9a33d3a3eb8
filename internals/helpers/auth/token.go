// file: internals/helpers/auth/token.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"srs_backend/internals/constants"
)

const (
	LocUserID = "user_id"
	LocRole   = "role"
)

// GetUserIDFromToken reads the user id hydrated into Locals by the JWT middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, errors.New("user_id not found in token")
	}
	return uuid.Parse(strings.TrimSpace(s))
}

func roleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return roleFromLocals(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return roleFromLocals(c) == constants.RoleTeacher }
func IsStudent(c *fiber.Ctx) bool { return roleFromLocals(c) == constants.RoleStudent }
