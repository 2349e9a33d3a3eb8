// file: internals/features/school/guardians/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/guardians/controller"
)

func GuardianUserRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := user.Group("/guardians")
	grp.Get("/", h.List)
	grp.Get("/by-email", h.FindByEmail)
	grp.Get("/:id", h.GetByID)
}
