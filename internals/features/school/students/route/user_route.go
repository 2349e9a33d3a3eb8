// file: internals/features/school/students/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/students/controller"
)

func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := user.Group("/students")
	grp.Get("/", h.List)
	grp.Get("/count", h.CountByClassSection)
	grp.Get("/:id", h.GetByID)
}
