// file: internals/features/school/courses/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/courses/controller"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/courses")
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}
