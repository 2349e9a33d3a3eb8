// file: internals/features/school/teachers/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/teachers/controller"
)

func TeacherUserRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := user.Group("/teachers")
	grp.Get("/", h.List)
	grp.Get("/:id/courses", h.AssignedCourses)
	grp.Get("/:id", h.GetByID)
}
