// file: internals/features/school/courses/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/courses/controller"
)

func CourseUserRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := user.Group("/courses")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
}
