// file: internals/features/school/teachers/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/teachers")
	grp.Post("/", h.Create)
	grp.Post("/bulk-upload", h.BulkUpload)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/courses", h.AssignCourse)
	grp.Delete("/:id/courses/:courseId", h.RemoveAssignment)
}
