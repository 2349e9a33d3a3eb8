// file: internals/features/school/schedules/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/schedules/controller"
)

// Admin-only: mutations run through the conflict checker.
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/schedules")
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}
