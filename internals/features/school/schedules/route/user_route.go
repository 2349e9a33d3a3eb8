// file: internals/features/school/schedules/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/schedules/controller"
)

func ScheduleUserRoutes(user fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := user.Group("/schedules")
	grp.Get("/", h.List)
	grp.Get("/student/:studentId/week", h.StudentWeek)
	grp.Get("/student/:studentId", h.StudentByDay)
	grp.Get("/teacher/:teacherId/summary", h.TeacherSummary)
	grp.Get("/:id", h.GetByID)
}
