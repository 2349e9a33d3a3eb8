// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"srs_backend/internals/constants"
	courseRoute "srs_backend/internals/features/school/courses/route"
	guardianRoute "srs_backend/internals/features/school/guardians/route"
	scheduleRoute "srs_backend/internals/features/school/schedules/route"
	studentRoute "srs_backend/internals/features/school/students/route"
	teacherRoute "srs_backend/internals/features/school/teachers/route"
	"srs_backend/internals/middlewares"
)

// SetupRoutes mounts the two route trees:
//
//	/api/a  admin-only mutations (JWT + admin role)
//	/api/u  authenticated reads and per-user views
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	admin := api.Group("/a",
		middlewares.AuthJWT(),
		middlewares.RequireRoles(constants.RoleAdmin),
	)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	guardianRoute.GuardianAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	log.Println("[INFO] admin routes mounted at /api/a")

	user := api.Group("/u", middlewares.AuthJWT())
	scheduleRoute.ScheduleUserRoutes(user, db)
	studentRoute.StudentUserRoutes(user, db)
	guardianRoute.GuardianUserRoutes(user, db)
	teacherRoute.TeacherUserRoutes(user, db)
	courseRoute.CourseUserRoutes(user, db)
	log.Println("[INFO] user routes mounted at /api/u")
}
