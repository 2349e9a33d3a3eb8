// file: internals/features/school/guardians/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "srs_backend/internals/features/school/guardians/controller"
)

func GuardianAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := ctl.New(db, validator.New())

	grp := admin.Group("/guardians")
	grp.Put("/:id", h.Update)
}
