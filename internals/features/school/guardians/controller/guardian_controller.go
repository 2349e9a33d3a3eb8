// file: internals/features/school/guardians/controller/guardian_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "srs_backend/internals/features/school/guardians/dto"
	gm "srs_backend/internals/features/school/guardians/model"
	helper "srs_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

// Guardians are created through the student flows (single create and roster
// upload); this controller only reads and patches them.
type GuardianController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *GuardianController {
	return &GuardianController{DB: db, Validate: v}
}

/* =========================
   Read
   ========================= */

func (ctl *GuardianController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&gm.GuardianModel{})
	if relation := strings.TrimSpace(c.Query("relation")); relation != "" {
		q = q.Where("guardian_relation = ?", relation)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[Guardian.List] count error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	var guardians []gm.GuardianModel
	if err := q.Order("guardian_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&guardians).Error; err != nil {
		log.Printf("[Guardian.List] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonList(c, "Guardians fetched", guardians,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *GuardianController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid guardian id")
	}

	var guardian gm.GuardianModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&guardian, "guardian_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guardian not found")
		}
		log.Printf("[Guardian.Get] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Guardian fetched", guardian)
}

// FindByEmail resolves a guardian from ?email= (case-insensitive).
func (ctl *GuardianController) FindByEmail(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email query parameter is required")
	}

	var guardian gm.GuardianModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&guardian, "guardian_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guardian not found")
		}
		log.Printf("[Guardian.FindByEmail] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Guardian fetched", guardian)
}

/* =========================
   Update
   ========================= */

func (ctl *GuardianController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid guardian id")
	}

	var req d.UpdateGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["guardian_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		patch["guardian_email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		patch["guardian_phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Relation != nil {
		patch["guardian_relation"] = strings.TrimSpace(*req.Relation)
	}
	if req.Profession != nil {
		patch["guardian_profession"] = strings.TrimSpace(*req.Profession)
	}
	if req.Photo != nil {
		patch["guardian_photo"] = strings.TrimSpace(*req.Photo)
	}
	if len(patch) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "nothing to update")
	}

	var guardian gm.GuardianModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guardian, "guardian_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&gm.GuardianModel{}).
			Where("guardian_id = ?", id).
			Updates(patch).Error; err != nil {
			return err
		}
		return tx.First(&guardian, "guardian_id = ?", id).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guardian not found")
		}
		log.Printf("[Guardian.Update] error: %v", txErr)
		code, msg := helper.MapPGError(txErr)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonUpdated(c, "Guardian updated", guardian)
}
