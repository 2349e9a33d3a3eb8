// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "srs_backend/internals/features/school/students/dto"
	svc "srs_backend/internals/features/school/students/service"
	authHelper "srs_backend/internals/features/users/auth/helper"
	helper "srs_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.StudentService
	Importer *svc.RosterImporter
}

func New(db *gorm.DB, v *validator.Validate) *StudentController {
	policy := authHelper.NewDefaultCredentialPolicy()
	return &StudentController{
		DB:       db,
		Validate: v,
		Service:  svc.NewStudentService(db, policy),
		Importer: svc.NewRosterImporter(db, policy),
	}
}

/* =========================
   Create
   ========================= */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Student.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		log.Printf("[Student.Create] Validation error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		var conflict *svc.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Msg)
		}
		log.Printf("[Student.Create] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonCreated(c, "Student created", student)
}

/* =========================
   Bulk upload
   ========================= */

// BulkUpload accepts multipart form field "file" holding an .xlsx roster.
func (ctl *StudentController) BulkUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required (multipart field \"file\")")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[Student.BulkUpload] open upload error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	result, err := ctl.Importer.BulkUpload(c.UserContext(), file)
	if err != nil {
		log.Printf("[Student.BulkUpload] error: %v", err)
		if strings.Contains(err.Error(), "excel") {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Roster processed", result)
}

/* =========================
   Read
   ========================= */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	filter := svc.StudentListFilter{
		StudentNumber: strings.TrimSpace(c.Query("studentId")),
		ClassName:     strings.TrimSpace(c.Query("class")),
		StartDate:     strings.TrimSpace(c.Query("startDate")),
		EndDate:       strings.TrimSpace(c.Query("endDate")),
	}

	students, total, err := ctl.Service.List(c.UserContext(), filter, paging.Offset, paging.Limit)
	if err != nil {
		log.Printf("[Student.List] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonList(c, "Students fetched", students,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	student, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[Student.Get] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Student fetched", student)
}

// CountByClassSection reports the head count for ?class= and ?section=.
func (ctl *StudentController) CountByClassSection(c *fiber.Ctx) error {
	className := strings.TrimSpace(c.Query("class"))
	section := strings.TrimSpace(c.Query("section"))
	if className == "" || section == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "class and section query parameters are required")
	}

	n, err := ctl.Service.CountByClassSection(c.UserContext(), className, section)
	if err != nil {
		log.Printf("[Student.Count] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Student count fetched", fiber.Map{
		"class":   className,
		"section": section,
		"count":   n,
	})
}

/* =========================
   Update / Delete
   ========================= */

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := ctl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[Student.Update] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonUpdated(c, "Student updated", student)
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[Student.Delete] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}
