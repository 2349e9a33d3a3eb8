// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "srs_backend/internals/features/school/teachers/dto"
	svc "srs_backend/internals/features/school/teachers/service"
	authHelper "srs_backend/internals/features/users/auth/helper"
	helper "srs_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.TeacherService
	Importer *svc.TeacherImporter
}

func New(db *gorm.DB, v *validator.Validate) *TeacherController {
	policy := authHelper.NewDefaultCredentialPolicy()
	return &TeacherController{
		DB:       db,
		Validate: v,
		Service:  svc.NewTeacherService(db, policy),
		Importer: svc.NewTeacherImporter(db, policy),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

/* =========================
   Create & bulk upload
   ========================= */

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Teacher.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		log.Printf("[Teacher.Create] Validation error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacher, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		var conflict *svc.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Msg)
		}
		log.Printf("[Teacher.Create] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonCreated(c, "Teacher created", teacher)
}

func (ctl *TeacherController) BulkUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required (multipart field \"file\")")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[Teacher.BulkUpload] open upload error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	result, err := ctl.Importer.BulkUpload(c.UserContext(), file)
	if err != nil {
		log.Printf("[Teacher.BulkUpload] error: %v", err)
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

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	filter := svc.TeacherListFilter{
		Department: strings.TrimSpace(c.Query("department")),
		Email:      strings.TrimSpace(c.Query("email")),
	}

	teachers, total, err := ctl.Service.List(c.UserContext(), filter, paging.Offset, paging.Limit)
	if err != nil {
		log.Printf("[Teacher.List] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonList(c, "Teachers fetched", teachers,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	teacher, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Printf("[Teacher.Get] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Teacher fetched", teacher)
}

func (ctl *TeacherController) AssignedCourses(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	courses, err := ctl.Service.AssignedCourses(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Printf("[Teacher.AssignedCourses] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Assigned courses fetched", courses)
}

/* =========================
   Update / Delete
   ========================= */

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	var req d.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacher, err := ctl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Printf("[Teacher.Update] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonUpdated(c, "Teacher updated", teacher)
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Printf("[Teacher.Delete] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}

/* =========================
   Course assignment
   ========================= */

func (ctl *TeacherController) AssignCourse(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	var req d.AssignCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	teacher, err := ctl.Service.AssignCourse(c.UserContext(), id, courseID)
	if err != nil {
		var conflict *svc.ConflictError
		switch {
		case errors.As(err, &conflict):
			return helper.JsonError(c, fiber.StatusConflict, conflict.Msg)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher or course not found")
		}
		log.Printf("[Teacher.AssignCourse] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonUpdated(c, "Course assigned", teacher)
}

func (ctl *TeacherController) RemoveAssignment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}
	courseID, err := parseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	teacher, err := ctl.Service.RemoveAssignment(c.UserContext(), id, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		log.Printf("[Teacher.RemoveAssignment] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonUpdated(c, "Course assignment removed", teacher)
}
