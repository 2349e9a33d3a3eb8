// file: internals/features/school/courses/controller/course_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "srs_backend/internals/features/school/courses/dto"
	svc "srs_backend/internals/features/school/courses/service"
	helper "srs_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.CourseService
}

func New(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{
		DB:       db,
		Validate: v,
		Service:  svc.NewCourseService(db),
	}
}

/* =========================
   Create
   ========================= */

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Course.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		log.Printf("[Course.Create] Validation error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		var conflict *svc.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Msg)
		}
		log.Printf("[Course.Create] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonCreated(c, "Course created", course)
}

/* =========================
   Read
   ========================= */

func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	filter := svc.CourseListFilter{
		Department: strings.TrimSpace(c.Query("department")),
	}
	if assignedStr := strings.TrimSpace(c.Query("assigned")); assignedStr != "" {
		assigned, err := strconv.ParseBool(assignedStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid assigned filter (expected true/false)")
		}
		filter.Assigned = &assigned
	}

	courses, total, err := ctl.Service.List(c.UserContext(), filter, paging.Offset, paging.Limit)
	if err != nil {
		log.Printf("[Course.List] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonList(c, "Courses fetched", courses,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	course, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[Course.Get] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Course fetched", course)
}

/* =========================
   Update / Delete
   ========================= */

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var req d.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course, err := ctl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[Course.Update] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonUpdated(c, "Course updated", course)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[Course.Delete] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}
