// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "srs_backend/internals/features/school/schedules/dto"
	svc "srs_backend/internals/features/school/schedules/service"
	helper "srs_backend/internals/helpers"
	helperAuth "srs_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Checker  *svc.ConflictChecker
	Query    *svc.ScheduleQueryService
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{
		DB:       db,
		Validate: v,
		Checker:  svc.NewConflictChecker(db),
		Query:    svc.NewScheduleQueryService(db),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// mayViewStudent allows admins and teachers everywhere; a student token only
// matches its own id.
func mayViewStudent(c *fiber.Ctx, studentID uuid.UUID) bool {
	if !helperAuth.IsStudent(c) {
		return true
	}
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return uid == studentID
}

/* =========================
   Create
   ========================= */

func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req d.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Schedule.Create] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		log.Printf("[Schedule.Create] Validation error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := ctl.Checker.Create(c.UserContext(), req.ToModel())
	if err != nil {
		// malformed clock strings and the like
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

/* =========================
   Read
   ========================= */

func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	filter := svc.ListFilter{
		ClassName: strings.TrimSpace(c.Query("className")),
		Section:   strings.TrimSpace(c.Query("section")),
		Day:       strings.TrimSpace(c.Query("date")),
	}
	if tid := strings.TrimSpace(c.Query("teacherId")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacherId")
		}
		filter.TeacherID = id
	}

	items, total, err := ctl.Query.List(c.UserContext(), filter, paging.Offset, paging.Limit)
	if err != nil {
		log.Printf("[Schedule.List] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonList(c, "Schedules fetched", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	sched, err := ctl.Query.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		log.Printf("[Schedule.Get] query error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Schedule fetched", sched)
}

/* =========================
   Update / Delete
   ========================= */

func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var req d.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := ctl.Checker.Update(c.UserContext(), id, req.ToModel())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	if err := ctl.Query.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		log.Printf("[Schedule.Delete] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"schedule_id": id})
}

/* =========================
   Student / teacher views
   ========================= */

func (ctl *ScheduleController) StudentWeek(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "studentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	if !mayViewStudent(c, studentID) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own schedule")
	}

	week, err := ctl.Query.WeekScheduleForStudent(c.UserContext(), studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[Schedule.StudentWeek] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Week schedule fetched", week)
}

func (ctl *ScheduleController) StudentByDay(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "studentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	if !mayViewStudent(c, studentID) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own schedule")
	}

	schedules, err := ctl.Query.SchedulesForStudentByDay(c.UserContext(), studentID, c.Query("date"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[Schedule.StudentByDay] error: %v", err)
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "Schedules fetched", schedules)
}

func (ctl *ScheduleController) TeacherSummary(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacherId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher id")
	}
	return c.Status(fiber.StatusOK).JSON(ctl.Query.TeacherLoadSummary(c.UserContext(), teacherID))
}
