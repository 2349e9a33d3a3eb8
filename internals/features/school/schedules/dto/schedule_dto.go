// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "srs_backend/internals/features/school/schedules/model"
)

/* =========================
   Requests
   ========================= */

type ScheduleDayRequest struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
	Date      string `json:"date"      validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

type CreateScheduleRequest struct {
	CourseID  uuid.UUID            `json:"courseId"  validate:"required"`
	ClassName string               `json:"className" validate:"required,max=80"`
	Section   string               `json:"section"   validate:"required,max=20"`
	Note      *string              `json:"note"      validate:"omitempty,max=2000"`
	TeacherID uuid.UUID            `json:"teacherId" validate:"required"`
	DayOfWeek []ScheduleDayRequest `json:"dayOfWeek" validate:"required,min=1,dive"`
}

func (r *CreateScheduleRequest) ToModel() *m.ScheduleModel {
	days := make([]m.ScheduleDay, 0, len(r.DayOfWeek))
	for _, d := range r.DayOfWeek {
		days = append(days, m.ScheduleDay{
			StartTime: strings.TrimSpace(d.StartTime),
			EndTime:   strings.TrimSpace(d.EndTime),
			Date:      strings.TrimSpace(d.Date),
		})
	}
	return &m.ScheduleModel{
		ScheduleCourseID:  r.CourseID,
		ScheduleTeacherID: r.TeacherID,
		ScheduleClassName: strings.TrimSpace(r.ClassName),
		ScheduleSection:   strings.TrimSpace(r.Section),
		ScheduleNote:      trimPtr(r.Note),
		ScheduleDayOfWeek: datatypes.NewJSONSlice(days),
	}
}

// UpdateScheduleRequest carries the same shape as create; updates re-run the
// conflict check against everything except the entry being updated.
type UpdateScheduleRequest = CreateScheduleRequest

/* =========================
   Results
   ========================= */

// ScheduleResult is a reported business outcome, not an error: a conflicting
// submission is an expected result and travels as data.
type ScheduleResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type WeekScheduleItem struct {
	CourseName  string  `json:"courseName"`
	TeacherName string  `json:"teacherName"`
	Day         string  `json:"day"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Note        *string `json:"note,omitempty"`
}

type TeacherLoadSummary struct {
	Success       bool  `json:"success"`
	TotalStudents int64 `json:"totalStudents"`
	TodayClasses  int64 `json:"todayClasses"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
