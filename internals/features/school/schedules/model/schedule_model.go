// file: internals/features/school/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScheduleDay is one weekly slot. Date carries a day-of-week name such as
// "Monday" (legacy wire format), not a calendar date.
type ScheduleDay struct {
	StartTime string `json:"startTime"` // e.g. "10:00 AM"
	EndTime   string `json:"endTime"`   // e.g. "12:00 PM"
	Date      string `json:"date"`      // e.g. "Monday"
}

type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`

	ScheduleCourseID  uuid.UUID `gorm:"column:schedule_course_id;type:uuid;not null;index" json:"schedule_course_id"`
	ScheduleTeacherID uuid.UUID `gorm:"column:schedule_teacher_id;type:uuid;not null;index" json:"schedule_teacher_id"`

	ScheduleClassName string  `gorm:"column:schedule_class_name;type:varchar(80);not null" json:"schedule_class_name"`
	ScheduleSection   string  `gorm:"column:schedule_section;type:varchar(20);not null"    json:"schedule_section"`
	ScheduleNote      *string `gorm:"column:schedule_note;type:text"                       json:"schedule_note,omitempty"`

	ScheduleDayOfWeek datatypes.JSONSlice[ScheduleDay] `gorm:"column:schedule_day_of_week;type:jsonb;not null" json:"schedule_day_of_week"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;type:timestamptz;not null;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;type:timestamptz;not null;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index"                                    json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
