// file: internals/features/school/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseName string `gorm:"column:course_name;type:varchar(160);not null" json:"courseName"`
	CourseCode string `gorm:"column:course_code;type:varchar(40);not null;uniqueIndex:uq_courses_course_code,where:course_deleted_at IS NULL" json:"courseCode"`

	CourseDescription *string `gorm:"column:course_description;type:text" json:"courseDescription,omitempty"`

	CourseDepartment string `gorm:"column:course_department;type:varchar(120)" json:"department"`

	CourseAssigned bool `gorm:"column:course_assigned;not null;default:false" json:"assigned"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index"                                    json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
