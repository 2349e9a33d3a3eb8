// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	TeacherFirstName string `gorm:"column:teacher_first_name;type:varchar(80);not null" json:"firstName"`
	TeacherLastName  string `gorm:"column:teacher_last_name;type:varchar(80);not null"  json:"lastName"`

	TeacherGender string `gorm:"column:teacher_gender;type:varchar(20)" json:"gender"`
	TeacherPhone  string `gorm:"column:teacher_phone;type:varchar(40)"  json:"phone"`
	TeacherEmail  string `gorm:"column:teacher_email;type:varchar(160);not null;uniqueIndex:uq_teachers_teacher_email,where:teacher_deleted_at IS NULL" json:"email"`

	TeacherPassword string `gorm:"column:teacher_password;type:varchar(100);not null" json:"-"`

	// Course ids as strings; appended via the transactional assignment path.
	TeacherAssignedCourses pq.StringArray `gorm:"column:teacher_assigned_courses;type:text[]" json:"assignedCourses"`

	TeacherDepartment string `gorm:"column:teacher_department;type:varchar(120)" json:"department"`
	TeacherAddress    string `gorm:"column:teacher_address;type:text"            json:"address"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"                                    json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
