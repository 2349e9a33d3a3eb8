// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// External roll number from the registrar. Unique among live rows only; a
	// soft-deleted student releases its number and email for re-import.
	StudentNumber string `gorm:"column:student_number;type:varchar(40);not null;uniqueIndex:uq_students_student_number,where:student_deleted_at IS NULL" json:"studentId"`

	StudentFirstName string `gorm:"column:student_first_name;type:varchar(80);not null" json:"firstName"`
	StudentLastName  string `gorm:"column:student_last_name;type:varchar(80);not null"  json:"lastName"`

	StudentClassName string `gorm:"column:student_class_name;type:varchar(80);not null;index:idx_students_class_section" json:"class"`
	StudentSection   string `gorm:"column:student_section;type:varchar(20);not null;index:idx_students_class_section"    json:"section"`

	StudentGender string `gorm:"column:student_gender;type:varchar(20)" json:"gender"`
	StudentDOB    string `gorm:"column:student_dob;type:varchar(20)"    json:"dob"`

	StudentEmail string `gorm:"column:student_email;type:varchar(160);not null;uniqueIndex:uq_students_student_email,where:student_deleted_at IS NULL" json:"email"`
	StudentPhone string `gorm:"column:student_phone;type:varchar(40)" json:"phone"`

	StudentAddress          string `gorm:"column:student_address;type:text"                    json:"address"`
	StudentEmergencyContact string `gorm:"column:student_emergency_contact;type:varchar(160)"  json:"emergencyContact"`

	// Dates kept as YYYY-MM-DD strings, matching the registrar exports.
	StudentEnrollDate         string `gorm:"column:student_enroll_date;type:varchar(20);not null" json:"enrollDate"`
	StudentExpectedGraduation string `gorm:"column:student_expected_graduation;type:varchar(20)"  json:"expectedGraduation"`

	StudentPassword string `gorm:"column:student_password;type:varchar(100);not null" json:"-"`

	StudentGuardianID uuid.UUID `gorm:"column:student_guardian_id;type:uuid;not null;index" json:"guardianId"`

	StudentProfilePhoto string         `gorm:"column:student_profile_photo;type:text;not null;default:'N/A'" json:"profilePhoto"`
	StudentTranscripts  pq.StringArray `gorm:"column:student_transcripts;type:text[]"                        json:"transcripts"`
	StudentReportCards  pq.StringArray `gorm:"column:student_report_cards;type:text[]"                       json:"reportCards"`

	StudentIIPFlag     bool   `gorm:"column:student_iip_flag;not null;default:false"    json:"iipFlag"`
	StudentHonorRolls  bool   `gorm:"column:student_honor_rolls;not null;default:false" json:"honorRolls"`
	StudentAthletics   bool   `gorm:"column:student_athletics;not null;default:false"   json:"athletics"`
	StudentClubs       string `gorm:"column:student_clubs;type:varchar(200)"            json:"clubs"`
	StudentLunch       string `gorm:"column:student_lunch;type:varchar(80)"             json:"lunch"`
	StudentNationality string `gorm:"column:student_nationality;type:varchar(80)"      json:"nationality"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"                                    json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
