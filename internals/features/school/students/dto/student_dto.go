// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"

	sm "srs_backend/internals/features/school/students/model"
)

/* =========================
   Requests
   ========================= */

type CreateStudentRequest struct {
	StudentNumber    string `json:"studentId"        validate:"required,max=40"`
	FirstName        string `json:"firstName"        validate:"required,max=80"`
	LastName         string `json:"lastName"         validate:"required,max=80"`
	ClassName        string `json:"class"            validate:"required,max=80"`
	Section          string `json:"section"          validate:"required,max=20"`
	Gender           string `json:"gender"           validate:"omitempty,max=20"`
	DOB              string `json:"dob"              validate:"omitempty,max=20"`
	Email            string `json:"email"            validate:"required,email,max=160"`
	Phone            string `json:"phone"            validate:"omitempty,max=40"`
	Address          string `json:"address"          validate:"omitempty,max=2000"`
	EmergencyContact string `json:"emergencyContact" validate:"omitempty,max=160"`
	EnrollDate       string `json:"enrollDate"       validate:"required,datetime=2006-01-02"`

	GuardianName       string `json:"guardianName"       validate:"required,max=160"`
	GuardianEmail      string `json:"guardianEmail"      validate:"required,email,max=160"`
	GuardianPhone      string `json:"guardianPhone"      validate:"required,max=40"`
	GuardianRelation   string `json:"guardianRelation"   validate:"required,max=40"`
	GuardianProfession string `json:"guardianProfession" validate:"required,max=80"`
	GuardianPhoto      string `json:"guardianPhoto"      validate:"omitempty,max=2000"`
}

func (r *CreateStudentRequest) ToModel() *sm.StudentModel {
	return &sm.StudentModel{
		StudentNumber:           strings.TrimSpace(r.StudentNumber),
		StudentFirstName:        strings.TrimSpace(r.FirstName),
		StudentLastName:         strings.TrimSpace(r.LastName),
		StudentClassName:        strings.TrimSpace(r.ClassName),
		StudentSection:          strings.TrimSpace(r.Section),
		StudentGender:           strings.TrimSpace(r.Gender),
		StudentDOB:              strings.TrimSpace(r.DOB),
		StudentEmail:            strings.ToLower(strings.TrimSpace(r.Email)),
		StudentPhone:            strings.TrimSpace(r.Phone),
		StudentAddress:          strings.TrimSpace(r.Address),
		StudentEmergencyContact: strings.TrimSpace(r.EmergencyContact),
		StudentEnrollDate:       strings.TrimSpace(r.EnrollDate),
		StudentProfilePhoto:     "N/A",
	}
}

type UpdateStudentRequest struct {
	FirstName        *string `json:"firstName"        validate:"omitempty,max=80"`
	LastName         *string `json:"lastName"         validate:"omitempty,max=80"`
	ClassName        *string `json:"class"            validate:"omitempty,max=80"`
	Section          *string `json:"section"          validate:"omitempty,max=20"`
	Gender           *string `json:"gender"           validate:"omitempty,max=20"`
	DOB              *string `json:"dob"              validate:"omitempty,max=20"`
	Phone            *string `json:"phone"            validate:"omitempty,max=40"`
	Address          *string `json:"address"          validate:"omitempty,max=2000"`
	EmergencyContact *string `json:"emergencyContact" validate:"omitempty,max=160"`

	GuardianName       *string `json:"guardianName"       validate:"omitempty,max=160"`
	GuardianEmail      *string `json:"guardianEmail"      validate:"omitempty,email,max=160"`
	GuardianPhone      *string `json:"guardianPhone"      validate:"omitempty,max=40"`
	GuardianRelation   *string `json:"guardianRelation"   validate:"omitempty,max=40"`
	GuardianProfession *string `json:"guardianProfession" validate:"omitempty,max=80"`
	GuardianPhoto      *string `json:"guardianPhoto"      validate:"omitempty,max=2000"`
}

/* =========================
   Import result
   ========================= */

type SkippedRow struct {
	Row    int    `json:"row"` // 1-based spreadsheet row, header included
	Reason string `json:"reason"`
}

type ImportResult struct {
	InsertedCount int          `json:"insertedCount"`
	SkippedCount  int          `json:"skippedCount"`
	Skipped       []SkippedRow `json:"skipped,omitempty"`
}
