// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	tm "srs_backend/internals/features/school/teachers/model"
)

/* =========================
   Requests
   ========================= */

type CreateTeacherRequest struct {
	FirstName  string `json:"firstName"  validate:"required,max=80"`
	LastName   string `json:"lastName"   validate:"required,max=80"`
	Gender     string `json:"gender"     validate:"omitempty,max=20"`
	Phone      string `json:"phone"      validate:"omitempty,max=40"`
	Email      string `json:"email"      validate:"required,email,max=160"`
	Department string `json:"department" validate:"omitempty,max=120"`
	Address    string `json:"address"    validate:"omitempty,max=2000"`
}

func (r *CreateTeacherRequest) ToModel() *tm.TeacherModel {
	return &tm.TeacherModel{
		TeacherFirstName:  strings.TrimSpace(r.FirstName),
		TeacherLastName:   strings.TrimSpace(r.LastName),
		TeacherGender:     strings.TrimSpace(r.Gender),
		TeacherPhone:      strings.TrimSpace(r.Phone),
		TeacherEmail:      strings.ToLower(strings.TrimSpace(r.Email)),
		TeacherDepartment: strings.TrimSpace(r.Department),
		TeacherAddress:    strings.TrimSpace(r.Address),
	}
}

type UpdateTeacherRequest struct {
	FirstName  *string `json:"firstName"  validate:"omitempty,max=80"`
	LastName   *string `json:"lastName"   validate:"omitempty,max=80"`
	Gender     *string `json:"gender"     validate:"omitempty,max=20"`
	Phone      *string `json:"phone"      validate:"omitempty,max=40"`
	Department *string `json:"department" validate:"omitempty,max=120"`
	Address    *string `json:"address"    validate:"omitempty,max=2000"`
}

type AssignCourseRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid4"`
}

/* =========================
   Import result
   ========================= */

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	InsertedCount int          `json:"insertedCount"`
	SkippedCount  int          `json:"skippedCount"`
	Skipped       []SkippedRow `json:"skipped,omitempty"`
}
