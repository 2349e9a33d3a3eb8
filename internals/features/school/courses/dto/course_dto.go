// file: internals/features/school/courses/dto/course_dto.go
package dto

import (
	"strings"

	cm "srs_backend/internals/features/school/courses/model"
)

type CreateCourseRequest struct {
	CourseName  string  `json:"courseName"        validate:"required,max=160"`
	CourseCode  string  `json:"courseCode"        validate:"required,max=40"`
	Description *string `json:"courseDescription" validate:"omitempty,max=4000"`
	Department  string  `json:"department"        validate:"omitempty,max=120"`
}

func (r *CreateCourseRequest) ToModel() *cm.CourseModel {
	var desc *string
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		desc = &d
	}
	return &cm.CourseModel{
		CourseName:        strings.TrimSpace(r.CourseName),
		CourseCode:        strings.ToUpper(strings.TrimSpace(r.CourseCode)),
		CourseDescription: desc,
		CourseDepartment:  strings.TrimSpace(r.Department),
	}
}

type UpdateCourseRequest struct {
	CourseName  *string `json:"courseName"        validate:"omitempty,max=160"`
	Description *string `json:"courseDescription" validate:"omitempty,max=4000"`
	Department  *string `json:"department"        validate:"omitempty,max=120"`
}
