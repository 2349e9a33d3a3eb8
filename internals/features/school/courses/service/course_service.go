// file: internals/features/school/courses/service/course_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	d "srs_backend/internals/features/school/courses/dto"
	cm "srs_backend/internals/features/school/courses/model"
	schm "srs_backend/internals/features/school/schedules/model"
)

// ConflictError is a business conflict (duplicate course code); the controller
// maps it to 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

func (s *CourseService) Create(ctx context.Context, req *d.CreateCourseRequest) (*cm.CourseModel, error) {
	course := req.ToModel()

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing cm.CourseModel
		if err := tx.First(&existing, "course_code = ?", course.CourseCode).Error; err == nil {
			return &ConflictError{Msg: fmt.Sprintf("Course code %q is already used by %s.",
				course.CourseCode, existing.CourseName)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(course).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return course, nil
}

type CourseListFilter struct {
	Department string
	Assigned   *bool
}

func (s *CourseService) List(ctx context.Context, f CourseListFilter, offset, limit int) ([]cm.CourseModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&cm.CourseModel{})

	if f.Department != "" {
		q = q.Where("course_department = ?", f.Department)
	}
	if f.Assigned != nil {
		q = q.Where("course_assigned = ?", *f.Assigned)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []cm.CourseModel
	if err := q.Order("course_created_at DESC").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*cm.CourseModel, error) {
	var course cm.CourseModel
	if err := s.DB.WithContext(ctx).First(&course, "course_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Update(ctx context.Context, id uuid.UUID, req *d.UpdateCourseRequest) (*cm.CourseModel, error) {
	patch := map[string]any{}
	if req.CourseName != nil {
		patch["course_name"] = strings.TrimSpace(*req.CourseName)
	}
	if req.Description != nil {
		patch["course_description"] = strings.TrimSpace(*req.Description)
	}
	if req.Department != nil {
		patch["course_department"] = strings.TrimSpace(*req.Department)
	}

	var course cm.CourseModel
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, "course_id = ?", id).Error; err != nil {
			return err
		}
		if len(patch) > 0 {
			if err := tx.Model(&cm.CourseModel{}).
				Where("course_id = ?", id).
				Updates(patch).Error; err != nil {
				return err
			}
		}
		return tx.First(&course, "course_id = ?", id).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &course, nil
}

// Delete removes the course together with every schedule that references it,
// in one transaction.
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course cm.CourseModel
		if err := tx.First(&course, "course_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&schm.ScheduleModel{}, "schedule_course_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&cm.CourseModel{}, "course_id = ?", id).Error
	})
}
