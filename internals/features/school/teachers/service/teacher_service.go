// file: internals/features/school/teachers/service/teacher_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cm "srs_backend/internals/features/school/courses/model"
	d "srs_backend/internals/features/school/teachers/dto"
	tm "srs_backend/internals/features/school/teachers/model"
	authHelper "srs_backend/internals/features/users/auth/helper"
)

// ConflictError is a business conflict (duplicate email, double assignment);
// the controller maps it to 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

type TeacherService struct {
	DB          *gorm.DB
	Credentials authHelper.CredentialPolicy
}

func NewTeacherService(db *gorm.DB, policy authHelper.CredentialPolicy) *TeacherService {
	return &TeacherService{DB: db, Credentials: policy}
}

/* =========================
   CRUD
   ========================= */

func (s *TeacherService) Create(ctx context.Context, req *d.CreateTeacherRequest) (*tm.TeacherModel, error) {
	teacher := req.ToModel()

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing tm.TeacherModel
		if err := tx.First(&existing, "teacher_email = ?", teacher.TeacherEmail).Error; err == nil {
			return &ConflictError{Msg: fmt.Sprintf("Teacher email %q is already registered with %s %s.",
				teacher.TeacherEmail, existing.TeacherFirstName, existing.TeacherLastName)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		defaultHash, err := s.Credentials.DefaultCredential()
		if err != nil {
			return err
		}
		teacher.TeacherPassword = defaultHash
		return tx.Create(teacher).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return teacher, nil
}

type TeacherListFilter struct {
	Department string
	Email      string
}

func (s *TeacherService) List(ctx context.Context, f TeacherListFilter, offset, limit int) ([]tm.TeacherModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&tm.TeacherModel{})

	if f.Department != "" {
		q = q.Where("teacher_department = ?", f.Department)
	}
	if f.Email != "" {
		q = q.Where("teacher_email = ?", strings.ToLower(f.Email))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var teachers []tm.TeacherModel
	if err := q.Order("teacher_created_at DESC").Offset(offset).Limit(limit).Find(&teachers).Error; err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

func (s *TeacherService) GetByID(ctx context.Context, id uuid.UUID) (*tm.TeacherModel, error) {
	var teacher tm.TeacherModel
	if err := s.DB.WithContext(ctx).First(&teacher, "teacher_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *TeacherService) Update(ctx context.Context, id uuid.UUID, req *d.UpdateTeacherRequest) (*tm.TeacherModel, error) {
	patch := map[string]any{}
	setIf(patch, "teacher_first_name", req.FirstName)
	setIf(patch, "teacher_last_name", req.LastName)
	setIf(patch, "teacher_gender", req.Gender)
	setIf(patch, "teacher_phone", req.Phone)
	setIf(patch, "teacher_department", req.Department)
	setIf(patch, "teacher_address", req.Address)

	var teacher tm.TeacherModel
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&teacher, "teacher_id = ?", id).Error; err != nil {
			return err
		}
		if len(patch) > 0 {
			if err := tx.Model(&tm.TeacherModel{}).
				Where("teacher_id = ?", id).
				Updates(patch).Error; err != nil {
				return err
			}
		}
		return tx.First(&teacher, "teacher_id = ?", id).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &teacher, nil
}

func (s *TeacherService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&tm.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* =========================
   Course assignment
   ========================= */

// AssignCourse appends the course id to the teacher's assignment list and
// flags the course as assigned, both in one transaction. Assigning the same
// course twice is rejected.
func (s *TeacherService) AssignCourse(ctx context.Context, teacherID, courseID uuid.UUID) (*tm.TeacherModel, error) {
	var teacher tm.TeacherModel

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
			return err
		}

		var course cm.CourseModel
		if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
			return err
		}

		cid := courseID.String()
		for _, assigned := range teacher.TeacherAssignedCourses {
			if assigned == cid {
				return &ConflictError{Msg: fmt.Sprintf("Course %s is already assigned to this teacher.", course.CourseName)}
			}
		}

		teacher.TeacherAssignedCourses = append(teacher.TeacherAssignedCourses, cid)
		if err := tx.Model(&tm.TeacherModel{}).
			Where("teacher_id = ?", teacherID).
			Update("teacher_assigned_courses", teacher.TeacherAssignedCourses).Error; err != nil {
			return err
		}

		return tx.Model(&cm.CourseModel{}).
			Where("course_id = ?", courseID).
			Update("course_assigned", true).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &teacher, nil
}

// RemoveAssignment drops the course id from the teacher's list. The course's
// assigned flag is cleared only when no other teacher still holds it.
func (s *TeacherService) RemoveAssignment(ctx context.Context, teacherID, courseID uuid.UUID) (*tm.TeacherModel, error) {
	var teacher tm.TeacherModel

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
			return err
		}

		cid := courseID.String()
		kept := teacher.TeacherAssignedCourses[:0]
		found := false
		for _, assigned := range teacher.TeacherAssignedCourses {
			if assigned == cid {
				found = true
				continue
			}
			kept = append(kept, assigned)
		}
		if !found {
			return gorm.ErrRecordNotFound
		}

		teacher.TeacherAssignedCourses = kept
		if err := tx.Model(&tm.TeacherModel{}).
			Where("teacher_id = ?", teacherID).
			Update("teacher_assigned_courses", teacher.TeacherAssignedCourses).Error; err != nil {
			return err
		}

		var holders int64
		if err := tx.Model(&tm.TeacherModel{}).
			Where("? = ANY(teacher_assigned_courses)", cid).
			Count(&holders).Error; err != nil {
			return err
		}
		if holders == 0 {
			return tx.Model(&cm.CourseModel{}).
				Where("course_id = ?", courseID).
				Update("course_assigned", false).Error
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &teacher, nil
}

// AssignedCourses resolves the teacher's course id list into course rows.
func (s *TeacherService) AssignedCourses(ctx context.Context, teacherID uuid.UUID) ([]cm.CourseModel, error) {
	var teacher tm.TeacherModel
	if err := s.DB.WithContext(ctx).First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		return nil, err
	}
	if len(teacher.TeacherAssignedCourses) == 0 {
		return []cm.CourseModel{}, nil
	}

	var courses []cm.CourseModel
	if err := s.DB.WithContext(ctx).
		Where("course_id IN ?", []string(teacher.TeacherAssignedCourses)).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func setIf(patch map[string]any, column string, v *string) {
	if v != nil {
		patch[column] = strings.TrimSpace(*v)
	}
}
