// file: internals/features/school/students/service/student_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gm "srs_backend/internals/features/school/guardians/model"
	d "srs_backend/internals/features/school/students/dto"
	sm "srs_backend/internals/features/school/students/model"
	authHelper "srs_backend/internals/features/users/auth/helper"
)

// ConflictError is a business conflict (duplicate id/email); the controller
// maps it to 409 with the message as-is.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// CalculateGraduationDate derives the expected graduation date from the
// enrollment date: same month and day, five calendar years later.
func CalculateGraduationDate(enrollDate string) (string, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(enrollDate))
	if err != nil {
		return "", err
	}
	return t.AddDate(5, 0, 0).Format("2006-01-02"), nil
}

type StudentService struct {
	DB          *gorm.DB
	Credentials authHelper.CredentialPolicy
}

func NewStudentService(db *gorm.DB, policy authHelper.CredentialPolicy) *StudentService {
	return &StudentService{DB: db, Credentials: policy}
}

/* =========================
   Create
   ========================= */

// Create persists a student together with a freshly created guardian, after
// the same duplicate checks the bulk path applies. Guardian first, then the
// student referencing it, inside one transaction.
func (s *StudentService) Create(ctx context.Context, req *d.CreateStudentRequest) (*sm.StudentModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	guardianEmail := strings.ToLower(strings.TrimSpace(req.GuardianEmail))

	if email == guardianEmail {
		return nil, &ConflictError{Msg: "The student's email cannot be the same as the guardian's email."}
	}

	student := req.ToModel()

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing sm.StudentModel
		if err := tx.First(&existing, "student_number = ?", student.StudentNumber).Error; err == nil {
			return &ConflictError{Msg: fmt.Sprintf("studentId number %q is already taken by student %s %s.",
				student.StudentNumber, existing.StudentFirstName, existing.StudentLastName)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.First(&existing, "student_email = ?", email).Error; err == nil {
			return &ConflictError{Msg: fmt.Sprintf("Student email %q is already registered with %s %s.",
				email, existing.StudentFirstName, existing.StudentLastName)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var existingGuardian gm.GuardianModel
		if err := tx.First(&existingGuardian, "guardian_email = ?", guardianEmail).Error; err == nil {
			return &ConflictError{Msg: fmt.Sprintf("Guardian email %q is already registered", guardianEmail)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		defaultHash, err := s.Credentials.DefaultCredential()
		if err != nil {
			return err
		}

		photo := strings.TrimSpace(req.GuardianPhoto)
		if photo == "" {
			photo = "N/A"
		}
		guardian := gm.GuardianModel{
			GuardianName:       strings.TrimSpace(req.GuardianName),
			GuardianEmail:      guardianEmail,
			GuardianPassword:   defaultHash,
			GuardianPhone:      strings.TrimSpace(req.GuardianPhone),
			GuardianRelation:   strings.TrimSpace(req.GuardianRelation),
			GuardianProfession: strings.TrimSpace(req.GuardianProfession),
			GuardianPhoto:      photo,
		}
		if err := tx.Create(&guardian).Error; err != nil {
			return err
		}

		graduation, err := CalculateGraduationDate(student.StudentEnrollDate)
		if err != nil {
			return err
		}

		student.StudentGuardianID = guardian.GuardianID
		student.StudentPassword = defaultHash
		student.StudentExpectedGraduation = graduation
		return tx.Create(student).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return student, nil
}

/* =========================
   Read
   ========================= */

type StudentListFilter struct {
	StudentNumber string
	ClassName     string
	StartDate     string // created_at lower bound, YYYY-MM-DD
	EndDate       string
}

func (s *StudentService) List(ctx context.Context, f StudentListFilter, offset, limit int) ([]sm.StudentModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&sm.StudentModel{})

	if f.StudentNumber != "" {
		q = q.Where("student_number = ?", f.StudentNumber)
	}
	if f.ClassName != "" {
		q = q.Where("student_class_name = ?", f.ClassName)
	}
	if f.StartDate != "" {
		q = q.Where("student_created_at >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("student_created_at <= ?", f.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []sm.StudentModel
	if err := q.Order("student_created_at DESC").Offset(offset).Limit(limit).Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*sm.StudentModel, error) {
	var student sm.StudentModel
	if err := s.DB.WithContext(ctx).First(&student, "student_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *StudentService) CountByClassSection(ctx context.Context, className, section string) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&sm.StudentModel{}).
		Where("student_class_name = ? AND student_section = ?", className, section).
		Count(&n).Error
	return n, err
}

/* =========================
   Update / Delete
   ========================= */

func (s *StudentService) Update(ctx context.Context, id uuid.UUID, req *d.UpdateStudentRequest) (*sm.StudentModel, error) {
	var student sm.StudentModel

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, "student_id = ?", id).Error; err != nil {
			return err
		}

		guardianPatch := map[string]any{}
		setIf(guardianPatch, "guardian_name", req.GuardianName)
		setIf(guardianPatch, "guardian_email", lowerPtr(req.GuardianEmail))
		setIf(guardianPatch, "guardian_phone", req.GuardianPhone)
		setIf(guardianPatch, "guardian_relation", req.GuardianRelation)
		setIf(guardianPatch, "guardian_profession", req.GuardianProfession)
		setIf(guardianPatch, "guardian_photo", req.GuardianPhoto)
		if len(guardianPatch) > 0 {
			if err := tx.Model(&gm.GuardianModel{}).
				Where("guardian_id = ?", student.StudentGuardianID).
				Updates(guardianPatch).Error; err != nil {
				return err
			}
		}

		studentPatch := map[string]any{}
		setIf(studentPatch, "student_first_name", req.FirstName)
		setIf(studentPatch, "student_last_name", req.LastName)
		setIf(studentPatch, "student_class_name", req.ClassName)
		setIf(studentPatch, "student_section", req.Section)
		setIf(studentPatch, "student_gender", req.Gender)
		setIf(studentPatch, "student_dob", req.DOB)
		setIf(studentPatch, "student_phone", req.Phone)
		setIf(studentPatch, "student_address", req.Address)
		setIf(studentPatch, "student_emergency_contact", req.EmergencyContact)
		if len(studentPatch) > 0 {
			if err := tx.Model(&sm.StudentModel{}).
				Where("student_id = ?", id).
				Updates(studentPatch).Error; err != nil {
				return err
			}
		}

		return tx.First(&student, "student_id = ?", id).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &student, nil
}

// Delete removes the student and the associated guardian in one transaction.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student sm.StudentModel
		if err := tx.First(&student, "student_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&gm.GuardianModel{}, "guardian_id = ?", student.StudentGuardianID).Error; err != nil {
			return err
		}
		return tx.Delete(&sm.StudentModel{}, "student_id = ?", id).Error
	})
}

func setIf(patch map[string]any, column string, v *string) {
	if v != nil {
		patch[column] = strings.TrimSpace(*v)
	}
}

func lowerPtr(v *string) *string {
	if v == nil {
		return nil
	}
	l := strings.ToLower(*v)
	return &l
}
