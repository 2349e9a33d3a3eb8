// file: internals/features/school/teachers/service/import_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	ssvc "srs_backend/internals/features/school/students/service"
	d "srs_backend/internals/features/school/teachers/dto"
	tm "srs_backend/internals/features/school/teachers/model"
	authHelper "srs_backend/internals/features/users/auth/helper"
)

const (
	importBatchSize = 100
	maxSkipDetails  = 50
)

// TeacherImporter ingests an HR spreadsheet of teachers. Same batching rules
// as the student roster path: 100-row sub-batches, each committed on its own.
type TeacherImporter struct {
	DB          *gorm.DB
	Credentials authHelper.CredentialPolicy
}

func NewTeacherImporter(db *gorm.DB, policy authHelper.CredentialPolicy) *TeacherImporter {
	return &TeacherImporter{DB: db, Credentials: policy}
}

func (s *TeacherImporter) BulkUpload(ctx context.Context, file io.Reader) (*d.ImportResult, error) {
	rows, err := ssvc.ParseRoster(file)
	if err != nil {
		return nil, err
	}

	result := &d.ImportResult{}
	seenEmails := map[string]struct{}{}

	for i := 0; i < len(rows); i += importBatchSize {
		end := i + importBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[i:end]
		batchIdx := i / importBatchSize

		if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.processBatch(tx, batch, seenEmails, result)
		}); err != nil {
			return nil, fmt.Errorf("bulk upload failed at batch %d: %w", batchIdx, err)
		}
	}

	return result, nil
}

func (s *TeacherImporter) processBatch(tx *gorm.DB, rows []ssvc.RosterRow, seenEmails map[string]struct{}, res *d.ImportResult) error {
	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		if v := strings.ToLower(row.Get("email")); v != "" {
			emails = append(emails, v)
		}
	}

	var existing []string
	if err := tx.Model(&tm.TeacherModel{}).
		Where("teacher_email IN ?", emails).
		Pluck("teacher_email", &existing).Error; err != nil {
		return err
	}
	existingSet := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		existingSet[strings.ToLower(e)] = struct{}{}
	}

	defaultHash, err := s.Credentials.DefaultCredential()
	if err != nil {
		return err
	}

	teachers := make([]tm.TeacherModel, 0, len(rows))
	for _, row := range rows {
		email := strings.ToLower(row.Get("email"))
		firstName := row.Get("firstName")
		lastName := row.Get("lastName")

		switch {
		case email == "" || firstName == "" || lastName == "":
			s.skip(res, row.SheetRow, "missing required fields")
			continue
		case containsKey(existingSet, email) || containsKey(seenEmails, email):
			s.skip(res, row.SheetRow, "teacher email already exists")
			continue
		}

		seenEmails[email] = struct{}{}
		teachers = append(teachers, tm.TeacherModel{
			TeacherFirstName:  firstName,
			TeacherLastName:   lastName,
			TeacherGender:     row.Get("Gender"),
			TeacherPhone:      row.Get("phone"),
			TeacherEmail:      email,
			TeacherPassword:   defaultHash,
			TeacherDepartment: row.Get("department"),
			TeacherAddress:    row.Get("address"),
		})
	}

	if len(teachers) == 0 {
		return nil
	}
	if err := tx.Create(&teachers).Error; err != nil {
		return err
	}
	res.InsertedCount += len(teachers)
	return nil
}

func (s *TeacherImporter) skip(res *d.ImportResult, sheetRow int, reason string) {
	res.SkippedCount++
	if len(res.Skipped) < maxSkipDetails {
		res.Skipped = append(res.Skipped, d.SkippedRow{Row: sheetRow, Reason: reason})
	}
}

func containsKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
