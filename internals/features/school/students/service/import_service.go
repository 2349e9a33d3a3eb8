// file: internals/features/school/students/service/import_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gm "srs_backend/internals/features/school/guardians/model"
	d "srs_backend/internals/features/school/students/dto"
	sm "srs_backend/internals/features/school/students/model"
	authHelper "srs_backend/internals/features/users/auth/helper"
)

const (
	importBatchSize = 100
	maxSkipDetails  = 50
)

// RosterImporter ingests a registrar spreadsheet and commits only the rows
// that survive validation. Each sub-batch of 100 rows commits in its own
// transaction: a failing sub-batch rolls back alone and aborts the remainder,
// while sub-batches already committed stay committed.
type RosterImporter struct {
	DB          *gorm.DB
	Credentials authHelper.CredentialPolicy
}

func NewRosterImporter(db *gorm.DB, policy authHelper.CredentialPolicy) *RosterImporter {
	return &RosterImporter{DB: db, Credentials: policy}
}

type rosterCandidate struct {
	student  sm.StudentModel
	guardian gm.GuardianModel
}

// existingIndex holds the persisted identities a batch is screened against.
// All keys are lowercased.
type existingIndex struct {
	studentEmails  map[string]struct{}
	studentNumbers map[string]struct{}
	guardianEmails map[string]struct{}
}

// importSeen tracks identities claimed by earlier rows of the same upload, so
// duplicates inside the file are caught before they hit the unique indexes.
type importSeen struct {
	studentEmails  map[string]struct{}
	studentNumbers map[string]struct{}
}

func newImportSeen() *importSeen {
	return &importSeen{
		studentEmails:  map[string]struct{}{},
		studentNumbers: map[string]struct{}{},
	}
}

/* =========================
   Entry point
   ========================= */

func (s *RosterImporter) BulkUpload(ctx context.Context, file io.Reader) (*d.ImportResult, error) {
	rows, err := ParseRoster(file)
	if err != nil {
		return nil, err
	}

	result := &d.ImportResult{}
	seen := newImportSeen()

	if err := inBatches(rows, importBatchSize, func(batch []RosterRow) error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.processBatch(tx, batch, seen, result)
		})
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// inBatches feeds rows to fn in fixed-size chunks, stopping at the first
// failure. The returned error names the failing chunk; chunks already handled
// keep whatever fn committed for them.
func inBatches(rows []RosterRow, size int, fn func(batch []RosterRow) error) error {
	for i := 0; i < len(rows); i += size {
		end := i + size
		if end > len(rows) {
			end = len(rows)
		}
		if err := fn(rows[i:end]); err != nil {
			return fmt.Errorf("bulk upload failed at batch %d: %w", i/size, err)
		}
	}
	return nil
}

/* =========================
   Per-batch pipeline
   ========================= */

func (s *RosterImporter) processBatch(tx *gorm.DB, rows []RosterRow, seen *importSeen, res *d.ImportResult) error {
	existing, err := s.fetchExisting(tx, rows)
	if err != nil {
		return err
	}

	candidates := s.screenRows(rows, existing, seen, res)
	if len(candidates) == 0 {
		return nil
	}

	guardianIDs, err := s.upsertGuardians(tx, candidates)
	if err != nil {
		return err
	}

	defaultHash, err := s.Credentials.DefaultCredential()
	if err != nil {
		return err
	}

	students := make([]sm.StudentModel, 0, len(candidates))
	for _, cand := range candidates {
		st := cand.student
		gid, ok := guardianIDs[cand.guardian.GuardianEmail]
		if !ok {
			return fmt.Errorf("guardian id missing for %s after upsert", cand.guardian.GuardianEmail)
		}
		st.StudentGuardianID = gid
		st.StudentPassword = defaultHash
		students = append(students, st)
	}

	if err := tx.Create(&students).Error; err != nil {
		return err
	}
	res.InsertedCount += len(students)
	return nil
}

// fetchExisting plucks the live identities the batch rows could collide with.
// Soft-deleted rows are excluded on purpose: the unique indexes are partial,
// so a deleted student or guardian no longer claims its email or number.
func (s *RosterImporter) fetchExisting(tx *gorm.DB, rows []RosterRow) (*existingIndex, error) {
	emails := make([]string, 0, len(rows))
	numbers := make([]string, 0, len(rows))
	guardianEmails := make([]string, 0, len(rows))
	for _, row := range rows {
		if v := strings.ToLower(row.Get("email")); v != "" {
			emails = append(emails, v)
		}
		if v := row.Get("studentId"); v != "" {
			numbers = append(numbers, v)
		}
		if v := strings.ToLower(row.Get("guardianEmail")); v != "" {
			guardianEmails = append(guardianEmails, v)
		}
	}

	studentEmails, err := pluckSet(tx.Model(&sm.StudentModel{}).Where("student_email IN ?", emails), "student_email")
	if err != nil {
		return nil, err
	}
	studentNumbers, err := pluckSet(tx.Model(&sm.StudentModel{}).Where("student_number IN ?", numbers), "student_number")
	if err != nil {
		return nil, err
	}
	guardians, err := pluckSet(tx.Model(&gm.GuardianModel{}).Where("guardian_email IN ?", guardianEmails), "guardian_email")
	if err != nil {
		return nil, err
	}

	return &existingIndex{
		studentEmails:  studentEmails,
		studentNumbers: studentNumbers,
		guardianEmails: guardians,
	}, nil
}

// screenRows validates the batch rows against persisted identities and
// earlier rows of the same upload. Failing rows are counted and captured (up
// to maxSkipDetails) but never abort the batch.
func (s *RosterImporter) screenRows(rows []RosterRow, existing *existingIndex, seen *importSeen, res *d.ImportResult) []rosterCandidate {
	candidates := make([]rosterCandidate, 0, len(rows))
	for _, row := range rows {
		number := row.Get("studentId")
		email := strings.ToLower(row.Get("email"))
		guardianEmail := strings.ToLower(row.Get("guardianEmail"))
		enrollDate := row.Get("enrollDate")

		switch {
		case number == "" || email == "" || guardianEmail == "" || enrollDate == "":
			s.skip(res, row.SheetRow, "missing required fields")
			continue
		case contains(existing.studentEmails, email) || contains(seen.studentEmails, email):
			s.skip(res, row.SheetRow, "student email already exists")
			continue
		case contains(existing.studentNumbers, strings.ToLower(number)) || contains(seen.studentNumbers, strings.ToLower(number)):
			s.skip(res, row.SheetRow, "student id already exists")
			continue
		case contains(existing.guardianEmails, guardianEmail):
			s.skip(res, row.SheetRow, "guardian email already registered")
			continue
		case email == guardianEmail:
			s.skip(res, row.SheetRow, "student and guardian share the same email")
			continue
		}

		graduation, err := CalculateGraduationDate(enrollDate)
		if err != nil {
			s.skip(res, row.SheetRow, "invalid enrollDate (expected YYYY-MM-DD)")
			continue
		}

		seen.studentEmails[email] = struct{}{}
		seen.studentNumbers[strings.ToLower(number)] = struct{}{}

		candidates = append(candidates, rosterCandidate{
			student: sm.StudentModel{
				StudentNumber:             number,
				StudentFirstName:          row.Get("firstName"),
				StudentLastName:           row.Get("lastName"),
				StudentClassName:          row.Get("Grade"), // registrar export header
				StudentSection:            row.Get("Section"),
				StudentGender:             row.Get("Gender"),
				StudentDOB:                row.Get("DOB"),
				StudentEmail:              email,
				StudentPhone:              row.Get("phone"),
				StudentAddress:            row.Get("address"),
				StudentEmergencyContact:   row.Get("emergencyContact"),
				StudentEnrollDate:         enrollDate,
				StudentExpectedGraduation: graduation,
				StudentProfilePhoto:       "N/A",
			},
			guardian: gm.GuardianModel{
				GuardianName:       row.Get("guardianName"),
				GuardianEmail:      guardianEmail,
				GuardianPhone:      row.Get("guardianPhone"),
				GuardianRelation:   row.Get("guardianRelation"),
				GuardianProfession: row.Get("guardianProfession"),
				GuardianPhoto:      "N/A",
			},
		})
	}

	return candidates
}

// upsertGuardians inserts the batch guardians with first-write-wins semantics:
// an email already present (persisted or earlier in the batch) is never
// overwritten. Returns the email→id mapping for stamping students. The
// conflict target names the partial-index predicate so Postgres resolves the
// arbiter against live rows only.
func (s *RosterImporter) upsertGuardians(tx *gorm.DB, candidates []rosterCandidate) (map[string]uuid.UUID, error) {
	defaultHash, err := s.Credentials.DefaultCredential()
	if err != nil {
		return nil, err
	}

	uniq := map[string]struct{}{}
	guardians := make([]gm.GuardianModel, 0, len(candidates))
	emails := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		email := cand.guardian.GuardianEmail
		if _, dup := uniq[email]; dup {
			continue
		}
		uniq[email] = struct{}{}
		g := cand.guardian
		g.GuardianPassword = defaultHash
		guardians = append(guardians, g)
		emails = append(emails, email)
	}
	if len(guardians) == 0 {
		return map[string]uuid.UUID{}, nil
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "guardian_email"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "guardian_deleted_at IS NULL"}}},
		DoNothing:   true,
	}).Create(&guardians).Error; err != nil {
		return nil, err
	}

	var rows []gm.GuardianModel
	if err := tx.Select("guardian_id", "guardian_email").
		Where("guardian_email IN ?", emails).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]uuid.UUID, len(rows))
	for _, g := range rows {
		out[g.GuardianEmail] = g.GuardianID
	}
	return out, nil
}

func (s *RosterImporter) skip(res *d.ImportResult, sheetRow int, reason string) {
	res.SkippedCount++
	if len(res.Skipped) < maxSkipDetails {
		res.Skipped = append(res.Skipped, d.SkippedRow{Row: sheetRow, Reason: reason})
	}
}

/* =========================
   Small helpers
   ========================= */

func pluckSet(q *gorm.DB, column string) (map[string]struct{}, error) {
	var values []string
	if err := q.Pluck(column, &values).Error; err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[strings.ToLower(v)] = struct{}{}
	}
	return out, nil
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
