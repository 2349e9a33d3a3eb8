// file: internals/features/school/students/service/import_service_test.go
package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d "srs_backend/internals/features/school/students/dto"
)

func importRow(sheetRow int, overrides map[string]string) RosterRow {
	vals := map[string]string{
		"studentId":          "S-100",
		"firstName":          "Ada",
		"lastName":           "Byron",
		"Grade":              "6",
		"Section":            "A",
		"Gender":             "F",
		"DOB":                "2012-02-02",
		"email":              "ada@example.com",
		"phone":              "555-0100",
		"address":            "1 Main St",
		"emergencyContact":   "555-0199",
		"enrollDate":         "2020-08-15",
		"guardianName":       "Ana Byron",
		"guardianEmail":      "ana@example.com",
		"guardianPhone":      "555-0101",
		"guardianRelation":   "Mother",
		"guardianProfession": "Engineer",
	}
	for k, v := range overrides {
		vals[k] = v
	}
	return RosterRow{SheetRow: sheetRow, Values: vals}
}

func emptyIndex() *existingIndex {
	return &existingIndex{
		studentEmails:  map[string]struct{}{},
		studentNumbers: map[string]struct{}{},
		guardianEmails: map[string]struct{}{},
	}
}

/* =========================
   Row screening
   ========================= */

func TestScreenRowsSkipsRowsAlreadyPersisted(t *testing.T) {
	imp := &RosterImporter{}
	res := &d.ImportResult{}
	existing := emptyIndex()
	existing.studentEmails["ada@example.com"] = struct{}{}

	rows := []RosterRow{
		importRow(2, nil),
		importRow(3, map[string]string{
			"studentId":     "S-101",
			"email":         "beth@example.com",
			"guardianEmail": "bob@example.com",
		}),
	}
	candidates := imp.screenRows(rows, existing, newImportSeen(), res)

	require.Len(t, candidates, 1)
	assert.Equal(t, "beth@example.com", candidates[0].student.StudentEmail)
	assert.Equal(t, 1, res.SkippedCount)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Row)
	assert.Equal(t, "student email already exists", res.Skipped[0].Reason)
}

func TestScreenRowsSkipReasons(t *testing.T) {
	existing := emptyIndex()
	existing.studentNumbers["s-900"] = struct{}{}
	existing.guardianEmails["taken@example.com"] = struct{}{}

	cases := []struct {
		name      string
		overrides map[string]string
		reason    string
	}{
		{"missing required field", map[string]string{"enrollDate": ""}, "missing required fields"},
		{"duplicate roll number", map[string]string{"studentId": "S-900"}, "student id already exists"},
		{"guardian email taken", map[string]string{"guardianEmail": "taken@example.com"}, "guardian email already registered"},
		{"student equals guardian", map[string]string{"guardianEmail": "ada@example.com"}, "student and guardian share the same email"},
		{"bad enroll date", map[string]string{"enrollDate": "15-08-2020"}, "invalid enrollDate (expected YYYY-MM-DD)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			imp := &RosterImporter{}
			res := &d.ImportResult{}
			candidates := imp.screenRows([]RosterRow{importRow(2, tc.overrides)}, existing, newImportSeen(), res)

			assert.Empty(t, candidates)
			assert.Equal(t, 1, res.SkippedCount)
			require.Len(t, res.Skipped, 1)
			assert.Equal(t, tc.reason, res.Skipped[0].Reason)
		})
	}
}

func TestScreenRowsCatchesDuplicatesInsideUpload(t *testing.T) {
	imp := &RosterImporter{}
	res := &d.ImportResult{}

	rows := []RosterRow{
		importRow(2, nil),
		importRow(3, map[string]string{
			"studentId":     "S-101",
			"email":         "Ada@Example.com", // same email, different case
			"guardianEmail": "other@example.com",
		}),
	}
	candidates := imp.screenRows(rows, emptyIndex(), newImportSeen(), res)

	require.Len(t, candidates, 1)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 3, res.Skipped[0].Row)
	assert.Equal(t, "student email already exists", res.Skipped[0].Reason)
}

func TestScreenRowsBuildsCandidate(t *testing.T) {
	imp := &RosterImporter{}
	res := &d.ImportResult{}

	candidates := imp.screenRows(
		[]RosterRow{importRow(2, map[string]string{"email": "Ada@Example.com"})},
		emptyIndex(), newImportSeen(), res)

	require.Len(t, candidates, 1)
	st := candidates[0].student
	assert.Equal(t, "6", st.StudentClassName, "Grade header maps to class")
	assert.Equal(t, "A", st.StudentSection)
	assert.Equal(t, "ada@example.com", st.StudentEmail)
	assert.Equal(t, "2025-08-15", st.StudentExpectedGraduation)
	assert.Equal(t, "N/A", st.StudentProfilePhoto)
	assert.Equal(t, "ana@example.com", candidates[0].guardian.GuardianEmail)
	assert.Zero(t, res.SkippedCount)
}

/* =========================
   Chunk orchestration
   ========================= */

func TestInBatchesChunkSizes(t *testing.T) {
	rows := make([]RosterRow, 250)
	var sizes []int
	err := inBatches(rows, 100, func(batch []RosterRow) error {
		sizes = append(sizes, len(batch))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{100, 100, 50}, sizes)
}

func TestInBatchesStopsAtFailingChunk(t *testing.T) {
	rows := make([]RosterRow, 250)
	inserted := 0
	calls := 0
	err := inBatches(rows, 100, func(batch []RosterRow) error {
		calls++
		if calls == 2 {
			return errors.New("insert failed")
		}
		inserted += len(batch)
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bulk upload failed at batch 1")
	assert.Equal(t, 2, calls, "later chunks never run")
	assert.Equal(t, 100, inserted, "the first chunk's work stands")
}

/* =========================
   Skip accounting
   ========================= */

func TestSkipKeepsCountButCapsDetails(t *testing.T) {
	imp := &RosterImporter{}
	res := &d.ImportResult{}

	for i := 0; i < maxSkipDetails+25; i++ {
		imp.skip(res, i+2, fmt.Sprintf("reason %d", i))
	}

	assert.Equal(t, maxSkipDetails+25, res.SkippedCount)
	assert.Len(t, res.Skipped, maxSkipDetails)
	assert.Equal(t, 2, res.Skipped[0].Row)
	assert.Equal(t, "reason 0", res.Skipped[0].Reason)
}

func TestImportSeenStartsEmpty(t *testing.T) {
	seen := newImportSeen()
	assert.Empty(t, seen.studentEmails)
	assert.Empty(t, seen.studentNumbers)
	assert.False(t, contains(seen.studentEmails, "ada@example.com"))
}
