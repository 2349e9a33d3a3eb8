// file: internals/features/school/students/service/spreadsheet_test.go
package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildRosterFile(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseRoster(t *testing.T) {
	buf := buildRosterFile(t, [][]interface{}{
		{"studentId", "firstName", "email", "enrollDate"},
		{"S-001", "Ada", "ada@example.com", "2020-08-15"},
		{"S-002", "  Brin  ", "brin@example.com", "2021-01-04"},
	})

	rows, err := ParseRoster(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].SheetRow)
	assert.Equal(t, "S-001", rows[0].Get("studentId"))
	assert.Equal(t, "ada@example.com", rows[0].Get("email"))

	assert.Equal(t, 3, rows[1].SheetRow)
	assert.Equal(t, "Brin", rows[1].Get("firstName"), "cell values are trimmed")
	assert.Equal(t, "", rows[1].Get("noSuchColumn"))
}

func TestParseRosterSkipsBlankRows(t *testing.T) {
	buf := buildRosterFile(t, [][]interface{}{
		{"studentId", "firstName"},
		{"S-001", "Ada"},
		{"", ""},
		{"S-003", "Cleo"},
	})

	rows, err := ParseRoster(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "S-001", rows[0].Get("studentId"))
	assert.Equal(t, "S-003", rows[1].Get("studentId"))
	assert.Equal(t, 4, rows[1].SheetRow, "sheet row numbers survive blank-row removal")
}

func TestParseRosterHeaderOnly(t *testing.T) {
	buf := buildRosterFile(t, [][]interface{}{
		{"studentId", "firstName"},
	})

	rows, err := ParseRoster(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRosterRejectsNonSpreadsheet(t *testing.T) {
	_, err := ParseRoster(strings.NewReader("definitely not an xlsx payload"))
	assert.Error(t, err)
}
