// file: internals/features/school/students/service/spreadsheet.go
package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RosterRow is one spreadsheet row keyed by the header names of the first row.
type RosterRow struct {
	SheetRow int // 1-based row number in the sheet, for skip diagnostics
	Values   map[string]string
}

func (r RosterRow) Get(column string) string {
	return strings.TrimSpace(r.Values[column])
}

// ParseRoster reads the first sheet of an .xlsx stream. Row 1 is the header;
// every following row becomes a header→cell map. Blank rows are dropped.
func ParseRoster(file io.Reader) ([]RosterRow, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			// nothing actionable; the stream is already consumed
			_ = err
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, errors.New("excel sheet is empty")
	}

	header := rows[0]
	out := make([]RosterRow, 0, len(rows)-1)
	for i, row := range rows {
		if i == 0 {
			continue
		}

		values := make(map[string]string, len(header))
		empty := true
		for j, name := range header {
			name = strings.TrimSpace(name)
			if name == "" || j >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[j])
			if cell != "" {
				empty = false
			}
			values[name] = cell
		}
		if empty {
			continue
		}

		out = append(out, RosterRow{SheetRow: i + 1, Values: values})
	}
	return out, nil
}
