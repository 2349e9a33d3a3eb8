// file: internals/helpers/json_response_test.go
package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name          string
		total         int64
		page, perPage int
		wantPages     int
		wantNext      bool
		wantPrev      bool
	}{
		{"first of many", 95, 1, 10, 10, true, false},
		{"middle page", 95, 5, 10, 10, true, true},
		{"last page", 95, 10, 10, 10, false, true},
		{"exact fit", 100, 10, 10, 10, false, true},
		{"empty result still one page", 0, 1, 10, 1, false, false},
		{"zero per page falls back", 40, 1, 0, 2, true, false},
		{"zero page falls back", 40, 0, 20, 2, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.HasNext != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.wantNext)
			}
			if p.HasPrev != tc.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.wantPrev)
			}
		})
	}
}
