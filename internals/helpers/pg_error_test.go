// file: internals/helpers/pg_error_test.go
package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

type fakePGErr struct {
	state string
}

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return "pg error " + e.state }

func TestMapPGError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"exclusion violation", &fakePGErr{"23P01"}, http.StatusConflict, "Schedule clash: time range overlap."},
		{"fk violation", &fakePGErr{"23503"}, http.StatusBadRequest, "Referenced record not found (FK violation)."},
		{"unique violation", &fakePGErr{"23505"}, http.StatusConflict, "Duplicate data (unique violation)."},
		{"unknown sqlstate", &fakePGErr{"40001"}, http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		{"wrapped pg error", fmt.Errorf("query failed: %w", &fakePGErr{"23505"}), http.StatusConflict, "Duplicate data (unique violation)."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := MapPGError(tc.err)
			if code != tc.wantCode || msg != tc.wantMsg {
				t.Errorf("MapPGError() = (%d, %q), want (%d, %q)", code, msg, tc.wantCode, tc.wantMsg)
			}
		})
	}
}
