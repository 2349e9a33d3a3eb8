// file: internals/features/school/students/service/student_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGraduationDate(t *testing.T) {
	cases := []struct {
		enroll string
		want   string
	}{
		{"2020-08-15", "2025-08-15"},
		{"2021-01-01", "2026-01-01"},
		{"2019-12-31", "2024-12-31"},
		{" 2020-08-15 ", "2025-08-15"}, // whitespace tolerated
		{"2020-02-29", "2025-03-01"},   // leap day normalizes forward
	}
	for _, tc := range cases {
		got, err := CalculateGraduationDate(tc.enroll)
		assert.NoError(t, err, "enroll %q", tc.enroll)
		assert.Equal(t, tc.want, got, "enroll %q", tc.enroll)
	}
}

func TestCalculateGraduationDateRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"15-08-2020",
		"2020/08/15",
		"August 15, 2020",
		"2020-13-01",
		"2020-08-32",
	}
	for _, in := range bad {
		_, err := CalculateGraduationDate(in)
		assert.Error(t, err, "enroll %q", in)
	}
}
