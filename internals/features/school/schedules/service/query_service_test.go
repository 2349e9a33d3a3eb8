// file: internals/features/school/schedules/service/query_service_test.go
package service

import (
	"testing"
	"time"
)

func TestResolveDayKeyword(t *testing.T) {
	// Wednesday
	now := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		keyword string
		want    string
	}{
		{"", ""},
		{"all", ""},
		{"ALL", ""},
		{"today", "Wednesday"},
		{"Today", "Wednesday"},
		{"tomorrow", "Thursday"},
		{"yesterday", "Tuesday"},
		{"monday", "Monday"},
		{"FRIDAY", "Friday"},
		{" saturday ", "Saturday"},
	}
	for _, tc := range cases {
		if got := ResolveDayKeyword(tc.keyword, now); got != tc.want {
			t.Errorf("ResolveDayKeyword(%q) = %q, want %q", tc.keyword, got, tc.want)
		}
	}
}

func TestResolveDayKeywordWeekBoundaries(t *testing.T) {
	sunday := time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC)
	if got := ResolveDayKeyword("tomorrow", sunday); got != "Monday" {
		t.Errorf("tomorrow from Sunday = %q, want Monday", got)
	}
	monday := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	if got := ResolveDayKeyword("yesterday", monday); got != "Sunday" {
		t.Errorf("yesterday from Monday = %q, want Sunday", got)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"monday":    "Monday",
		"MONDAY":    "Monday",
		"mOnDaY":    "Monday",
		"  friday ": "Friday",
	}
	for in, want := range cases {
		if got := capitalizeFirst(in); got != want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDayOrderCoversFullWeek(t *testing.T) {
	if len(dayOrder) != 7 {
		t.Fatalf("dayOrder has %d entries, want 7", len(dayOrder))
	}
	if dayOrder["Monday"] != 0 || dayOrder["Sunday"] != 6 {
		t.Errorf("dayOrder must run Monday..Sunday, got Monday=%d Sunday=%d",
			dayOrder["Monday"], dayOrder["Sunday"])
	}
}
