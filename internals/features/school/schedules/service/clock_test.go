// file: internals/features/school/schedules/service/clock_test.go
package service

import "testing"

func TestParseClockMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"01:00 AM", 60},
		{"08:30 AM", 510},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:45 PM", 765},
		{"01:00 PM", 780},
		{"11:59 PM", 1439},
		{"  10:00 AM ", 600}, // leading/trailing whitespace tolerated
		{"10:00 am", 600},    // suffix is case-insensitive
	}
	for _, tc := range cases {
		got, err := ParseClockMinutes(tc.in)
		if err != nil {
			t.Errorf("ParseClockMinutes(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClockMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseClockMinutesRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"10:00",      // missing suffix
		"10 AM",      // missing minutes
		"13:00 PM",   // hour out of 1..12
		"00:30 AM",   // hour zero not allowed on a 12h clock
		"10:60 AM",   // minute out of range
		"10:00 XM",   // bad suffix
		"ten:00 AM",  // non-numeric hour
		"10:0a AM",   // non-numeric minute
		"10:00 AM X", // trailing token
	}
	for _, in := range bad {
		if _, err := ParseClockMinutes(in); err == nil {
			t.Errorf("ParseClockMinutes(%q) = nil error, want failure", in)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"disjoint", 60, 120, 180, 240, false},
		{"touching end to start", 60, 120, 120, 180, false},
		{"touching start to end", 120, 180, 60, 120, false},
		{"partial overlap", 60, 130, 120, 180, true},
		{"containment", 60, 240, 120, 180, true},
		{"identical", 60, 120, 60, 120, true},
		{"one minute overlap", 60, 121, 120, 180, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v", tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
			}
		})
	}
}
