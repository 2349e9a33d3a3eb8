// file: internals/features/school/schedules/service/clock.go
package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClockMinutes converts a 12-hour wall-clock string like "08:30 AM" into
// minutes since midnight. "12 AM" is hour 0, "12 PM" is hour 12.
func ParseClockMinutes(s string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q (expected \"hh:mm AM|PM\")", s)
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid clock value %q (expected \"hh:mm AM|PM\")", s)
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}

	switch strings.ToUpper(parts[1]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	default:
		return 0, fmt.Errorf("invalid AM/PM suffix in %q", s)
	}

	return hours*60 + minutes, nil
}

// Overlaps reports whether two half-open intervals [s1,e1) and [s2,e2) intersect.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}
