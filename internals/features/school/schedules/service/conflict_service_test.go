// file: internals/features/school/schedules/service/conflict_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	m "srs_backend/internals/features/school/schedules/model"
)

func schedWith(days ...m.ScheduleDay) m.ScheduleModel {
	return m.ScheduleModel{
		ScheduleClassName: "class 5",
		ScheduleSection:   "A",
		ScheduleDayOfWeek: datatypes.NewJSONSlice(days),
	}
}

func TestFirstOverlapDetectsClash(t *testing.T) {
	existing := []m.ScheduleModel{
		schedWith(m.ScheduleDay{StartTime: "10:00 AM", EndTime: "12:00 PM", Date: "Monday"}),
	}
	candidate := schedWith(m.ScheduleDay{StartTime: "11:00 AM", EndTime: "01:00 PM", Date: "Monday"})

	msg := firstOverlap(existing, &candidate, candidate.ScheduleDayOfWeek[0], conflictScopes()[0])
	assert.Equal(t, "Teacher conflict: Teacher already has a class on Monday between 10:00 AM and 12:00 PM", msg)
}

func TestFirstOverlapScopeMessages(t *testing.T) {
	existing := []m.ScheduleModel{
		schedWith(m.ScheduleDay{StartTime: "09:00 AM", EndTime: "10:00 AM", Date: "Friday"}),
	}
	candidate := schedWith(m.ScheduleDay{StartTime: "09:30 AM", EndTime: "10:30 AM", Date: "Friday"})
	day := candidate.ScheduleDayOfWeek[0]

	assert.Equal(t,
		"Classroom conflict: Class class 5-A already has a schedule on Friday between 09:00 AM and 10:00 AM",
		firstOverlap(existing, &candidate, day, conflictScopes()[1]))
	assert.Equal(t,
		"Course conflict: This course already has a schedule on Friday between 09:00 AM and 10:00 AM",
		firstOverlap(existing, &candidate, day, conflictScopes()[2]))
}

func TestFirstOverlapBackToBackIsClear(t *testing.T) {
	existing := []m.ScheduleModel{
		schedWith(m.ScheduleDay{StartTime: "10:00 AM", EndTime: "12:00 PM", Date: "Monday"}),
	}
	candidate := schedWith(m.ScheduleDay{StartTime: "12:00 PM", EndTime: "02:00 PM", Date: "Monday"})

	msg := firstOverlap(existing, &candidate, candidate.ScheduleDayOfWeek[0], conflictScopes()[0])
	assert.Empty(t, msg, "slot starting exactly when another ends must not clash")
}

func TestFirstOverlapIgnoresOtherDays(t *testing.T) {
	existing := []m.ScheduleModel{
		schedWith(m.ScheduleDay{StartTime: "10:00 AM", EndTime: "12:00 PM", Date: "Tuesday"}),
	}
	candidate := schedWith(m.ScheduleDay{StartTime: "10:00 AM", EndTime: "12:00 PM", Date: "Monday"})

	msg := firstOverlap(existing, &candidate, candidate.ScheduleDayOfWeek[0], conflictScopes()[0])
	assert.Empty(t, msg)
}

func TestFirstOverlapSkipsMalformedStoredSlots(t *testing.T) {
	existing := []m.ScheduleModel{
		schedWith(
			m.ScheduleDay{StartTime: "not a clock", EndTime: "12:00 PM", Date: "Monday"},
			m.ScheduleDay{StartTime: "10:00 AM", EndTime: "garbled", Date: "Monday"},
		),
	}
	candidate := schedWith(m.ScheduleDay{StartTime: "10:00 AM", EndTime: "12:00 PM", Date: "Monday"})

	msg := firstOverlap(existing, &candidate, candidate.ScheduleDayOfWeek[0], conflictScopes()[0])
	assert.Empty(t, msg, "stored slots with unparseable times are skipped")
}

func TestFirstOverlapMultiSlotSchedule(t *testing.T) {
	existing := []m.ScheduleModel{
		schedWith(
			m.ScheduleDay{StartTime: "08:00 AM", EndTime: "09:00 AM", Date: "Monday"},
			m.ScheduleDay{StartTime: "02:00 PM", EndTime: "03:00 PM", Date: "Monday"},
		),
	}
	candidate := schedWith(m.ScheduleDay{StartTime: "02:30 PM", EndTime: "04:00 PM", Date: "Monday"})

	msg := firstOverlap(existing, &candidate, candidate.ScheduleDayOfWeek[0], conflictScopes()[0])
	assert.Contains(t, msg, "between 02:00 PM and 03:00 PM")
}

func TestValidateSlots(t *testing.T) {
	ok := []m.ScheduleDay{
		{StartTime: "10:00 AM", EndTime: "12:00 PM", Date: "Monday"},
		{StartTime: "01:00 PM", EndTime: "03:00 PM", Date: "Wednesday"},
	}
	assert.NoError(t, validateSlots(ok))

	bad := []m.ScheduleDay{
		{StartTime: "10:00 AM", EndTime: "25:00 PM", Date: "Monday"},
	}
	assert.Error(t, validateSlots(bad))
}

func TestDayContainsJSON(t *testing.T) {
	assert.Equal(t, `[{"date":"Monday"}]`, string(dayContainsJSON("Monday")))
}
