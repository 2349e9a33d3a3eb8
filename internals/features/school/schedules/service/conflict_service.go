// file: internals/features/school/schedules/service/conflict_service.go
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	d "srs_backend/internals/features/school/schedules/dto"
	m "srs_backend/internals/features/school/schedules/model"
)

var errScheduleConflict = errors.New("schedule conflict")

// ConflictChecker decides whether a candidate weekly schedule may be committed
// without overlapping an existing one for the same teacher, the same classroom
// (class+section) or the same course. The check and the insert run inside one
// serializable transaction so two concurrent submissions cannot both pass.
type ConflictChecker struct {
	DB *gorm.DB
}

func NewConflictChecker(db *gorm.DB) *ConflictChecker {
	return &ConflictChecker{DB: db}
}

/* =========================
   Scopes
   ========================= */

type conflictScope struct {
	filter  func(q *gorm.DB, sched *m.ScheduleModel) *gorm.DB
	message func(sched *m.ScheduleModel, day, start, end string) string
}

func conflictScopes() []conflictScope {
	return []conflictScope{
		{
			filter: func(q *gorm.DB, sched *m.ScheduleModel) *gorm.DB {
				return q.Where("schedule_teacher_id = ?", sched.ScheduleTeacherID)
			},
			message: func(_ *m.ScheduleModel, day, start, end string) string {
				return fmt.Sprintf("Teacher conflict: Teacher already has a class on %s between %s and %s", day, start, end)
			},
		},
		{
			filter: func(q *gorm.DB, sched *m.ScheduleModel) *gorm.DB {
				return q.Where("schedule_class_name = ? AND schedule_section = ?", sched.ScheduleClassName, sched.ScheduleSection)
			},
			message: func(sched *m.ScheduleModel, day, start, end string) string {
				return fmt.Sprintf("Classroom conflict: Class %s-%s already has a schedule on %s between %s and %s",
					sched.ScheduleClassName, sched.ScheduleSection, day, start, end)
			},
		},
		{
			filter: func(q *gorm.DB, sched *m.ScheduleModel) *gorm.DB {
				return q.Where("schedule_course_id = ?", sched.ScheduleCourseID)
			},
			message: func(_ *m.ScheduleModel, day, start, end string) string {
				return fmt.Sprintf("Course conflict: This course already has a schedule on %s between %s and %s", day, start, end)
			},
		},
	}
}

// dayContainsJSON builds the jsonb containment document for one day name,
// e.g. [{"date":"Monday"}].
func dayContainsJSON(day string) datatypes.JSON {
	b, _ := json.Marshal([]map[string]string{{"date": day}})
	return datatypes.JSON(b)
}

/* =========================
   Pure overlap check
   ========================= */

// firstOverlap scans fetched schedules for the first slot on the candidate day
// that overlaps the candidate interval. Stored slots with malformed times are
// ignored, matching the tolerant legacy behavior. Returns "" when clear.
func firstOverlap(existing []m.ScheduleModel, candidate *m.ScheduleModel, newDay m.ScheduleDay, scope conflictScope) string {
	ns, err := ParseClockMinutes(newDay.StartTime)
	if err != nil {
		return ""
	}
	ne, err := ParseClockMinutes(newDay.EndTime)
	if err != nil {
		return ""
	}

	for _, sched := range existing {
		for _, existingDay := range sched.ScheduleDayOfWeek {
			if existingDay.Date != newDay.Date {
				continue
			}
			es, err := ParseClockMinutes(existingDay.StartTime)
			if err != nil {
				continue
			}
			ee, err := ParseClockMinutes(existingDay.EndTime)
			if err != nil {
				continue
			}
			if Overlaps(es, ee, ns, ne) {
				return scope.message(candidate, newDay.Date, existingDay.StartTime, existingDay.EndTime)
			}
		}
	}
	return ""
}

// findConflict runs all three scope checks for every candidate slot and
// returns the first conflict message, or "" when the schedule is clear.
func findConflict(tx *gorm.DB, sched *m.ScheduleModel, excludeID uuid.UUID) (string, error) {
	for _, scope := range conflictScopes() {
		for _, newDay := range sched.ScheduleDayOfWeek {
			q := scope.filter(tx.Model(&m.ScheduleModel{}), sched).
				Where("schedule_day_of_week @> ?", dayContainsJSON(newDay.Date))
			if excludeID != uuid.Nil {
				q = q.Where("schedule_id <> ?", excludeID)
			}

			var existing []m.ScheduleModel
			if err := q.Find(&existing).Error; err != nil {
				return "", err
			}
			if msg := firstOverlap(existing, sched, newDay, scope); msg != "" {
				return msg, nil
			}
		}
	}
	return "", nil
}

/* =========================
   Create / Update
   ========================= */

// Create validates the candidate slots, checks all three scopes and persists
// the schedule. Conflicts and infrastructure failures are both reported as a
// ScheduleResult; the returned error is only for malformed candidate input.
func (s *ConflictChecker) Create(ctx context.Context, sched *m.ScheduleModel) (*d.ScheduleResult, error) {
	if err := validateSlots(sched.ScheduleDayOfWeek); err != nil {
		return nil, err
	}

	var conflictMsg string
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		msg, err := findConflict(tx, sched, uuid.Nil)
		if err != nil {
			return err
		}
		if msg != "" {
			conflictMsg = msg
			return errScheduleConflict
		}
		return tx.Create(sched).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	switch {
	case txErr == nil:
		return &d.ScheduleResult{Success: true, Message: "Schedule created successfully."}, nil
	case errors.Is(txErr, errScheduleConflict):
		return &d.ScheduleResult{Success: false, Message: conflictMsg}, nil
	default:
		log.Printf("[Schedule.Create] tx error: %v", txErr)
		return &d.ScheduleResult{Success: false, Message: "An error occurred while creating the schedule."}, nil
	}
}

// Update re-runs the full conflict detection, excluding the entry being
// updated, before applying the new values.
func (s *ConflictChecker) Update(ctx context.Context, id uuid.UUID, sched *m.ScheduleModel) (*d.ScheduleResult, error) {
	if err := validateSlots(sched.ScheduleDayOfWeek); err != nil {
		return nil, err
	}

	var conflictMsg string
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current m.ScheduleModel
		if err := tx.First(&current, "schedule_id = ?", id).Error; err != nil {
			return err
		}

		msg, err := findConflict(tx, sched, id)
		if err != nil {
			return err
		}
		if msg != "" {
			conflictMsg = msg
			return errScheduleConflict
		}

		return tx.Model(&m.ScheduleModel{}).
			Where("schedule_id = ?", id).
			Updates(map[string]any{
				"schedule_course_id":   sched.ScheduleCourseID,
				"schedule_teacher_id":  sched.ScheduleTeacherID,
				"schedule_class_name":  sched.ScheduleClassName,
				"schedule_section":     sched.ScheduleSection,
				"schedule_note":        sched.ScheduleNote,
				"schedule_day_of_week": sched.ScheduleDayOfWeek,
			}).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	switch {
	case txErr == nil:
		return &d.ScheduleResult{Success: true, Message: "Schedule updated successfully."}, nil
	case errors.Is(txErr, errScheduleConflict):
		return &d.ScheduleResult{Success: false, Message: conflictMsg}, nil
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return nil, txErr
	default:
		log.Printf("[Schedule.Update] tx error: %v", txErr)
		return &d.ScheduleResult{Success: false, Message: "An error occurred while updating the schedule."}, nil
	}
}

func validateSlots(days []m.ScheduleDay) error {
	for _, day := range days {
		if _, err := ParseClockMinutes(day.StartTime); err != nil {
			return err
		}
		if _, err := ParseClockMinutes(day.EndTime); err != nil {
			return err
		}
	}
	return nil
}
