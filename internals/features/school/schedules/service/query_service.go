// file: internals/features/school/schedules/service/query_service.go
package service

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "srs_backend/internals/features/school/courses/model"
	d "srs_backend/internals/features/school/schedules/dto"
	m "srs_backend/internals/features/school/schedules/model"
	studentModel "srs_backend/internals/features/school/students/model"
	teacherModel "srs_backend/internals/features/school/teachers/model"
)

type ScheduleQueryService struct {
	DB *gorm.DB
}

func NewScheduleQueryService(db *gorm.DB) *ScheduleQueryService {
	return &ScheduleQueryService{DB: db}
}

var dayOrder = map[string]int{
	"Monday": 0, "Tuesday": 1, "Wednesday": 2, "Thursday": 3,
	"Friday": 4, "Saturday": 5, "Sunday": 6,
}

// ResolveDayKeyword maps today/tomorrow/yesterday onto a day name relative to
// now; any other non-empty value is treated as an explicit day name.
func ResolveDayKeyword(keyword string, now time.Time) string {
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "", "all":
		return ""
	case "today":
		return now.Weekday().String()
	case "tomorrow":
		return now.AddDate(0, 0, 1).Weekday().String()
	case "yesterday":
		return now.AddDate(0, 0, -1).Weekday().String()
	default:
		return capitalizeFirst(keyword)
	}
}

func capitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

/* =========================
   List / Get / Delete
   ========================= */

type ListFilter struct {
	ClassName string
	Section   string
	TeacherID uuid.UUID
	Day       string // keyword or explicit day name
}

func (s *ScheduleQueryService) List(ctx context.Context, f ListFilter, offset, limit int) ([]m.ScheduleModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&m.ScheduleModel{})

	if f.ClassName != "" {
		q = q.Where("schedule_class_name = ?", f.ClassName)
	}
	if f.Section != "" {
		q = q.Where("schedule_section = ?", f.Section)
	}
	if f.TeacherID != uuid.Nil {
		q = q.Where("schedule_teacher_id = ?", f.TeacherID)
	}
	if day := ResolveDayKeyword(f.Day, time.Now()); day != "" {
		q = q.Where("schedule_day_of_week @> ?", dayContainsJSON(day))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []m.ScheduleModel
	if err := q.Order("schedule_created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ScheduleQueryService) GetByID(ctx context.Context, id uuid.UUID) (*m.ScheduleModel, error) {
	var sched m.ScheduleModel
	if err := s.DB.WithContext(ctx).First(&sched, "schedule_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sched, nil
}

func (s *ScheduleQueryService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&m.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* =========================
   Student week view
   ========================= */

// WeekScheduleForStudent flattens every slot for the student's class/section
// into one entry per slot, sorted Monday→Sunday then by start time.
func (s *ScheduleQueryService) WeekScheduleForStudent(ctx context.Context, studentID uuid.UUID) ([]d.WeekScheduleItem, error) {
	var student studentModel.StudentModel
	if err := s.DB.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, err
	}

	var schedules []m.ScheduleModel
	if err := s.DB.WithContext(ctx).
		Where("schedule_class_name = ? AND schedule_section = ?", student.StudentClassName, capitalizeFirst(student.StudentSection)).
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	courseNames, teacherNames, err := s.lookupNames(ctx, schedules)
	if err != nil {
		return nil, err
	}

	week := make([]d.WeekScheduleItem, 0, len(schedules))
	for _, sched := range schedules {
		courseName := courseNames[sched.ScheduleCourseID]
		if courseName == "" {
			courseName = "N/A"
		}
		teacherName := teacherNames[sched.ScheduleTeacherID]
		if teacherName == "" {
			teacherName = "N/A"
		}
		for _, day := range sched.ScheduleDayOfWeek {
			week = append(week, d.WeekScheduleItem{
				CourseName:  courseName,
				TeacherName: teacherName,
				Day:         day.Date,
				StartTime:   day.StartTime,
				EndTime:     day.EndTime,
				Note:        sched.ScheduleNote,
			})
		}
	}

	sort.SliceStable(week, func(i, j int) bool {
		di, dj := dayOrder[week[i].Day], dayOrder[week[j].Day]
		if di != dj {
			return di < dj
		}
		si, erri := ParseClockMinutes(week[i].StartTime)
		sj, errj := ParseClockMinutes(week[j].StartTime)
		if erri != nil || errj != nil {
			return week[i].StartTime < week[j].StartTime
		}
		return si < sj
	})

	return week, nil
}

// SchedulesForStudentByDay returns the raw schedule entries for a student's
// class/section, optionally narrowed to one day (keyword or explicit name).
func (s *ScheduleQueryService) SchedulesForStudentByDay(ctx context.Context, studentID uuid.UUID, dayKeyword string) ([]m.ScheduleModel, error) {
	var student studentModel.StudentModel
	if err := s.DB.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, err
	}

	q := s.DB.WithContext(ctx).
		Where("schedule_class_name = ? AND schedule_section = ?", student.StudentClassName, capitalizeFirst(student.StudentSection))
	if day := ResolveDayKeyword(dayKeyword, time.Now()); day != "" {
		q = q.Where("schedule_day_of_week @> ?", dayContainsJSON(day))
	}

	var schedules []m.ScheduleModel
	if err := q.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

/* =========================
   Teacher load summary
   ========================= */

// TeacherLoadSummary counts the students sitting in every room the teacher is
// scheduled for, plus today's class count. Failures degrade to a zeroed
// summary rather than an error, matching the dashboard's tolerant contract.
func (s *ScheduleQueryService) TeacherLoadSummary(ctx context.Context, teacherID uuid.UUID) *d.TeacherLoadSummary {
	var rooms []m.ScheduleModel
	if err := s.DB.WithContext(ctx).
		Where("schedule_teacher_id = ?", teacherID).
		Find(&rooms).Error; err != nil {
		log.Printf("[Schedule.TeacherLoad] fetch rooms: %v", err)
		return &d.TeacherLoadSummary{Success: false}
	}

	var totalStudents int64
	counted := map[[2]string]struct{}{}
	for _, room := range rooms {
		key := [2]string{room.ScheduleClassName, room.ScheduleSection}
		if _, done := counted[key]; done {
			continue
		}
		counted[key] = struct{}{}

		var n int64
		if err := s.DB.WithContext(ctx).Model(&studentModel.StudentModel{}).
			Where("student_class_name = ? AND student_section = ?", room.ScheduleClassName, room.ScheduleSection).
			Count(&n).Error; err != nil {
			log.Printf("[Schedule.TeacherLoad] count students: %v", err)
			return &d.TeacherLoadSummary{Success: false, TotalStudents: totalStudents}
		}
		totalStudents += n
	}

	today := time.Now().Weekday().String()
	var todayClasses int64
	if err := s.DB.WithContext(ctx).Model(&m.ScheduleModel{}).
		Where("schedule_teacher_id = ?", teacherID).
		Where("schedule_day_of_week @> ?", dayContainsJSON(today)).
		Count(&todayClasses).Error; err != nil {
		log.Printf("[Schedule.TeacherLoad] count today: %v", err)
		return &d.TeacherLoadSummary{Success: false, TotalStudents: totalStudents}
	}

	return &d.TeacherLoadSummary{
		Success:       true,
		TotalStudents: totalStudents,
		TodayClasses:  todayClasses,
	}
}

func (s *ScheduleQueryService) lookupNames(ctx context.Context, schedules []m.ScheduleModel) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	courseIDs := make([]uuid.UUID, 0, len(schedules))
	teacherIDs := make([]uuid.UUID, 0, len(schedules))
	for _, sched := range schedules {
		courseIDs = append(courseIDs, sched.ScheduleCourseID)
		teacherIDs = append(teacherIDs, sched.ScheduleTeacherID)
	}

	courseNames := map[uuid.UUID]string{}
	if len(courseIDs) > 0 {
		var courses []courseModel.CourseModel
		if err := s.DB.WithContext(ctx).Where("course_id IN ?", courseIDs).Find(&courses).Error; err != nil {
			return nil, nil, err
		}
		for _, c := range courses {
			courseNames[c.CourseID] = c.CourseName
		}
	}

	teacherNames := map[uuid.UUID]string{}
	if len(teacherIDs) > 0 {
		var teachers []teacherModel.TeacherModel
		if err := s.DB.WithContext(ctx).Where("teacher_id IN ?", teacherIDs).Find(&teachers).Error; err != nil {
			return nil, nil, err
		}
		for _, t := range teachers {
			teacherNames[t.TeacherID] = strings.TrimSpace(t.TeacherFirstName + " " + t.TeacherLastName)
		}
	}

	return courseNames, teacherNames, nil
}
