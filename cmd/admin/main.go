package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/app"
	"github.com/apper-canvas/classhub-haptic-panel/internal/config"
	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/render"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"github.com/apper-canvas/classhub-haptic-panel/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Админская утилита: CRUD-операции и отчёты без UI.
//
//	admin add-student -name "Sarah Johnson" -email sarah@example.com -grade "10th Grade"
//	admin add-class -name Algebra -subject Math -instructor "Mr. Smith" -schedule "Mon,Wed,Fri 10:00-11:00"
//	admin add-assignment -class 1 -title "Quiz Chapter 5" -due 2024-07-15T23:59:00Z
//	admin enroll -student 1 -class 1
//	admin events -start 2024-07-01 -end 2024-07-31 -type all -search ""
//	admin render-week -start 2024-07-01 -out week.png

type services struct {
	students    *service.StudentService
	classes     *service.ClassService
	assignments *service.AssignmentService
	grades      *service.GradeService
	attendance  *service.AttendanceService
	activity    *service.ActivityService
	calendar    *service.CalendarService
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: admin <command> [flags]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool, logger)
	classRepo := repository.NewClassRepository(pool, logger)
	assignmentRepo := repository.NewAssignmentRepository(pool, logger)
	gradeRepo := repository.NewGradeRepository(pool, logger)
	attendanceRepo := repository.NewAttendanceRepository(pool, logger)
	activityRepo := repository.NewActivityRepository(pool, logger)

	svc := &services{
		students:    service.NewStudentService(studentRepo, classRepo, activityRepo, logger),
		classes:     service.NewClassService(classRepo, logger),
		assignments: service.NewAssignmentService(assignmentRepo, classRepo, activityRepo, logger),
		grades:      service.NewGradeService(gradeRepo, studentRepo, activityRepo, logger),
		attendance:  service.NewAttendanceService(attendanceRepo, classRepo, activityRepo, logger),
		activity:    service.NewActivityService(activityRepo, logger),
		calendar:    service.NewCalendarService(classRepo, assignmentRepo, service.NewStaticSchoolEventSource(), logger),
	}

	if err := runCommand(ctx, svc, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func runCommand(ctx context.Context, svc *services, command string, args []string) error {
	switch command {
	case "add-student":
		return addStudent(ctx, svc, args)
	case "add-class":
		return addClass(ctx, svc, args)
	case "add-assignment":
		return addAssignment(ctx, svc, args)
	case "enroll":
		return enroll(ctx, svc, args)
	case "mark":
		return markAttendance(ctx, svc, args)
	case "averages":
		return averages(ctx, svc, args)
	case "attendance-stats":
		return attendanceStats(ctx, svc, args)
	case "activity":
		return activityFeed(ctx, svc, args)
	case "events":
		return listEvents(ctx, svc, args)
	case "render-week":
		return renderWeek(ctx, svc, args)
	default:
		return fmt.Errorf("unknown command")
	}
}

func addStudent(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("add-student", flag.ExitOnError)
	name := fs.String("name", "", "student name")
	email := fs.String("email", "", "student email")
	grade := fs.String("grade", "", "grade level")
	fs.Parse(args)

	student := &model.Student{Name: *name, Email: *email, Grade: *grade}
	if err := svc.students.Create(ctx, student); err != nil {
		return err
	}

	fmt.Printf("student %d created\n", student.ID)
	return nil
}

func addClass(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("add-class", flag.ExitOnError)
	name := fs.String("name", "", "class name")
	subject := fs.String("subject", "", "subject")
	instructor := fs.String("instructor", "", "instructor name")
	schedule := fs.String("schedule", "", `weekly schedule, e.g. "Mon,Wed,Fri 10:00-11:00"`)
	room := fs.String("room", "", "room (optional)")
	fs.Parse(args)

	class := &model.Class{
		Name:       *name,
		Subject:    *subject,
		Instructor: *instructor,
		Schedule:   *schedule,
	}
	if *room != "" {
		class.Room = room
	}

	if err := svc.classes.Create(ctx, class); err != nil {
		return err
	}

	fmt.Printf("class %d created\n", class.ID)
	return nil
}

func addAssignment(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("add-assignment", flag.ExitOnError)
	classID := fs.Int64("class", 0, "class id")
	title := fs.String("title", "", "assignment title")
	description := fs.String("description", "", "description")
	due := fs.String("due", "", "due date, RFC3339")
	fs.Parse(args)

	dueDate, err := time.Parse(time.RFC3339, *due)
	if err != nil {
		return fmt.Errorf("parse due date: %w", err)
	}

	assignment := &model.Assignment{
		ClassID:     *classID,
		Title:       *title,
		Description: *description,
		DueDate:     dueDate,
	}
	if err := svc.assignments.Create(ctx, assignment); err != nil {
		return err
	}

	fmt.Printf("assignment %d created\n", assignment.ID)
	return nil
}

func enroll(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("enroll", flag.ExitOnError)
	studentID := fs.Int64("student", 0, "student id")
	classID := fs.Int64("class", 0, "class id")
	fs.Parse(args)

	return svc.students.EnrollInClass(ctx, *studentID, *classID)
}

func markAttendance(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("mark", flag.ExitOnError)
	studentID := fs.Int64("student", 0, "student id")
	classID := fs.Int64("class", 0, "class id")
	date := fs.String("date", "", "date, 2006-01-02")
	status := fs.String("status", "present", "present|absent|late")
	note := fs.String("note", "", "note")
	markedBy := fs.String("by", "Teacher", "who marked")
	fs.Parse(args)

	day, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}

	return svc.attendance.Mark(ctx, &model.AttendanceRecord{
		StudentID: *studentID,
		ClassID:   *classID,
		Date:      day,
		Status:    model.AttendanceStatus(*status),
		Note:      *note,
		MarkedBy:  *markedBy,
	})
}

func averages(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("averages", flag.ExitOnError)
	studentID := fs.Int64("student", 0, "student id (0 = skip)")
	classID := fs.Int64("class", 0, "class id (0 = skip)")
	fs.Parse(args)

	if *classID != 0 {
		avg, err := svc.grades.ClassAverage(ctx, *classID)
		if err != nil {
			return err
		}
		fmt.Printf("class %d average: %.2f\n", *classID, avg)
	}

	if *studentID != 0 {
		var class *int64
		if *classID != 0 {
			class = classID
		}
		avg, err := svc.grades.StudentAverage(ctx, *studentID, class)
		if err != nil {
			return err
		}
		fmt.Printf("student %d average: %.2f\n", *studentID, avg)
	}

	return nil
}

func attendanceStats(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("attendance-stats", flag.ExitOnError)
	studentID := fs.Int64("student", 0, "student id")
	classID := fs.Int64("class", 0, "class id (0 = all classes)")
	fs.Parse(args)

	var class *int64
	if *classID != 0 {
		class = classID
	}

	stats, err := svc.attendance.StudentStats(ctx, *studentID, class)
	if err != nil {
		return err
	}

	fmt.Printf("total %d, present %d, absent %d, late %d, rate %d%%\n",
		stats.Total, stats.Present, stats.Absent, stats.Late, stats.AttendanceRate)
	return nil
}

func activityFeed(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ExitOnError)
	activityType := fs.String("type", "all", "student|assignment|grade|attendance|all")
	search := fs.String("search", "", "search term")
	fs.Parse(args)

	var (
		activities []*model.Activity
		err        error
	)
	if *search != "" {
		activities, err = svc.activity.Search(ctx, *search)
	} else {
		activities, err = svc.activity.GetByType(ctx, *activityType)
	}
	if err != nil {
		return err
	}

	for _, activity := range activities {
		fmt.Printf("%s  [%s] %s (%s)\n",
			activity.CreatedAt.Format(time.RFC3339), activity.Type, activity.Description, activity.User)
	}
	return nil
}

func listEvents(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	start := fs.String("start", "", "range start, 2006-01-02")
	end := fs.String("end", "", "range end, 2006-01-02")
	eventType := fs.String("type", "all", "class|assignment|event|all")
	search := fs.String("search", "", "search term")
	fs.Parse(args)

	startDate, endDate, err := parseRange(*start, *end)
	if err != nil {
		return err
	}

	events, err := svc.calendar.EventsForDateRange(ctx, startDate, endDate)
	if err != nil {
		return err
	}

	for _, event := range service.FilterEvents(events, *search, *eventType) {
		line := fmt.Sprintf("%s %s  [%s] %s", event.Date, event.Time, event.Type, event.Title)
		if event.Priority != "" {
			line += fmt.Sprintf(" (%s)", event.Priority)
		}
		fmt.Println(line)
	}
	return nil
}

func renderWeek(ctx context.Context, svc *services, args []string) error {
	fs := flag.NewFlagSet("render-week", flag.ExitOnError)
	start := fs.String("start", "", "week start, 2006-01-02")
	out := fs.String("out", "week.png", "output file")
	fs.Parse(args)

	weekStart, err := time.Parse("2006-01-02", *start)
	if err != nil {
		return fmt.Errorf("parse week start: %w", err)
	}

	events, err := svc.calendar.EventsForDateRange(ctx, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return err
	}

	png, err := render.WeekImage(events, weekStart)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	fmt.Printf("rendered %d events to %s\n", len(events), *out)
	return nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end date: %w", err)
	}
	return startDate, endDate, nil
}
