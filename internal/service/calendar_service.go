package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const unknownClassName = "Unknown Class"

// Источники данных календаря. Репозитории реализуют эти интерфейсы,
// в тестах подставляются фейки.
type (
	ClassSource interface {
		GetAll(ctx context.Context) ([]*model.Class, error)
	}

	AssignmentSource interface {
		GetAll(ctx context.Context) ([]*model.Assignment, error)
	}

	SchoolEventSource interface {
		GetAll(ctx context.Context) ([]*model.SchoolEvent, error)
	}
)

// CalendarService собирает единую ленту событий из занятий,
// сроков сдачи заданий и общешкольных событий
type CalendarService struct {
	classes      ClassSource
	assignments  AssignmentSource
	schoolEvents SchoolEventSource
	logger       *zap.Logger
	now          func() time.Time
}

func NewCalendarService(
	classes ClassSource,
	assignments AssignmentSource,
	schoolEvents SchoolEventSource,
	logger *zap.Logger,
) *CalendarService {
	return &CalendarService{
		classes:      classes,
		assignments:  assignments,
		schoolEvents: schoolEvents,
		logger:       logger,
		now:          time.Now,
	}
}

// EventsForDateRange возвращает все события в диапазоне [start, end]
// включительно, отсортированные по (дата, время).
//
// Контракт "всё или ничего": если любой из трёх источников вернул
// ошибку, частичный результат не возвращается. Пустой диапазон
// (start > end) - это пустой список, а не ошибка.
func (s *CalendarService) EventsForDateRange(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	startDate := truncateToDay(start)
	endDate := truncateToDay(end)
	if startDate.After(endDate) {
		return []model.Event{}, nil
	}

	var (
		classes      []*model.Class
		assignments  []*model.Assignment
		schoolEvents []*model.SchoolEvent
	)

	// Источники независимы - забираем параллельно, сливаем после того
	// как все три ответили
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		classes, err = s.classes.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.assignments.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		schoolEvents, err = s.schoolEvents.GetAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to fetch calendar sources",
			zap.Time("start", startDate),
			zap.Time("end", endDate),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}

	now := s.now()

	var events []model.Event

	// Порядок конкатенации фиксирован: занятия, задания, события.
	// Вместе со стабильной сортировкой это даёт детерминированный
	// порядок при равных дате и времени.
	for _, class := range classes {
		for _, occ := range expandClassSchedule(class, startDate, endDate) {
			events = append(events, classEvent(occ))
		}
	}

	startStr := startDate.Format(dateLayout)
	endStr := endDate.Format(dateLayout)

	for _, assignment := range assignments {
		if assignment.DueDate.IsZero() {
			continue
		}
		dueDate := assignment.DueDate.Format(dateLayout)
		if dueDate < startStr || dueDate > endStr {
			continue
		}
		events = append(events, assignmentEvent(assignment, dueDate, now))
	}

	for _, schoolEvent := range schoolEvents {
		if schoolEvent.Date < startStr || schoolEvent.Date > endStr {
			continue
		}
		events = append(events, staticEvent(schoolEvent))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return eventSortKey(events[i]) < eventSortKey(events[j])
	})

	return events, nil
}

// EventsForDate возвращает события одного дня
func (s *CalendarService) EventsForDate(ctx context.Context, date time.Time) ([]model.Event, error) {
	return s.EventsForDateRange(ctx, date, date)
}

func classEvent(occ classOccurrence) model.Event {
	room := "TBD"
	if occ.class.Room != nil && *occ.class.Room != "" {
		room = *occ.class.Room
	}
	return model.Event{
		ID:          fmt.Sprintf("class-%d-%s", occ.class.ID, occ.date),
		Title:       occ.class.Name,
		Description: fmt.Sprintf("%s - %s", occ.class.Name, occ.class.Instructor),
		Date:        occ.date,
		Time:        occ.time,
		Type:        model.EventTypeClass,
		ClassID:     occ.class.ID,
		Instructor:  occ.class.Instructor,
		Room:        room,
	}
}

func assignmentEvent(assignment *model.Assignment, dueDate string, now time.Time) model.Event {
	className := assignment.ClassName
	if className == "" {
		className = unknownClassName
	}
	return model.Event{
		ID:           fmt.Sprintf("assignment-%d", assignment.ID),
		Title:        assignment.Title,
		Description:  fmt.Sprintf("Due: %s", assignment.Title),
		Date:         dueDate,
		Time:         "23:59", // срок сдачи - конец дня
		Type:         model.EventTypeAssignment,
		AssignmentID: assignment.ID,
		ClassName:    className,
		Priority:     AssignmentPriority(assignment.DueDate, now),
	}
}

func staticEvent(schoolEvent *model.SchoolEvent) model.Event {
	return model.Event{
		ID:          fmt.Sprintf("event-%d", schoolEvent.ID),
		Title:       schoolEvent.Title,
		Description: schoolEvent.Description,
		Date:        schoolEvent.Date,
		Time:        schoolEvent.Time,
		Type:        model.EventTypeSchool,
	}
}

// eventSortKey ключ сортировки: дата плюс время, события без времени
// идут в начале дня
func eventSortKey(event model.Event) string {
	clock := event.Time
	if clock == "" {
		clock = "00:00"
	}
	return event.Date + "T" + clock
}
