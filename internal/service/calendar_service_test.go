package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClassSource struct {
	classes []*model.Class
	err     error
}

func (f *fakeClassSource) GetAll(ctx context.Context) ([]*model.Class, error) {
	return f.classes, f.err
}

type fakeAssignmentSource struct {
	assignments []*model.Assignment
	err         error
}

func (f *fakeAssignmentSource) GetAll(ctx context.Context) ([]*model.Assignment, error) {
	return f.assignments, f.err
}

type fakeSchoolEventSource struct {
	events []*model.SchoolEvent
	err    error
}

func (f *fakeSchoolEventSource) GetAll(ctx context.Context) ([]*model.SchoolEvent, error) {
	return f.events, f.err
}

func newTestCalendarService(
	classes *fakeClassSource,
	assignments *fakeAssignmentSource,
	schoolEvents *fakeSchoolEventSource,
	now time.Time,
) *CalendarService {
	svc := NewCalendarService(classes, assignments, schoolEvents, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func room(name string) *string {
	return &name
}

// Сводный сценарий: июль 2024, один класс Mon/Wed/Fri, одно задание,
// одно общешкольное событие
func TestEventsForDateRange_July2024(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{classes: []*model.Class{
			{
				ID:         1,
				Name:       "Algebra",
				Instructor: "Mr. Smith",
				Schedule:   "Mon,Wed,Fri 10:00-11:00",
				Room:       room("204"),
			},
		}},
		&fakeAssignmentSource{assignments: []*model.Assignment{
			{
				ID:        7,
				ClassID:   1,
				ClassName: "Algebra",
				Title:     "Math Quiz Chapter 5",
				DueDate:   time.Date(2024, 7, 15, 23, 59, 0, 0, time.UTC),
			},
		}},
		&fakeSchoolEventSource{events: []*model.SchoolEvent{
			{ID: 3, Title: "Independence Day", Date: "2024-07-04", Time: "00:00"},
		}},
		time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC),
	)

	events, err := svc.EventsForDateRange(context.Background(), date("2024-07-01"), date("2024-07-31"))
	require.NoError(t, err)

	var classEvents, assignmentEvents, schoolEvents []model.Event
	for _, event := range events {
		switch event.Type {
		case model.EventTypeClass:
			classEvents = append(classEvents, event)
		case model.EventTypeAssignment:
			assignmentEvents = append(assignmentEvents, event)
		case model.EventTypeSchool:
			schoolEvents = append(schoolEvents, event)
		}
	}

	// В июле 2024 ровно 14 понедельников/сред/пятниц
	require.Len(t, classEvents, 14)
	for _, event := range classEvents {
		assert.Equal(t, "10:00", event.Time)
		assert.Equal(t, "Algebra", event.Title)
		assert.Equal(t, "Algebra - Mr. Smith", event.Description)
		assert.Equal(t, "204", event.Room)
	}
	assert.Equal(t, "class-1-2024-07-01", classEvents[0].ID)

	require.Len(t, assignmentEvents, 1)
	assert.Equal(t, "assignment-7", assignmentEvents[0].ID)
	assert.Equal(t, "2024-07-15", assignmentEvents[0].Date)
	assert.Equal(t, "23:59", assignmentEvents[0].Time)
	assert.Equal(t, "Due: Math Quiz Chapter 5", assignmentEvents[0].Description)
	assert.Equal(t, model.PriorityMedium, assignmentEvents[0].Priority)

	require.Len(t, schoolEvents, 1)
	assert.Equal(t, "event-3", schoolEvents[0].ID)
	assert.Equal(t, "2024-07-04", schoolEvents[0].Date)

	// Весь список отсортирован по (дата, время)
	for i := 1; i < len(events); i++ {
		assert.LessOrEqual(t, eventSortKey(events[i-1]), eventSortKey(events[i]))
	}
}

func TestEventsForDateRange_WindowIsInclusive(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{},
		&fakeAssignmentSource{assignments: []*model.Assignment{
			{ID: 1, Title: "On start boundary", DueDate: time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)},
			{ID: 2, Title: "On end boundary", DueDate: time.Date(2024, 7, 31, 8, 0, 0, 0, time.UTC)},
			{ID: 3, Title: "Before window", DueDate: time.Date(2024, 6, 30, 8, 0, 0, 0, time.UTC)},
			{ID: 4, Title: "After window", DueDate: time.Date(2024, 8, 1, 8, 0, 0, 0, time.UTC)},
		}},
		&fakeSchoolEventSource{},
		time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
	)

	events, err := svc.EventsForDateRange(context.Background(), date("2024-07-01"), date("2024-07-31"))
	require.NoError(t, err)

	require.Len(t, events, 2)
	for _, event := range events {
		assert.GreaterOrEqual(t, event.Date, "2024-07-01")
		assert.LessOrEqual(t, event.Date, "2024-07-31")
	}
}

func TestEventsForDateRange_StartAfterEnd(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{classes: []*model.Class{{ID: 1, Name: "Algebra", Schedule: "Mon 10:00"}}},
		&fakeAssignmentSource{},
		&fakeSchoolEventSource{},
		time.Now(),
	)

	events, err := svc.EventsForDateRange(context.Background(), date("2024-07-31"), date("2024-07-01"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventsForDateRange_SourceFailureIsAllOrNothing(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{classes: []*model.Class{{ID: 1, Name: "Algebra", Schedule: "Mon 10:00"}}},
		&fakeAssignmentSource{err: errors.New("connection refused")},
		&fakeSchoolEventSource{},
		time.Now(),
	)

	events, err := svc.EventsForDateRange(context.Background(), date("2024-07-01"), date("2024-07-31"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load calendar events")
	assert.Nil(t, events)
}

func TestEventsForDateRange_Idempotent(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{classes: []*model.Class{
			{ID: 1, Name: "Algebra", Instructor: "Mr. Smith", Schedule: "Mon,Wed,Fri 10:00-11:00"},
		}},
		&fakeAssignmentSource{assignments: []*model.Assignment{
			{ID: 7, Title: "Quiz", DueDate: time.Date(2024, 7, 15, 23, 59, 0, 0, time.UTC)},
		}},
		&fakeSchoolEventSource{events: []*model.SchoolEvent{
			{ID: 3, Title: "Independence Day", Date: "2024-07-04", Time: "00:00"},
		}},
		time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC),
	)

	first, err := svc.EventsForDateRange(context.Background(), date("2024-07-01"), date("2024-07-31"))
	require.NoError(t, err)
	second, err := svc.EventsForDateRange(context.Background(), date("2024-07-01"), date("2024-07-31"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// При равных дате и времени порядок фиксирован:
// занятия, затем задания, затем общешкольные события
func TestEventsForDateRange_TieBreakKeepsSourceOrder(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{classes: []*model.Class{
			{ID: 1, Name: "Chemistry", Schedule: "Thu 23:59"},
		}},
		&fakeAssignmentSource{assignments: []*model.Assignment{
			{ID: 2, Title: "Lab report", DueDate: time.Date(2024, 7, 4, 10, 0, 0, 0, time.UTC)},
		}},
		&fakeSchoolEventSource{events: []*model.SchoolEvent{
			{ID: 3, Title: "Fireworks", Date: "2024-07-04", Time: "23:59"},
		}},
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	)

	events, err := svc.EventsForDateRange(context.Background(), date("2024-07-04"), date("2024-07-04"))
	require.NoError(t, err)

	// Все три события приходятся на 2024-07-04 23:59: у заданий время
	// всегда 23:59, у занятия оно взято из строки расписания
	require.Len(t, events, 3)
	assert.Equal(t, model.EventTypeClass, events[0].Type)
	assert.Equal(t, model.EventTypeAssignment, events[1].Type)
	assert.Equal(t, model.EventTypeSchool, events[2].Type)
}

func TestEventsForDate(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{classes: []*model.Class{
			{ID: 1, Name: "Algebra", Schedule: "Mon,Wed,Fri 10:00-11:00"},
		}},
		&fakeAssignmentSource{},
		&fakeSchoolEventSource{},
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	)

	// 2024-07-01 - понедельник
	events, err := svc.EventsForDate(context.Background(), date("2024-07-01"))
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "2024-07-01", events[0].Date)
	// Комната не задана - подставляется TBD
	assert.Equal(t, "TBD", events[0].Room)
}

func TestEventsForDateRange_UnknownClassNameDefault(t *testing.T) {
	svc := newTestCalendarService(
		&fakeClassSource{},
		&fakeAssignmentSource{assignments: []*model.Assignment{
			{ID: 9, Title: "Essay", DueDate: time.Date(2024, 7, 15, 23, 59, 0, 0, time.UTC)},
		}},
		&fakeSchoolEventSource{},
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	)

	events, err := svc.EventsForDateRange(context.Background(), date("2024-07-01"), date("2024-07-31"))
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "Unknown Class", events[0].ClassName)
}
