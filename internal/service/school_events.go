package service

import (
	"context"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
)

// Общешкольные события пока не имеют таблицы в базе и задаются
// фиксированным списком
var staticSchoolEvents = []*model.SchoolEvent{
	{
		ID:          1,
		Title:       "Back to School Night",
		Description: "Meet your teachers and learn about the curriculum",
		Date:        "2024-09-15",
		Time:        "18:00",
	},
	{
		ID:          2,
		Title:       "Parent-Teacher Conferences",
		Description: "Individual meetings with teachers",
		Date:        "2024-10-20",
		Time:        "08:00",
	},
	{
		ID:          3,
		Title:       "Fall Break",
		Description: "No classes - Fall holiday",
		Date:        "2024-11-25",
		Time:        "00:00",
	},
	{
		ID:          4,
		Title:       "Winter Break Starts",
		Description: "Last day of classes before winter break",
		Date:        "2024-12-20",
		Time:        "15:30",
	},
}

// StaticSchoolEventSource источник событий из встроенного списка.
// Реализует SchoolEventSource наравне с репозиториями.
type StaticSchoolEventSource struct {
	events []*model.SchoolEvent
}

func NewStaticSchoolEventSource() *StaticSchoolEventSource {
	return &StaticSchoolEventSource{events: staticSchoolEvents}
}

// GetAll возвращает копии записей, чтобы встроенный список
// никогда не изменялся вызывающим кодом
func (s *StaticSchoolEventSource) GetAll(ctx context.Context) ([]*model.SchoolEvent, error) {
	events := make([]*model.SchoolEvent, 0, len(s.events))
	for _, event := range s.events {
		copied := *event
		events = append(events, &copied)
	}
	return events, nil
}
