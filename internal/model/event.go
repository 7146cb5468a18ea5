package model

type EventType string

const (
	EventTypeClass      EventType = "class"
	EventTypeAssignment EventType = "assignment"
	EventTypeSchool     EventType = "event"
)

type EventPriority string

const (
	PriorityOverdue EventPriority = "overdue"
	PriorityUrgent  EventPriority = "urgent"
	PriorityHigh    EventPriority = "high"
	PriorityMedium  EventPriority = "medium"
	PriorityLow     EventPriority = "low"
)

// Event унифицированное событие календаря. Создаётся заново на каждый
// запрос и не хранится в базе. Date и Time - строки в формате
// "2006-01-02" и "15:04", чтобы сортировка и группировка по дням
// работали простым сравнением строк.
type Event struct {
	ID          string    `json:"id"` // "class-<id>-<date>", "assignment-<id>", "event-<id>"
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        EventType `json:"type"`

	// Поля занятий
	ClassID    int64  `json:"class_id,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Room       string `json:"room,omitempty"`

	// Поля домашних заданий
	AssignmentID int64         `json:"assignment_id,omitempty"`
	ClassName    string        `json:"class_name,omitempty"`
	Priority     EventPriority `json:"priority,omitempty"`
}

// SchoolEvent общешкольное событие из фиксированного списка
type SchoolEvent struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // "2006-01-02"
	Time        string `json:"time"` // "15:04"
}
