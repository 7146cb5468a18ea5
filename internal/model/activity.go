package model

import "time"

type ActivityType string

const (
	ActivityTypeStudent    ActivityType = "student"
	ActivityTypeAssignment ActivityType = "assignment"
	ActivityTypeGrade      ActivityType = "grade"
	ActivityTypeAttendance ActivityType = "attendance"
)

// Activity запись в ленте активности
type Activity struct {
	ID          int64        `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	User        string       `json:"user"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ActivityStats количество записей активности за периоды
type ActivityStats struct {
	Today int `json:"today"`
	Week  int `json:"week"`
	Month int `json:"month"`
	Total int `json:"total"`
}
