package model

import "time"

type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "active"
	AssignmentStatusArchived AssignmentStatus = "archived"
)

type Assignment struct {
	ID          int64            `json:"id"`
	ClassID     int64            `json:"class_id"`
	ClassName   string           `json:"class_name"` // денормализовано для отображения
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DueDate     time.Time        `json:"due_date"`
	Status      AssignmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}
