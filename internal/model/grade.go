package model

import "time"

type Grade struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"student_id"`
	ClassID      int64     `json:"class_id"`
	AssignmentID int64     `json:"assignment_id"`
	Score        float64   `json:"score"`
	MaxScore     float64   `json:"max_score"`
	Feedback     string    `json:"feedback"`
	GradedAt     time.Time `json:"graded_at"`
}
