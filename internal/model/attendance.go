package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

// AttendanceRecord представляет отметку посещаемости одного студента
// на одном занятии (одна запись на студента/класс/дату)
type AttendanceRecord struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"student_id"`
	ClassID   int64            `json:"class_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Note      string           `json:"note"`
	MarkedBy  string           `json:"marked_by"`
	BatchID   uuid.UUID        `json:"batch_id"` // идентификатор одной переклички
	CreatedAt time.Time        `json:"created_at"`
}

// AttendanceStats агрегированная статистика посещаемости
type AttendanceStats struct {
	Total          int `json:"total"`
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	Late           int `json:"late"`
	AttendanceRate int `json:"attendance_rate"` // процент, опоздание считается посещением
}
