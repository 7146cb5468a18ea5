package service

import (
	"testing"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAttendanceStats(t *testing.T) {
	records := []*model.AttendanceRecord{
		{Status: model.AttendanceStatusPresent},
		{Status: model.AttendanceStatusPresent},
		{Status: model.AttendanceStatusLate},
		{Status: model.AttendanceStatusAbsent},
	}

	stats := attendanceStats(records)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.Late)
	// Опоздание считается посещением: (2+1)/4 = 75%
	assert.Equal(t, 75, stats.AttendanceRate)
}

func TestAttendanceStats_RateIsRounded(t *testing.T) {
	records := []*model.AttendanceRecord{
		{Status: model.AttendanceStatusPresent},
		{Status: model.AttendanceStatusPresent},
		{Status: model.AttendanceStatusAbsent},
	}

	// 2/3 = 66.67% -> 67
	assert.Equal(t, 67, attendanceStats(records).AttendanceRate)
}

func TestAttendanceStats_NoRecords(t *testing.T) {
	stats := attendanceStats(nil)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AttendanceRate)
}
