package service

import (
	"testing"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAssignmentPriority(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want model.EventPriority
	}{
		{"due yesterday", now.AddDate(0, 0, -1), model.PriorityOverdue},
		{"due an hour ago", now.Add(-time.Hour), model.PriorityUrgent}, // ceil(-1h) = 0
		{"due right now", now, model.PriorityUrgent},
		{"due in twelve hours", now.Add(12 * time.Hour), model.PriorityUrgent},
		{"due tomorrow", now.Add(24 * time.Hour), model.PriorityUrgent},
		{"due in two days", now.Add(48 * time.Hour), model.PriorityHigh},
		{"due in three days", now.Add(72 * time.Hour), model.PriorityHigh},
		{"due in four days", now.Add(96 * time.Hour), model.PriorityMedium},
		{"due in seven days", now.Add(7 * 24 * time.Hour), model.PriorityMedium},
		{"due in eight days", now.Add(8 * 24 * time.Hour), model.PriorityLow},
		{"due in a month", now.AddDate(0, 1, 0), model.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignmentPriority(tt.due, now))
		})
	}
}

// При фиксированном сроке сдачи и движении "сейчас" вперёд приоритет
// может только расти: low -> medium -> high -> urgent -> overdue
func TestAssignmentPriority_MonotonicAsTimePasses(t *testing.T) {
	rank := map[model.EventPriority]int{
		model.PriorityLow:     0,
		model.PriorityMedium:  1,
		model.PriorityHigh:    2,
		model.PriorityUrgent:  3,
		model.PriorityOverdue: 4,
	}

	due := time.Date(2024, 7, 20, 23, 59, 0, 0, time.UTC)

	previous := -1
	for now := due.AddDate(0, 0, -14); now.Before(due.AddDate(0, 0, 3)); now = now.Add(6 * time.Hour) {
		current := rank[AssignmentPriority(due, now)]
		assert.GreaterOrEqual(t, current, previous,
			"priority went backwards at now=%s", now)
		previous = current
	}
}
