package app

import (
	"strings"
	"testing"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatDigest_Empty(t *testing.T) {
	assert.Contains(t, formatDigest(nil), "свободна")
}

func TestFormatDigest_GroupsByDate(t *testing.T) {
	events := []model.Event{
		{Date: "2024-07-01", Time: "10:00", Title: "Algebra", Type: model.EventTypeClass, Room: "204"},
		{Date: "2024-07-01", Time: "23:59", Title: "Quiz", Type: model.EventTypeAssignment, ClassName: "Algebra", Priority: model.PriorityHigh},
		{Date: "2024-07-04", Time: "00:00", Title: "Independence Day", Type: model.EventTypeSchool},
	}

	text := formatDigest(events)

	assert.Contains(t, text, "2024-07-01")
	assert.Contains(t, text, "2024-07-04")
	assert.Contains(t, text, "Algebra")
	assert.Contains(t, text, "high")

	// Каждая дата выводится один раз
	assert.Equal(t, 1, strings.Count(text, "2024-07-01"))
}
