package service

import (
	"math"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
)

// AssignmentPriority вычисляет срочность задания по сроку сдачи
// относительно переданного "сейчас". Значение нигде не хранится и
// пересчитывается при каждом запросе.
func AssignmentPriority(dueDate, now time.Time) model.EventPriority {
	daysUntilDue := int(math.Ceil(dueDate.Sub(now).Hours() / 24))

	switch {
	case daysUntilDue < 0:
		return model.PriorityOverdue
	case daysUntilDue <= 1:
		return model.PriorityUrgent
	case daysUntilDue <= 3:
		return model.PriorityHigh
	case daysUntilDue <= 7:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
