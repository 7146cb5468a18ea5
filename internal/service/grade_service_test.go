package service

import (
	"testing"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAverageScore(t *testing.T) {
	grades := []*model.Grade{
		{Score: 95},
		{Score: 87.5},
		{Score: 71},
	}

	assert.Equal(t, 84.5, averageScore(grades))
}

func TestAverageScore_RoundsToTwoDecimals(t *testing.T) {
	grades := []*model.Grade{
		{Score: 100},
		{Score: 100},
		{Score: 95},
	}

	// 295/3 = 98.333...
	assert.Equal(t, 98.33, averageScore(grades))
}

func TestAverageScore_NoGrades(t *testing.T) {
	assert.Zero(t, averageScore(nil))
	assert.Zero(t, averageScore([]*model.Grade{}))
}
