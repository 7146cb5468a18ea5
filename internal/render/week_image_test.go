package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekImage(t *testing.T) {
	weekStart := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	events := []model.Event{
		{Date: "2024-07-01", Time: "10:00", Title: "Algebra", Type: model.EventTypeClass},
		{Date: "2024-07-03", Time: "23:59", Title: "Quiz", Type: model.EventTypeAssignment, Priority: model.PriorityUrgent},
		{Date: "2024-07-04", Time: "00:00", Title: "Independence Day", Type: model.EventTypeSchool},
	}

	data, err := WeekImage(events, weekStart)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestWeekImage_NoEvents(t *testing.T) {
	data, err := WeekImage(nil, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}
