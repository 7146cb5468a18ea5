package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth   = 1400
	imageHeight  = 800
	headerHeight = 70
	dayPaddingX  = 6.0
	entryHeight  = 34.0
	entryGap     = 6.0
	entryRadius  = 5.0
	daysInWeek   = 7
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	headerColor    = color.RGBA{80, 85, 90, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{225, 225, 228, 255}
	todayBgColor   = color.NRGBA{255, 228, 200, 255}
	entryTextColor = color.RGBA{20, 24, 28, 230}
	overflowColor  = color.RGBA{110, 115, 120, 255}

	classColor      = color.RGBA{133, 193, 85, 220}
	schoolColor     = color.RGBA{120, 170, 255, 220}
	assignmentColor = map[model.EventPriority]color.RGBA{
		model.PriorityOverdue: {220, 70, 70, 230},
		model.PriorityUrgent:  {255, 120, 80, 230},
		model.PriorityHigh:    {255, 170, 80, 230},
		model.PriorityMedium:  {255, 210, 110, 230},
		model.PriorityLow:     {200, 200, 140, 230},
	}
)

// WeekImage рисует события одной недели в PNG. weekStart - первый день
// недели, события вне [weekStart, weekStart+6d] игнорируются.
func WeekImage(events []model.Event, weekStart time.Time) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := float64(imageWidth) / daysInWeek
	today := time.Now().Format("2006-01-02")

	byDate := make(map[string][]model.Event)
	for _, event := range events {
		byDate[event.Date] = append(byDate[event.Date], event)
	}

	for day := 0; day < daysInWeek; day++ {
		date := weekStart.AddDate(0, 0, day)
		dateStr := date.Format("2006-01-02")
		x := float64(day) * dayWidth

		// Фон колонки
		switch {
		case dateStr == today:
			dc.SetColor(todayBgColor)
		case day%2 == 0:
			dc.SetColor(evenDayColor)
		default:
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, imageHeight-headerHeight)
		dc.Fill()

		// Заголовок дня
		dc.SetColor(headerColor)
		dc.DrawStringAnchored(date.Format("Mon 02.01"), x+dayWidth/2, headerHeight/2, 0.5, 0.5)

		drawDayEntries(dc, byDate[dateStr], x, dayWidth)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}

	return buf.Bytes(), nil
}

// drawDayEntries рисует события одного дня сверху вниз,
// не поместившиеся сворачиваются в строку "+N more"
func drawDayEntries(dc *gg.Context, events []model.Event, x, dayWidth float64) {
	y := float64(headerHeight) + entryGap

	usableHeight := float64(imageHeight - headerHeight - entryGap)
	maxEntries := int(usableHeight / (entryHeight + entryGap))

	for i, event := range events {
		if i == maxEntries-1 && len(events) > maxEntries {
			dc.SetColor(overflowColor)
			dc.DrawString(fmt.Sprintf("+%d more", len(events)-i), x+dayPaddingX+4, y+entryHeight/2)
			break
		}

		dc.SetColor(entryColor(event))
		dc.DrawRoundedRectangle(x+dayPaddingX, y, dayWidth-2*dayPaddingX, entryHeight, entryRadius)
		dc.Fill()

		dc.SetColor(entryTextColor)
		dc.DrawString(event.Time+" "+truncate(event.Title, 24), x+dayPaddingX+6, y+entryHeight/2+4)

		y += entryHeight + entryGap
	}
}

func entryColor(event model.Event) color.Color {
	switch event.Type {
	case model.EventTypeClass:
		return classColor
	case model.EventTypeAssignment:
		if c, ok := assignmentColor[event.Priority]; ok {
			return c
		}
		return assignmentColor[model.PriorityLow]
	default:
		return schoolColor
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
