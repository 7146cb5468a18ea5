package service

import (
	"strings"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
)

// EventTypeAll значение фильтра "показывать все типы"
const EventTypeAll = "all"

// FilterEvents сужает уже полученный список событий без повторного
// запроса к источникам. Текстовый фильтр - регистронезависимое вхождение
// в заголовок или описание, фильтр по типу - точное совпадение
// (EventTypeAll пропускает всё). Оба фильтра работают как AND.
// Чистая функция: входной список не изменяется.
func FilterEvents(events []model.Event, searchTerm, eventType string) []model.Event {
	filtered := make([]model.Event, 0, len(events))

	term := strings.ToLower(searchTerm)
	for _, event := range events {
		if term != "" &&
			!strings.Contains(strings.ToLower(event.Title), term) &&
			!strings.Contains(strings.ToLower(event.Description), term) {
			continue
		}
		if eventType != "" && eventType != EventTypeAll && string(event.Type) != eventType {
			continue
		}
		filtered = append(filtered, event)
	}

	return filtered
}
