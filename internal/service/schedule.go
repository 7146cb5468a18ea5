package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
)

const (
	dateLayout       = "2006-01-02"
	defaultClassTime = "09:00"
)

// Паттерн первого времени в строке расписания, например "10:00" в
// "Mon,Wed,Fri 10:00-11:00"
var scheduleTimePattern = regexp.MustCompile(`\d{1,2}:\d{2}`)

// classOccurrence конкретное занятие, развёрнутое из строки расписания
type classOccurrence struct {
	class *model.Class
	date  string // "2006-01-02"
	time  string // "15:04"
}

// expandClassSchedule разворачивает недельное расписание класса в занятия
// внутри диапазона [start, end] включительно.
//
// Формат расписания свободный: строка должна содержать трёхбуквенные
// сокращения дней недели ("Mon", "Wed", ...) и время "HH:MM". Если время
// не найдено - используется 09:00. Парсинг никогда не возвращает ошибку:
// пустое или нераспознанное расписание просто не даёт занятий.
//
// Совпадение дня недели проверяется как подстрока всей строки расписания
// без токенизации - так же, как в исходном сервисе. Это может дать ложное
// срабатывание, если сокращение дня встречается в другом месте строки.
func expandClassSchedule(class *model.Class, start, end time.Time) []classOccurrence {
	if class == nil || class.Schedule == "" {
		return nil
	}

	classTime := normalizeClock(scheduleTimePattern.FindString(class.Schedule))
	if classTime == "" {
		classTime = defaultClassTime
	}

	schedule := strings.ToLower(class.Schedule)

	var occurrences []classOccurrence
	for day := truncateToDay(start); !day.After(truncateToDay(end)); day = day.AddDate(0, 0, 1) {
		abbr := strings.ToLower(day.Format("Mon"))
		if !strings.Contains(schedule, abbr) {
			continue
		}
		occurrences = append(occurrences, classOccurrence{
			class: class,
			date:  day.Format(dateLayout),
			time:  classTime,
		})
	}

	return occurrences
}

// normalizeClock дополняет час до двух цифр ("9:00" -> "09:00"),
// чтобы время сравнивалось как строка
func normalizeClock(clock string) string {
	if len(clock) == len("9:00") {
		return "0" + clock
	}
	return clock
}

// truncateToDay обнуляет время, оставляя календарную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
