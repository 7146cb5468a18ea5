package service

import (
	"testing"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandClassSchedule_TwoDaysInWeek(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra", Schedule: "Mon,Wed 10:00-11:00"}

	// Неделя с понедельника 2024-07-01 по воскресенье 2024-07-07
	occurrences := expandClassSchedule(class, date("2024-07-01"), date("2024-07-07"))

	require.Len(t, occurrences, 2)
	assert.Equal(t, "2024-07-01", occurrences[0].date)
	assert.Equal(t, "2024-07-03", occurrences[1].date)
	for _, occ := range occurrences {
		assert.Equal(t, "10:00", occ.time)
	}
}

func TestExpandClassSchedule_DefaultTime(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra", Schedule: "Tue,Thu"}

	occurrences := expandClassSchedule(class, date("2024-07-01"), date("2024-07-07"))

	require.Len(t, occurrences, 2)
	for _, occ := range occurrences {
		assert.Equal(t, "09:00", occ.time)
	}
}

func TestExpandClassSchedule_SingleDigitHourIsPadded(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra", Schedule: "Mon 9:30-10:30"}

	occurrences := expandClassSchedule(class, date("2024-07-01"), date("2024-07-01"))

	require.Len(t, occurrences, 1)
	assert.Equal(t, "09:30", occurrences[0].time)
}

func TestExpandClassSchedule_EmptySchedule(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra"}

	assert.Empty(t, expandClassSchedule(class, date("2024-07-01"), date("2024-07-31")))
}

func TestExpandClassSchedule_NoMatchingWeekdays(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra", Schedule: "every other day 10:00"}

	assert.Empty(t, expandClassSchedule(class, date("2024-07-01"), date("2024-07-07")))
}

func TestExpandClassSchedule_CaseInsensitive(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra", Schedule: "MON,WED 10:00"}

	occurrences := expandClassSchedule(class, date("2024-07-01"), date("2024-07-07"))

	assert.Len(t, occurrences, 2)
}

// Совпадение дня недели ищется по подстроке всей строки расписания, без
// токенизации. "Monthly review 10:00" содержит "mon" и потому даёт
// занятия по понедельникам - поведение исходного сервиса сохранено
// сознательно.
func TestExpandClassSchedule_SubstringMatchQuirk(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra", Schedule: "Monthly review 10:00"}

	occurrences := expandClassSchedule(class, date("2024-07-01"), date("2024-07-07"))

	require.Len(t, occurrences, 1)
	assert.Equal(t, "2024-07-01", occurrences[0].date)
}

func TestExpandClassSchedule_OrderedByDate(t *testing.T) {
	class := &model.Class{ID: 1, Name: "Algebra", Schedule: "Mon,Tue,Wed,Thu,Fri,Sat,Sun 08:15"}

	occurrences := expandClassSchedule(class, date("2024-07-01"), date("2024-07-14"))

	require.Len(t, occurrences, 14)
	for i := 1; i < len(occurrences); i++ {
		assert.Less(t, occurrences[i-1].date, occurrences[i].date)
	}
}
