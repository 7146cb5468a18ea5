package service

import (
	"testing"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []model.Event {
	return []model.Event{
		{ID: "class-1-2024-07-01", Title: "Algebra", Description: "Algebra - Mr. Smith", Type: model.EventTypeClass},
		{ID: "class-2-2024-07-01", Title: "Chemistry", Description: "Chemistry - Ms. Jones", Type: model.EventTypeClass},
		{ID: "assignment-7", Title: "Math Quiz", Description: "Due: Math Quiz", Type: model.EventTypeAssignment},
		{ID: "event-1", Title: "Back to School Night", Type: model.EventTypeSchool},
	}
}

func TestFilterEvents_BySearchTerm(t *testing.T) {
	filtered := FilterEvents(filterFixture(), "algebra", EventTypeAll)

	require.Len(t, filtered, 1)
	assert.Equal(t, "Algebra", filtered[0].Title)
}

func TestFilterEvents_SearchMatchesDescription(t *testing.T) {
	filtered := FilterEvents(filterFixture(), "jones", EventTypeAll)

	require.Len(t, filtered, 1)
	assert.Equal(t, "Chemistry", filtered[0].Title)
}

func TestFilterEvents_ByType(t *testing.T) {
	filtered := FilterEvents(filterFixture(), "", "class")

	require.Len(t, filtered, 2)
	for _, event := range filtered {
		assert.Equal(t, model.EventTypeClass, event.Type)
	}
}

func TestFilterEvents_TermAndTypeAreANDed(t *testing.T) {
	// "quiz" встречается только в задании, тип ограничен занятиями
	assert.Empty(t, FilterEvents(filterFixture(), "quiz", "class"))

	filtered := FilterEvents(filterFixture(), "quiz", "assignment")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Math Quiz", filtered[0].Title)
}

func TestFilterEvents_AllSentinelAndEmptyTermPassEverything(t *testing.T) {
	events := filterFixture()

	assert.Equal(t, events, FilterEvents(events, "", EventTypeAll))
	assert.Equal(t, events, FilterEvents(events, "", ""))
}

func TestFilterEvents_ReturnsSubsetWithoutMutation(t *testing.T) {
	events := filterFixture()
	original := filterFixture()

	filtered := FilterEvents(events, "school", EventTypeAll)

	assert.Equal(t, original, events)
	for _, event := range filtered {
		assert.Contains(t, events, event)
	}
}

// Пустое описание не совпадает ни с каким непустым запросом
func TestFilterEvents_MissingDescription(t *testing.T) {
	events := []model.Event{{ID: "event-9", Title: "Untitled", Type: model.EventTypeSchool}}

	assert.Empty(t, FilterEvents(events, "curriculum", EventTypeAll))
	assert.Len(t, FilterEvents(events, "", EventTypeAll), 1)
}
