package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNextOccurrenceOneOffUpcoming(t *testing.T) {
	start := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	e := &Event{StartDatetime: start}

	next, ok := e.NextOccurrence(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, start, next)
}

func TestNextOccurrenceOneOffPast(t *testing.T) {
	e := &Event{StartDatetime: time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)}

	_, ok := e.NextOccurrence(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestNextOccurrenceWeekly(t *testing.T) {
	// first occurrence Saturday 2026-03-07, weekly on Saturdays
	e := &Event{
		StartDatetime:     time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC),
		IsRecurring:       true,
		RecurringSchedule: datatypes.JSON(`{"frequency":"weekly","day":"saturday"}`),
	}

	next, ok := e.NextOccurrence(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), next)
}

func TestDetailResolvesNextOccurrence(t *testing.T) {
	e := &Event{
		StartDatetime:     time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC),
		IsRecurring:       true,
		RecurringSchedule: datatypes.JSON(`{"frequency":"weekly","day":"saturday"}`),
	}

	detail := e.Detail(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, detail.NextOccurrence)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), *detail.NextOccurrence)
}

func TestDetailOmitsPastOneOff(t *testing.T) {
	e := &Event{StartDatetime: time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)}

	detail := e.Detail(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, detail.NextOccurrence)
	assert.Equal(t, e.StartDatetime, detail.StartDatetime)
}

func TestNextOccurrenceRecurringWithoutSchedule(t *testing.T) {
	e := &Event{
		StartDatetime:     time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC),
		IsRecurring:       true,
		RecurringSchedule: datatypes.JSON(`null`),
	}

	_, ok := e.NextOccurrence(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestNextOccurrenceUnknownFrequency(t *testing.T) {
	e := &Event{
		StartDatetime:     time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC),
		IsRecurring:       true,
		RecurringSchedule: datatypes.JSON(`{"frequency":"daily","day":"saturday"}`),
	}

	_, ok := e.NextOccurrence(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
