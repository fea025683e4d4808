package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDateRangeToday(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, loc) // Wednesday

	start, end, err := GetDateRange(DateRangeToday, "", "", now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 4, 23, 59, 59, 0, loc), end)
}

func TestGetDateRangeWeek(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, loc)

	start, end, err := GetDateRange(DateRangeWeek, "", "", now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 0, loc), end)
}

func TestGetDateRangeWeekend(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, loc) // Wednesday

	start, end, err := GetDateRange(DateRangeWeekend, "", "", now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 8, 23, 59, 59, 0, loc), end)
}

func TestGetDateRangeWeekendOnSaturday(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, loc) // Saturday

	start, _, err := GetDateRange(DateRangeWeekend, "", "", now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, loc), start)
}

func TestGetDateRangeMonth(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, loc)

	start, end, err := GetDateRange(DateRangeMonth, "", "", now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, loc), end)
}

func TestGetDateRangeCustom(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, loc)

	start, end, err := GetDateRange(DateRangeCustom, "2026-04-01", "2026-04-10", now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 4, 10, 23, 59, 59, 0, loc), end)
}

func TestGetDateRangeCustomMissingBounds(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	_, _, err := GetDateRange(DateRangeCustom, "2026-04-01", "", now, time.UTC)
	assert.Error(t, err)
}

func TestGetDateRangeCustomInverted(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	_, _, err := GetDateRange(DateRangeCustom, "2026-04-10", "2026-04-01", now, time.UTC)
	assert.Error(t, err)
}

func TestGetDateRangeUnknownPreset(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	_, _, err := GetDateRange("fortnight", "", "", now, time.UTC)
	assert.Error(t, err)
}
