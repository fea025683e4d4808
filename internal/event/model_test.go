package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/mayurihegde/evently-backend/internal/eventform"
)

func TestScheduleDecodes(t *testing.T) {
	e := &Event{RecurringSchedule: datatypes.JSON(`{"frequency":"weekly","day":"sunday"}`)}

	sched := e.Schedule()
	require.NotNil(t, sched)
	assert.Equal(t, "weekly", sched.Frequency)
	assert.Equal(t, "sunday", sched.Day)
}

func TestScheduleNilForEmptyAndNull(t *testing.T) {
	assert.Nil(t, (&Event{}).Schedule())
	assert.Nil(t, (&Event{RecurringSchedule: datatypes.JSON(`null`)}).Schedule())
	assert.Nil(t, (&Event{RecurringSchedule: datatypes.JSON(`{broken`)}).Schedule())
}

func TestSnapshotProjectsAllFields(t *testing.T) {
	start := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Hour)

	e := &Event{
		Title:             "Sunday market",
		Description:       "Weekly produce market at the town square.",
		StartDatetime:     start,
		EndDatetime:       end,
		VenueID:           5,
		CategoryID:        2,
		SubcategoryID:     7,
		Tags:              datatypes.NewJSONSlice([]string{"food", "market"}),
		IsRecurring:       true,
		RecurringSchedule: datatypes.JSON(`{"frequency":"weekly","day":"sunday"}`),
		SignupRequired:    true,
	}

	rec := e.Snapshot()
	assert.Equal(t, "Sunday market", rec.Title)
	assert.Equal(t, start, rec.Start)
	assert.Equal(t, end, rec.End)
	assert.Equal(t, 5, rec.VenueID)
	assert.Equal(t, []string{"food", "market"}, rec.Tags)
	assert.True(t, rec.SignupRequired)
	require.NotNil(t, rec.Schedule)
	assert.Equal(t, eventform.Schedule{Frequency: "weekly", Day: "sunday"}, *rec.Schedule)
}

func TestSnapshotNilTags(t *testing.T) {
	rec := (&Event{}).Snapshot()
	assert.Nil(t, rec.Tags)
	assert.Nil(t, rec.Schedule)
}
