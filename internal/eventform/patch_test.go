package eventform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func originalRecord() Record {
	return Record{
		Title:         "Old title",
		Description:   "A long enough description of the original event.",
		Start:         time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 3, 7, 14, 0, 0, 0, time.UTC),
		VenueID:       5,
		CategoryID:    2,
		SubcategoryID: 7,
		Tags:          []string{"music", "free"},
	}
}

func TestBuildPatchTitleOnly(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)
	form.Title = "New title"

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldTitle), time.UTC)
	assert.Equal(t, Patch{PatchTitle: "New title"}, patch)
}

func TestBuildPatchUntouchedFieldsNeverIncluded(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)
	// The record changed under the form, but the user never touched title.
	form.Title = "Drifted title"

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldDescription), time.UTC)
	assert.Empty(t, patch)
}

func TestBuildPatchRetypedSameValueIsNoop(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldTitle, FieldStartTime), time.UTC)
	assert.Empty(t, patch)
}

func TestBuildPatchDatetimeRecombination(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)
	form.StartTime = "10:30"

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldStartTime), time.UTC)
	require.Contains(t, patch, PatchStartDatetime)
	assert.Equal(t, time.Date(2026, 3, 7, 10, 30, 0, 0, time.UTC), patch[PatchStartDatetime])
	assert.NotContains(t, patch, PatchEndDatetime)
}

func TestBuildPatchTagOrderIsIrrelevant(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)
	form.SelectedTags = []string{"free", "music"}

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldSelectedTags), time.UTC)
	assert.NotContains(t, patch, PatchTags)
}

func TestBuildPatchTagChanges(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)
	form.SelectedTags = []string{"music", "free", "outdoor"}

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldSelectedTags), time.UTC)
	assert.Equal(t, []string{"music", "free", "outdoor"}, patch[PatchTags])
}

func TestBuildPatchEmptyTagSetEncodesNull(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)
	form.SelectedTags = nil

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldSelectedTags), time.UTC)
	require.Contains(t, patch, PatchTags)
	assert.Nil(t, patch[PatchTags])
}

func TestBuildPatchOnlineTogglePinsVenue(t *testing.T) {
	orig := originalRecord()
	form := FormFromRecord(orig, time.UTC)
	form.IsOnline = true
	form.AccessLink = "https://meet.example.com/abc"
	form = DeriveConstraints(form)

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldIsOnline, FieldAccessLink), time.UTC)
	assert.Equal(t, OnlineVenueID, patch[PatchVenueID])
	assert.Equal(t, true, patch[PatchIsOnline])
	assert.Equal(t, "https://meet.example.com/abc", patch[PatchAccessLink])
}

func TestBuildPatchRecurrenceCleared(t *testing.T) {
	orig := originalRecord()
	orig.IsRecurring = true
	orig.Schedule = &Schedule{Frequency: "weekly", Day: "saturday"}

	form := FormFromRecord(orig, time.UTC)
	form.IsRecurring = false
	form = DeriveConstraints(form)

	// Neither recurringFrequency nor recurringDay is touched, only the flag.
	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldIsRecurring), time.UTC)
	assert.Equal(t, false, patch[PatchIsRecurring])
	require.Contains(t, patch, PatchRecurringSchedule)
	assert.Nil(t, patch[PatchRecurringSchedule])
}

func TestBuildPatchRecurrenceUpdated(t *testing.T) {
	orig := originalRecord()
	orig.IsRecurring = true
	orig.Schedule = &Schedule{Frequency: "weekly", Day: "saturday"}

	form := FormFromRecord(orig, time.UTC)
	form.RecurringDay = "sunday"

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldRecurringDay), time.UTC)
	assert.Equal(t, Schedule{Frequency: "weekly", Day: "sunday"}, patch[PatchRecurringSchedule])
	assert.NotContains(t, patch, PatchIsRecurring)
}

func TestBuildPatchRecurrenceUnchangedIsNoop(t *testing.T) {
	orig := originalRecord()
	orig.IsRecurring = true
	orig.Schedule = &Schedule{Frequency: "weekly", Day: "saturday"}

	form := FormFromRecord(orig, time.UTC)
	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldRecurringDay), time.UTC)
	assert.Empty(t, patch)
}

func TestBuildPatchEndToEndTitleChange(t *testing.T) {
	// Load record, user edits the title only, patch is exactly {title}.
	orig := Record{
		Title:         "Old Title",
		Description:   "Original description well over twenty characters.",
		Start:         time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC),
		End:           time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC),
		VenueID:       5,
		CategoryID:    1,
		SubcategoryID: 1,
		Tags:          []string{"art"},
	}
	form := FormFromRecord(orig, time.UTC)
	form.Title = "New Title"

	patch := BuildPatch(form, orig, NewTouchedFieldSet(FieldTitle), time.UTC)
	assert.Equal(t, Patch{PatchTitle: "New Title"}, patch)
}

func TestFormFromRecordSplitsDatetimes(t *testing.T) {
	loc, err := LoadLocation("UTC")
	require.NoError(t, err)

	form := FormFromRecord(originalRecord(), loc)
	assert.Equal(t, "2026-03-07", form.StartDate)
	assert.Equal(t, "09:00", form.StartTime)
	assert.Equal(t, "2026-03-07", form.EndDate)
	assert.Equal(t, "14:00", form.EndTime)
	assert.Equal(t, "5", form.Venue)
}
