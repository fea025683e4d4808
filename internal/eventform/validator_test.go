package eventform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func validForm() FormState {
	return FormState{
		Title:        "sunday market",
		Description:  "A weekly market with local produce and crafts.",
		StartDate:    "2026-03-07",
		StartTime:    "09:00",
		EndDate:      "2026-03-07",
		EndTime:      "14:00",
		Venue:        "5",
		Category:     "2",
		Subcategory:  "7",
		SelectedTags: []string{"Food", "MARKET"},
	}
}

func TestValidateNormalizesValidForm(t *testing.T) {
	norm, errs := Validate(validForm(), testNow, time.UTC)
	require.Empty(t, errs)

	assert.Equal(t, "Sunday market", norm.Title)
	assert.Equal(t, "A weekly market with local produce and crafts.", norm.Description)
	assert.Equal(t, "5", norm.Venue)
	assert.Equal(t, []string{"food", "market"}, norm.SelectedTags)
}

func TestValidateTitleRules(t *testing.T) {
	form := validForm()
	form.Title = "ab"
	_, errs := Validate(form, testNow, time.UTC)
	assert.Equal(t, "Title is required", errs[FieldTitle])

	form.Title = "   "
	_, errs = Validate(form, testNow, time.UTC)
	assert.Equal(t, "Title cannot be empty", errs[FieldTitle])

	form.Title = ""
	_, errs = Validate(form, testNow, time.UTC)
	assert.Equal(t, "Title is required", errs[FieldTitle])
}

func TestValidateTitleLengthCountsRunes(t *testing.T) {
	form := validForm()
	form.Title = "日本" // 2 characters, 6 bytes
	_, errs := Validate(form, testNow, time.UTC)
	assert.Equal(t, "Title is required", errs[FieldTitle])

	form.Title = "日本語"
	norm, errs := Validate(form, testNow, time.UTC)
	require.Empty(t, errs)
	assert.Equal(t, "日本語", norm.Title)
}

func TestValidateShortTitleDoesNotSuppressOtherErrors(t *testing.T) {
	form := validForm()
	form.Title = "ab"
	form.Description = "too short"
	form.Venue = ""

	_, errs := Validate(form, testNow, time.UTC)
	assert.Equal(t, "Title is required", errs[FieldTitle])
	assert.Equal(t, "Description is required", errs[FieldDescription])
	assert.Equal(t, "Venue is required", errs[FieldVenue])
}

func TestValidateDescriptionMinimumLength(t *testing.T) {
	form := validForm()
	form.Description = "nineteen chars only"[:19]
	_, errs := Validate(form, testNow, time.UTC)
	assert.Equal(t, "Description is required", errs[FieldDescription])
}

func TestValidateDatesMustBeTodayOrLater(t *testing.T) {
	form := validForm()
	form.StartDate = "2026-02-28"
	_, errs := Validate(form, testNow, time.UTC)
	assert.Equal(t, "Start date must be today or later", errs[FieldStartDate])

	// Today passes even though "now" is mid-morning: midnight comparison.
	form = validForm()
	form.StartDate = "2026-03-01"
	form.StartTime = "08:00"
	form.EndDate = "2026-03-01"
	_, errs = Validate(form, testNow, time.UTC)
	assert.Empty(t, errs)
}

func TestValidateNumericRefCoercion(t *testing.T) {
	form := validForm()
	form.Category = ""
	_, errs := Validate(form, testNow, time.UTC)
	// Empty coerces to "missing", never to zero.
	assert.Equal(t, "Category is required", errs[FieldCategory])

	form.Category = "music"
	_, errs = Validate(form, testNow, time.UTC)
	assert.Equal(t, "Invalid category", errs[FieldCategory])
}

func TestValidateOptionalURLs(t *testing.T) {
	form := validForm()
	form.IsOnline = true
	form.AccessLink = "not a url"
	form.ImageURL = "https://example.com/banner.png"
	_, errs := Validate(form, testNow, time.UTC)
	assert.Equal(t, "Invalid URL", errs[FieldAccessLink])
	assert.NotContains(t, errs, FieldImageURL)

	form.AccessLink = ""
	_, errs = Validate(form, testNow, time.UTC)
	assert.Empty(t, errs)
}

func TestValidateEndMustBeAfterStart(t *testing.T) {
	form := validForm()
	form.EndTime = "09:00" // equal instants
	_, errs := Validate(form, testNow, time.UTC)
	assert.Equal(t, "End time must be after start time", errs[RootField])

	form.EndTime = "08:00"
	_, errs = Validate(form, testNow, time.UTC)
	assert.Equal(t, "End time must be after start time", errs[RootField])

	form.EndTime = "09:01"
	_, errs = Validate(form, testNow, time.UTC)
	assert.Empty(t, errs)
}

func TestValidateEndAfterStartAcrossDays(t *testing.T) {
	form := validForm()
	form.StartTime = "23:00"
	form.EndDate = "2026-03-08"
	form.EndTime = "01:00"
	_, errs := Validate(form, testNow, time.UTC)
	assert.Empty(t, errs)
}

func TestValidateIsIdempotent(t *testing.T) {
	first, errs := Validate(validForm(), testNow, time.UTC)
	require.Empty(t, errs)

	second, errs := Validate(first, testNow, time.UTC)
	require.Empty(t, errs)
	assert.Equal(t, first, second)
}

func TestCapitalizeFirstRule(t *testing.T) {
	// The single casing rule: upper first rune, lower the remainder.
	assert.Equal(t, "Sunday market", capitalizeFirst("sunday market"))
	assert.Equal(t, "Sunday", capitalizeFirst("SUNDAY"))
	assert.Equal(t, "Sunday", capitalizeFirst(capitalizeFirst("SUNDAY")))
	assert.Equal(t, "", capitalizeFirst(""))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("UTC")
	require.NoError(t, err)
	assert.NotNil(t, loc)

	_, err = LoadLocation("Nowhere/Invalid")
	assert.Error(t, err)
}
