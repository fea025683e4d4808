package eventform

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// RootField keys cross-field failures in a FieldErrors map.
const RootField = "root"

// FieldErrors maps a FormState field (or RootField) to a human-readable
// message. Validation failures are values, never panics.
type FieldErrors map[string]string

func (e FieldErrors) add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

// Validate checks a candidate FormState against the form schema and returns
// either the normalized FormState or every field error at once. It is a pure
// function of its inputs: "now" supplies the client-local clock used for the
// today-or-later date check, loc the fixed display timezone.
func Validate(form FormState, now time.Time, loc *time.Location) (FormState, FieldErrors) {
	errs := FieldErrors{}

	validateText(errs, FieldTitle, "Title", form.Title, 3)
	validateText(errs, FieldDescription, "Description", form.Description, 20)

	today := midnight(now.In(loc))
	startDate := validateDate(errs, FieldStartDate, "Start date", form.StartDate, today, loc)
	endDate := validateDate(errs, FieldEndDate, "End date", form.EndDate, today, loc)
	startTime := validateClock(errs, FieldStartTime, "Start time", form.StartTime)
	endTime := validateClock(errs, FieldEndTime, "End time", form.EndTime)

	venueID := validateRef(errs, FieldVenue, "Venue", form.Venue)
	categoryID := validateRef(errs, FieldCategory, "Category", form.Category)
	subcategoryID := validateRef(errs, FieldSubcategory, "Subcategory", form.Subcategory)

	validateURL(errs, FieldAccessLink, form.AccessLink)
	validateURL(errs, FieldImageURL, form.ImageURL)

	// End must be strictly after start, compared as combined instants in
	// the display timezone. Only checked once all four parts parsed.
	if startDate != nil && endDate != nil && startTime != nil && endTime != nil {
		start := combine(*startDate, *startTime, loc)
		end := combine(*endDate, *endTime, loc)
		if !end.After(start) {
			errs.add(RootField, "End time must be after start time")
		}
	}

	if len(errs) > 0 {
		return FormState{}, errs
	}

	normalized := form
	normalized.Title = capitalizeFirst(strings.TrimSpace(form.Title))
	normalized.Description = capitalizeFirst(strings.TrimSpace(form.Description))
	normalized.Venue = strconv.Itoa(venueID)
	normalized.Category = strconv.Itoa(categoryID)
	normalized.Subcategory = strconv.Itoa(subcategoryID)
	normalized.SelectedTags = lowercaseTags(form.SelectedTags)
	return normalized, nil
}

// capitalizeFirst applies the single casing rule used across the form:
// upper-case the first rune, lower-case the remainder. The rule is
// idempotent, so re-validating normalized input changes nothing.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

func lowercaseTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = strings.ToLower(t)
	}
	return out
}

func validateText(errs FieldErrors, field, label, value string, min int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" && value != "" {
		errs.add(field, label+" cannot be empty")
		return
	}
	// Length is a character count, not bytes, so multibyte input is
	// measured the way the user sees it.
	if utf8.RuneCountInString(trimmed) < min {
		errs.add(field, label+" is required")
	}
}

func validateDate(errs FieldErrors, field, label, value string, today time.Time, loc *time.Location) *time.Time {
	if value == "" {
		errs.add(field, label+" is required")
		return nil
	}
	parsed, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		errs.add(field, "Invalid date")
		return nil
	}
	// Calendar comparison only: the time of day is checked separately.
	if parsed.Before(today) {
		errs.add(field, label+" must be today or later")
		return nil
	}
	return &parsed
}

func validateClock(errs FieldErrors, field, label, value string) *time.Time {
	if value == "" {
		errs.add(field, label+" is required")
		return nil
	}
	parsed, err := time.Parse(TimeLayout, value)
	if err != nil {
		errs.add(field, "Invalid time")
		return nil
	}
	return &parsed
}

// validateRef coerces a numeric reference field. An empty string means
// "not provided" and fails the required check; it never coerces to zero.
func validateRef(errs FieldErrors, field, label, value string) int {
	if value == "" {
		errs.add(field, label+" is required")
		return 0
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		errs.add(field, "Invalid "+strings.ToLower(label))
		return 0
	}
	return id
}

func validateURL(errs FieldErrors, field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs.add(field, "Invalid URL")
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func combine(date, clock time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, loc).UTC()
}

// CombineDateTime builds the UTC instant for a validated date/time pair.
// Used by the patch builder and the event service after validation, so a
// parse failure here indicates a caller bug rather than user input.
func CombineDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, false
	}
	clock, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, false
	}
	return combine(date, clock, loc), true
}
