package eventform

import (
	"sort"
	"strconv"
	"time"
)

// Patch is a partial update keyed by server-facing field names. A nil value
// clears the field (tags, recurring_schedule). An empty Patch means the
// submit is a no-op and no update request should be issued.
type Patch map[string]interface{}

// Server-facing field names.
const (
	PatchTitle             = "title"
	PatchDescription       = "description"
	PatchStartDatetime     = "start_datetime"
	PatchEndDatetime       = "end_datetime"
	PatchVenueID           = "venue_id"
	PatchCategoryID        = "category_id"
	PatchSubcategoryID     = "subcategory_id"
	PatchTags              = "tags"
	PatchIsOnline          = "is_online"
	PatchAccessLink        = "access_link"
	PatchIsRecurring       = "is_recurring"
	PatchRecurringSchedule = "recurring_schedule"
	PatchImageURL          = "image_url"
	PatchSignupRequired    = "signup_required"
)

// BuildPatch computes the minimal partial update for an edited event. A
// server field is included only when a FormState field mapping to it was
// touched AND the recomputed value differs from the original record. The
// three composite fields (the two datetimes and the tag set) are recomputed
// whenever any contributing sub-field was touched, with value difference
// deciding inclusion. The form must already be validated and normalized.
func BuildPatch(form FormState, orig Record, touched TouchedFieldSet, loc *time.Location) Patch {
	patch := Patch{}

	if touched.Any(FieldTitle) && form.Title != orig.Title {
		patch[PatchTitle] = form.Title
	}
	if touched.Any(FieldDescription) && form.Description != orig.Description {
		patch[PatchDescription] = form.Description
	}

	// Either sub-field of a datetime pair forces recombination; the
	// recombined instant decides inclusion.
	if touched.Any(FieldStartDate, FieldStartTime) {
		if start, ok := CombineDateTime(form.StartDate, form.StartTime, loc); ok && !start.Equal(orig.Start) {
			patch[PatchStartDatetime] = start
		}
	}
	if touched.Any(FieldEndDate, FieldEndTime) {
		if end, ok := CombineDateTime(form.EndDate, form.EndTime, loc); ok && !end.Equal(orig.End) {
			patch[PatchEndDatetime] = end
		}
	}

	// Toggling isOnline moves the venue pin, so it counts as touching the
	// venue even when the user never opened the venue picker.
	if touched.Any(FieldVenue, FieldIsOnline) {
		if id, err := strconv.Atoi(form.Venue); err == nil && id != orig.VenueID {
			patch[PatchVenueID] = id
		}
	}
	if touched.Any(FieldCategory) {
		if id, err := strconv.Atoi(form.Category); err == nil && id != orig.CategoryID {
			patch[PatchCategoryID] = id
		}
	}
	if touched.Any(FieldSubcategory) {
		if id, err := strconv.Atoi(form.Subcategory); err == nil && id != orig.SubcategoryID {
			patch[PatchSubcategoryID] = id
		}
	}

	if touched.Any(FieldSelectedTags) && !sameTagSet(form.SelectedTags, orig.Tags) {
		if len(form.SelectedTags) == 0 {
			patch[PatchTags] = nil // empty set is encoded as null, not []
		} else {
			patch[PatchTags] = append([]string(nil), form.SelectedTags...)
		}
	}

	if touched.Any(FieldIsOnline) && form.IsOnline != orig.IsOnline {
		patch[PatchIsOnline] = form.IsOnline
	}
	if touched.Any(FieldAccessLink, FieldIsOnline) && form.AccessLink != orig.AccessLink {
		patch[PatchAccessLink] = form.AccessLink
	}

	if touched.Any(FieldIsRecurring) && form.IsRecurring != orig.IsRecurring {
		patch[PatchIsRecurring] = form.IsRecurring
	}
	if form.IsRecurring {
		if touched.Any(FieldIsRecurring, FieldRecurringFrequency, FieldRecurringDay) {
			next := Schedule{Frequency: form.RecurringFrequency, Day: form.RecurringDay}
			if orig.Schedule == nil || *orig.Schedule != next {
				patch[PatchRecurringSchedule] = next
			}
		}
	} else if orig.Schedule != nil {
		// The event stopped recurring: clear the schedule explicitly even
		// though neither sub-field is individually touched.
		patch[PatchRecurringSchedule] = nil
	}

	if touched.Any(FieldImageURL) && form.ImageURL != orig.ImageURL {
		patch[PatchImageURL] = form.ImageURL
	}
	if touched.Any(FieldSignupRequired) && form.SignupRequired != orig.SignupRequired {
		patch[PatchSignupRequired] = form.SignupRequired
	}

	return patch
}

// sameTagSet compares tag sets value-wise, ignoring order. nil and empty
// are the same set.
func sameTagSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
