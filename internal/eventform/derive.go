package eventform

import "strconv"

// DeriveConstraints applies the cross-field derivation rules after every
// raw mutation, replacing the scattered watch-and-side-effect wiring a UI
// form would otherwise need:
//
//   - an online event is pinned to the reserved online venue
//   - an offline event carries no access link
//   - a non-recurring event carries no recurrence pair
//
// It is pure and idempotent; callers run it before Validate.
func DeriveConstraints(form FormState) FormState {
	if form.IsOnline {
		form.Venue = strconv.Itoa(OnlineVenueID)
	} else {
		form.AccessLink = ""
	}
	if !form.IsRecurring {
		form.RecurringFrequency = ""
		form.RecurringDay = ""
	}
	return form
}
