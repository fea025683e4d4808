package eventform

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveConstraintsPinsOnlineVenue(t *testing.T) {
	form := FormState{Venue: "5", IsOnline: true, AccessLink: "https://meet.example.com/x"}
	derived := DeriveConstraints(form)

	assert.Equal(t, strconv.Itoa(OnlineVenueID), derived.Venue)
	assert.Equal(t, "https://meet.example.com/x", derived.AccessLink)
}

func TestDeriveConstraintsClearsAccessLinkWhenOffline(t *testing.T) {
	form := FormState{Venue: "5", IsOnline: false, AccessLink: "https://meet.example.com/x"}
	derived := DeriveConstraints(form)

	assert.Equal(t, "5", derived.Venue)
	assert.Empty(t, derived.AccessLink)
}

func TestDeriveConstraintsClearsRecurrencePair(t *testing.T) {
	form := FormState{IsRecurring: false, RecurringFrequency: "weekly", RecurringDay: "saturday"}
	derived := DeriveConstraints(form)

	assert.Empty(t, derived.RecurringFrequency)
	assert.Empty(t, derived.RecurringDay)
}

func TestDeriveConstraintsIsIdempotent(t *testing.T) {
	form := FormState{Venue: "9", IsOnline: true, IsRecurring: true, RecurringFrequency: "weekly"}
	once := DeriveConstraints(form)
	twice := DeriveConstraints(once)

	assert.Equal(t, once, twice)
}
