package eventform

import (
	"strconv"
	"time"
)

// OnlineVenueID is the reserved venue every online event is pinned to.
// It must match the venue seeded by the venue module.
const OnlineVenueID = 1

// Layouts shared by the form fields and the patch builder.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// FormState is the client-side editable projection of an event. All fields
// arrive as raw strings/bools/slices exactly as a form submits them; the
// validator owns coercion and normalization.
type FormState struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	StartDate          string   `json:"startDate"`
	StartTime          string   `json:"startTime"`
	EndDate            string   `json:"endDate"`
	EndTime            string   `json:"endTime"`
	Venue              string   `json:"venue"`
	Category           string   `json:"category"`
	Subcategory        string   `json:"subcategory"`
	SelectedTags       []string `json:"selectedTags"`
	IsOnline           bool     `json:"isOnline"`
	AccessLink         string   `json:"accessLink"`
	IsRecurring        bool     `json:"isRecurring"`
	RecurringFrequency string   `json:"recurringFrequency"`
	RecurringDay       string   `json:"recurringDay"`
	ImageURL           string   `json:"imageUrl"`
	SignupRequired     bool     `json:"signupRequired"`
}

// FormState keys, as tracked by TouchedFieldSet.
const (
	FieldTitle              = "title"
	FieldDescription        = "description"
	FieldStartDate          = "startDate"
	FieldStartTime          = "startTime"
	FieldEndDate            = "endDate"
	FieldEndTime            = "endTime"
	FieldVenue              = "venue"
	FieldCategory           = "category"
	FieldSubcategory        = "subcategory"
	FieldSelectedTags       = "selectedTags"
	FieldIsOnline           = "isOnline"
	FieldAccessLink         = "accessLink"
	FieldIsRecurring        = "isRecurring"
	FieldRecurringFrequency = "recurringFrequency"
	FieldRecurringDay       = "recurringDay"
	FieldImageURL           = "imageUrl"
	FieldSignupRequired     = "signupRequired"
)

// TouchedFieldSet is the set of FormState keys the user actually modified
// in the current edit session. It is authoritative for what may appear in
// a patch; value inequality alone is never enough.
type TouchedFieldSet map[string]bool

func NewTouchedFieldSet(fields ...string) TouchedFieldSet {
	t := make(TouchedFieldSet, len(fields))
	for _, f := range fields {
		t[f] = true
	}
	return t
}

// Any reports whether at least one of the given fields was touched.
func (t TouchedFieldSet) Any(fields ...string) bool {
	for _, f := range fields {
		if t[f] {
			return true
		}
	}
	return false
}

// Schedule is the recurrence pair stored on a recurring event.
type Schedule struct {
	Frequency string `json:"frequency"`
	Day       string `json:"day"`
}

// Record is the server-canonical snapshot of an event's mutable business
// fields. The event module converts its storage model to and from this
// shape so the form core stays free of storage concerns.
type Record struct {
	Title          string
	Description    string
	Start          time.Time // UTC
	End            time.Time // UTC
	VenueID        int
	CategoryID     int
	SubcategoryID  int
	Tags           []string // nil means "no tags"
	IsOnline       bool
	AccessLink     string
	IsRecurring    bool
	Schedule       *Schedule // nil when not recurring
	ImageURL       string
	SignupRequired bool
}

// FormFromRecord builds the editable projection of an existing event:
// timestamps split into date and time strings in the display timezone,
// the recurrence pair flattened into two scalar fields.
func FormFromRecord(rec Record, loc *time.Location) FormState {
	form := FormState{
		Title:          rec.Title,
		Description:    rec.Description,
		StartDate:      rec.Start.In(loc).Format(DateLayout),
		StartTime:      rec.Start.In(loc).Format(TimeLayout),
		EndDate:        rec.End.In(loc).Format(DateLayout),
		EndTime:        rec.End.In(loc).Format(TimeLayout),
		Venue:          strconv.Itoa(rec.VenueID),
		Category:       strconv.Itoa(rec.CategoryID),
		Subcategory:    strconv.Itoa(rec.SubcategoryID),
		SelectedTags:   append([]string(nil), rec.Tags...),
		IsOnline:       rec.IsOnline,
		AccessLink:     rec.AccessLink,
		IsRecurring:    rec.IsRecurring,
		ImageURL:       rec.ImageURL,
		SignupRequired: rec.SignupRequired,
	}
	if rec.Schedule != nil {
		form.RecurringFrequency = rec.Schedule.Frequency
		form.RecurringDay = rec.Schedule.Day
	}
	return form
}
