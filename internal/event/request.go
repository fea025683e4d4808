package event

import "github.com/mayurihegde/evently-backend/internal/eventform"

// CreateEventRequest carries a full form submission for a new event.
type CreateEventRequest struct {
	eventform.FormState
}

// UpdateEventRequest carries the edited form plus the set of fields the
// client actually touched; the touched set drives the differential patch.
type UpdateEventRequest struct {
	Form    eventform.FormState `json:"form" binding:"required"`
	Touched []string            `json:"touched"`
}

// PublicEventRow is a browse-listing row with reference names joined in.
type PublicEventRow struct {
	Event
	VenueName    string `json:"venue_name"`
	CategoryName string `json:"category_name"`
}
