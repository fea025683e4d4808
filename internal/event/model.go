package event

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/mayurihegde/evently-backend/internal/eventform"
)

// Event statuses.
const (
	StatusPublished = "published"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Event is the server-canonical event record. Tags and the recurrence
// schedule live in jsonb columns; both encode "absent" as null.
type Event struct {
	ID                uint                        `gorm:"primaryKey" json:"id"`
	OrganizationID    uint                        `gorm:"not null;index" json:"organization_id"`
	Title             string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description       string                      `gorm:"type:text;not null" json:"description"`
	StartDatetime     time.Time                   `gorm:"not null;index" json:"start_datetime"`
	EndDatetime       time.Time                   `gorm:"not null" json:"end_datetime"`
	VenueID           uint                        `gorm:"not null;index" json:"venue_id"`
	CategoryID        uint                        `gorm:"not null;index" json:"category_id"`
	SubcategoryID     uint                        `gorm:"not null" json:"subcategory_id"`
	Tags              datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	IsOnline          bool                        `gorm:"default:false" json:"is_online"`
	AccessLink        string                      `gorm:"type:text" json:"access_link,omitempty"`
	IsRecurring       bool                        `gorm:"default:false" json:"is_recurring"`
	RecurringSchedule datatypes.JSON              `gorm:"type:jsonb" json:"recurring_schedule,omitempty"`
	ImageURL          string                      `gorm:"type:text" json:"image_url,omitempty"`
	SignupRequired    bool                        `gorm:"default:false" json:"signup_required"`
	Status            string                      `gorm:"type:varchar(20);default:'published';index" json:"status"`
	CreatedAt         time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// Schedule decodes the recurrence pair, or nil when the event does not
// recur (or the column holds json null).
func (e *Event) Schedule() *eventform.Schedule {
	if len(e.RecurringSchedule) == 0 || string(e.RecurringSchedule) == "null" {
		return nil
	}
	var s eventform.Schedule
	if err := json.Unmarshal(e.RecurringSchedule, &s); err != nil {
		return nil
	}
	return &s
}

// Snapshot projects the record into the plain shape the form core diffs
// against. Storage concerns stay on this side of the boundary.
func (e *Event) Snapshot() eventform.Record {
	return eventform.Record{
		Title:          e.Title,
		Description:    e.Description,
		Start:          e.StartDatetime.UTC(),
		End:            e.EndDatetime.UTC(),
		VenueID:        int(e.VenueID),
		CategoryID:     int(e.CategoryID),
		SubcategoryID:  int(e.SubcategoryID),
		Tags:           []string(e.Tags),
		IsOnline:       e.IsOnline,
		AccessLink:     e.AccessLink,
		IsRecurring:    e.IsRecurring,
		Schedule:       e.Schedule(),
		ImageURL:       e.ImageURL,
		SignupRequired: e.SignupRequired,
	}
}

// EventStatsResponse backs the organiser dashboard.
type EventStatsResponse struct {
	TotalEvents     int `json:"total_events"`
	UpcomingEvents  int `json:"upcoming_events"`
	ThisMonthEvents int `json:"this_month_events"`
	OnlineEvents    int `json:"online_events"`
}
