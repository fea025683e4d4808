package reports

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

type eventRow struct {
	ID            uint
	Title         string
	VenueName     string
	CategoryName  string
	StartDatetime time.Time
	EndDatetime   time.Time
	IsOnline      bool
	IsRecurring   bool
	Status        string
	Tags          datatypes.JSON
	CreatedAt     time.Time
}

// ListEvents returns the organisation's events joined with venue and
// category names, oldest first.
func (r *Repository) ListEvents(orgID uint, from, to time.Time) ([]EventReportRow, error) {
	var raw []eventRow
	q := r.DB.Table("events").
		Select(`events.id, events.title, venues.name as venue_name,
			categories.name as category_name, events.start_datetime,
			events.end_datetime, events.is_online, events.is_recurring,
			events.status, events.tags, events.created_at`).
		Joins("LEFT JOIN venues ON venues.id = events.venue_id").
		Joins("LEFT JOIN categories ON categories.id = events.category_id").
		Where("events.organization_id = ?", orgID).
		Order("events.start_datetime asc")

	if !from.IsZero() {
		q = q.Where("events.start_datetime >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("events.start_datetime < ?", to)
	}

	if err := q.Scan(&raw).Error; err != nil {
		return nil, err
	}

	rows := make([]EventReportRow, 0, len(raw))
	for _, e := range raw {
		rows = append(rows, EventReportRow{
			ID:            e.ID,
			Title:         e.Title,
			VenueName:     e.VenueName,
			CategoryName:  e.CategoryName,
			StartDatetime: e.StartDatetime,
			EndDatetime:   e.EndDatetime,
			IsOnline:      e.IsOnline,
			IsRecurring:   e.IsRecurring,
			Status:        e.Status,
			Tags:          joinTags(e.Tags),
			CreatedAt:     e.CreatedAt,
		})
	}
	return rows, nil
}

func joinTags(raw datatypes.JSON) string {
	if len(raw) == 0 {
		return ""
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return ""
	}
	return strings.Join(tags, ", ")
}
