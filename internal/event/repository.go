package event

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mayurihegde/evently-backend/internal/eventform"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

func (r *Repository) GetByID(id uint) (*Event, error) {
	var e Event
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListPublic returns published events matching the filters, with venue and
// category names joined in for display.
func (r *Repository) ListPublic(f Filters, now time.Time, loc *time.Location) ([]PublicEventRow, error) {
	query := r.DB.Model(&Event{}).
		Select("events.*, venues.name AS venue_name, categories.name AS category_name").
		Joins("LEFT JOIN venues ON venues.id = events.venue_id").
		Joins("LEFT JOIN categories ON categories.id = events.category_id").
		Where("events.status = ?", StatusPublished)

	if f.CategoryID != 0 {
		query = query.Where("events.category_id = ?", f.CategoryID)
	}
	if f.SubcategoryID != 0 {
		query = query.Where("events.subcategory_id = ?", f.SubcategoryID)
	}
	if f.VenueID != 0 {
		query = query.Where("events.venue_id = ?", f.VenueID)
	}
	if f.OnlineOnly {
		query = query.Where("events.is_online = TRUE")
	}
	if f.Tag != "" {
		needle, _ := json.Marshal([]string{f.Tag})
		query = query.Where("events.tags @> ?", datatypes.JSON(needle))
	}
	if f.DateRange != "" {
		start, end, err := GetDateRange(f.DateRange, f.StartDate, f.EndDate, now, loc)
		if err != nil {
			return nil, err
		}
		query = query.Where("events.start_datetime BETWEEN ? AND ?", start.UTC(), end.UTC())
	}
	if f.Search != "" {
		ilike := "%" + f.Search + "%"
		query = query.Where("events.title ILIKE ? OR events.description ILIKE ?", ilike, ilike)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows []PublicEventRow
	err := query.
		Order("events.start_datetime ASC").
		Limit(limit).
		Offset(f.Offset).
		Find(&rows).Error
	return rows, err
}

func (r *Repository) ListByOrganization(orgID uint, limit, offset int, search string) ([]Event, error) {
	query := r.DB.Where("organization_id = ?", orgID)
	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", ilike, ilike)
	}

	var events []Event
	err := query.
		Order("start_datetime ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	return events, err
}

// ApplyPatch writes a differential update. Patch values arrive as plain
// data from the form core; jsonb columns are converted here.
func (r *Repository) ApplyPatch(id uint, patch eventform.Patch) error {
	updates := make(map[string]interface{}, len(patch))
	for field, value := range patch {
		switch field {
		case eventform.PatchTags:
			if value == nil {
				updates[field] = gorm.Expr("NULL")
			} else {
				updates[field] = datatypes.NewJSONSlice(value.([]string))
			}
		case eventform.PatchRecurringSchedule:
			if value == nil {
				updates[field] = gorm.Expr("NULL")
			} else {
				raw, err := json.Marshal(value)
				if err != nil {
					return fmt.Errorf("encode recurring schedule: %w", err)
				}
				updates[field] = datatypes.JSON(raw)
			}
		default:
			updates[field] = value
		}
	}

	return r.DB.Model(&Event{}).Where("id = ?", id).Updates(updates).Error
}

// Cancel soft-deletes by flipping the status; the record stays for reporting.
func (r *Repository) Cancel(id, orgID uint) error {
	return r.DB.Model(&Event{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Update("status", StatusCancelled).Error
}

// ArchivePast marks published events whose end has passed as completed.
// Run nightly by the scheduler.
func (r *Repository) ArchivePast(now time.Time) (int64, error) {
	res := r.DB.Model(&Event{}).
		Where("status = ? AND end_datetime < ?", StatusPublished, now.UTC()).
		Update("status", StatusCompleted)
	return res.RowsAffected, res.Error
}

func (r *Repository) GetStats(orgID uint, now time.Time) (*EventStatsResponse, error) {
	var stats EventStatsResponse
	var total, upcoming, thisMonth, online int64

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	base := func() *gorm.DB { return r.DB.Model(&Event{}).Where("organization_id = ?", orgID) }

	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("start_datetime >= ? AND status = ?", now.UTC(), StatusPublished).Count(&upcoming).Error; err != nil {
		return nil, err
	}
	if err := base().Where("start_datetime >= ?", startOfMonth).Count(&thisMonth).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_online = TRUE").Count(&online).Error; err != nil {
		return nil, err
	}

	stats.TotalEvents = int(total)
	stats.UpcomingEvents = int(upcoming)
	stats.ThisMonthEvents = int(thisMonth)
	stats.OnlineEvents = int(online)
	return &stats, nil
}
