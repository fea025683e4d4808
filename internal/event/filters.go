package event

import (
	"errors"
	"time"
)

// Date-range presets accepted by the public browse endpoint.
const (
	DateRangeToday   = "today"
	DateRangeWeek    = "week"
	DateRangeWeekend = "weekend"
	DateRangeMonth   = "month"
	DateRangeCustom  = "custom"
)

// Filters narrows the public event listing. Zero values mean "no filter".
type Filters struct {
	CategoryID    uint
	SubcategoryID uint
	VenueID       uint
	Tag           string
	DateRange     string
	StartDate     string // "2006-01-02", custom range only
	EndDate       string
	OnlineOnly    bool
	Search        string
	Limit         int
	Offset        int
}

// GetDateRange returns the [start, end] window for the given preset.
// startStr/endStr are required for the custom preset.
func GetDateRange(dateRange, startStr, endStr string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch dateRange {
	case DateRangeToday:
		return day, day.Add(24*time.Hour - time.Second), nil
	case DateRangeWeek:
		// next 7 days including today
		return day, day.AddDate(0, 0, 7).Add(-time.Second), nil
	case DateRangeWeekend:
		daysUntilSaturday := (int(time.Saturday) - int(day.Weekday()) + 7) % 7
		saturday := day.AddDate(0, 0, daysUntilSaturday)
		return saturday, saturday.AddDate(0, 0, 2).Add(-time.Second), nil
	case DateRangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0).Add(-time.Second), nil
	case DateRangeCustom:
		if startStr == "" || endStr == "" {
			return time.Time{}, time.Time{}, errors.New("start_date and end_date required for custom range")
		}
		start, err := time.ParseInLocation("2006-01-02", startStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = end.Add(24*time.Hour - time.Second)
		if start.After(end) {
			return time.Time{}, time.Time{}, errors.New("start_date must be before end_date")
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, errors.New("unknown date range: " + dateRange)
	}
}
