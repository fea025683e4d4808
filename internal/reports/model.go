package reports

import "time"

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// EventReportRow is a flattened event with its venue and category names
// resolved for export.
type EventReportRow struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	VenueName     string    `json:"venue_name"`
	CategoryName  string    `json:"category_name"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	IsOnline      bool      `json:"is_online"`
	IsRecurring   bool      `json:"is_recurring"`
	Status        string    `json:"status"`
	Tags          string    `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
}
