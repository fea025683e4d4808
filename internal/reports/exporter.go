package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders an event report in the requested format and returns
// the bytes, a suggested filename, and the content type.
type Exporter interface {
	Export(format string, rows []EventReportRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(format string, rows []EventReportRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("events_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *exporter) exportCSV(rows []EventReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Venue", "Category", "Start", "End", "Online", "Recurring", "Status", "Tags", "Created At"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Title,
			r.VenueName,
			r.CategoryName,
			r.StartDatetime.Format("2006-01-02 15:04"),
			r.EndDatetime.Format("2006-01-02 15:04"),
			strconv.FormatBool(r.IsOnline),
			strconv.FormatBool(r.IsRecurring),
			r.Status,
			r.Tags,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportExcel(rows []EventReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Events"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Title", "Venue", "Category", "Start", "End", "Online", "Recurring", "Status", "Tags", "Created At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Title)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.VenueName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.CategoryName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.StartDatetime.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.EndDatetime.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.IsOnline)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.IsRecurring)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), r.Status)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), r.Tags)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportPDF(rows []EventReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Events Report")
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 9)
	widths := []float64{12, 55, 40, 30, 30, 30, 16, 20, 22, 40}
	headers := []string{"ID", "Title", "Venue", "Category", "Start", "End", "Online", "Recurring", "Status", "Tags"}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		title := r.Title
		if len(title) > 32 {
			title = title[:29] + "..."
		}
		tags := r.Tags
		if len(tags) > 24 {
			tags = tags[:21] + "..."
		}

		pdf.CellFormat(widths[0], 6, strconv.FormatUint(uint64(r.ID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.VenueName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.CategoryName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.StartDatetime.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, r.EndDatetime.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, strconv.FormatBool(r.IsOnline), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 6, strconv.FormatBool(r.IsRecurring), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[8], 6, r.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[9], 6, tags, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
