package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders timetables into a day-grouped tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with one table section per day, in the
// order days first appear in the entries.
func (e *PDFExporter) Render(data Timetable) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if data.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(data.Title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	headers := []string{"Time", "Course", "Section", "Professor", "Hall"}
	widths := []float64{40, 55, 20, 45, 30}

	for _, day := range dayOrder(data.Entries) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 9, day, "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 10)
		for i, header := range headers {
			pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, entry := range data.Entries {
			if entry.Day != day {
				continue
			}
			cells := []string{
				fmt.Sprintf("%s - %s", entry.StartTime, entry.EndTime),
				entry.CourseID,
				fmt.Sprintf("%d", entry.SectionNumber),
				entry.ProfessorID,
				entry.HallID,
			}
			for i, cell := range cells {
				pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func dayOrder(entries []Entry) []string {
	seen := make(map[string]bool)
	var days []string
	for _, entry := range entries {
		if !seen[entry.Day] {
			seen[entry.Day] = true
			days = append(days, entry.Day)
		}
	}
	return days
}
