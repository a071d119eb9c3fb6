package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// Entry is one scheduled lecture in an exportable timetable.
type Entry struct {
	Day           string
	StartTime     string
	EndTime       string
	CourseID      string
	SectionNumber int
	ProfessorID   string
	HallID        string
}

// Timetable defines export content: a title and the entries to render.
// Entries are rendered in the order given; callers decide the sort.
type Timetable struct {
	Title   string
	Entries []Entry
}

var csvHeaders = []string{"day", "start_time", "end_time", "course_id", "section_number", "professor_id", "hall_id"}

// CSVExporter renders timetables into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the timetable.
func (e *CSVExporter) Render(data Timetable) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, entry := range data.Entries {
		record := []string{
			entry.Day,
			entry.StartTime,
			entry.EndTime,
			entry.CourseID,
			strconv.Itoa(entry.SectionNumber),
			entry.ProfessorID,
			entry.HallID,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
