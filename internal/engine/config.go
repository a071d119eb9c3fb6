package engine

import (
	"errors"
	"fmt"
)

// DayPart tags a course with the part of the operating day it prefers.
type DayPart string

const (
	DayPartEarly  DayPart = "early"
	DayPartMiddle DayPart = "middle"
	DayPartLate   DayPart = "late"
)

// ParseDayPart validates a raw day-part tag.
func ParseDayPart(raw string) (DayPart, error) {
	switch DayPart(raw) {
	case DayPartEarly, DayPartMiddle, DayPartLate:
		return DayPart(raw), nil
	}
	return "", fmt.Errorf("unknown day part %q", raw)
}

// DayHours bounds a school day's operating window in minutes from midnight.
type DayHours struct {
	Open  int
	Close int
}

// Config is the immutable input to a generation run. Slices keep their
// declared order; the generator uses that order to break ties, so two runs
// over the same Config produce the same schedule.
type Config struct {
	Halls       []string
	SchoolDays  []string
	Departments []string
	Professors  []string
	Courses     []string

	LevelCourses              map[string][]string
	DepartmentCourses         map[string][]string
	ProfessorSpecialties      map[string][]string
	ProfessorPreferredCourses map[string][]string
	ProfessorPreferredTimes   map[string][]TimeSlot
	CoursePreferredTimes      map[string]DayPart
	RestrictedTimes           []TimeSlot
	DayHours                  map[string]DayHours
	LectureDurations          map[string]int
	SectionCounts             map[string]int
}

// ConfigError reports an invalid Config field. It is a client failure, not
// an internal one.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Reason)
}

var errIndexInconsistent = errors.New("engine: derived index is inconsistent")

func (c *Config) validate() error {
	if len(c.Halls) == 0 {
		return &ConfigError{Field: "halls", Reason: "at least one hall is required"}
	}
	if len(c.SchoolDays) == 0 {
		return &ConfigError{Field: "school_days", Reason: "at least one school day is required"}
	}
	if len(c.Professors) == 0 {
		return &ConfigError{Field: "professors", Reason: "at least one professor is required"}
	}
	if len(c.Courses) == 0 {
		return &ConfigError{Field: "courses", Reason: "at least one course is required"}
	}
	for _, day := range c.SchoolDays {
		hours, ok := c.DayHours[day]
		if !ok {
			return &ConfigError{Field: "days_with_hours", Reason: fmt.Sprintf("missing hours for school day %q", day)}
		}
		if hours.Open >= hours.Close {
			return &ConfigError{Field: "days_with_hours", Reason: fmt.Sprintf("day %q opens at or after it closes", day)}
		}
	}
	known := make(map[string]bool, len(c.Courses))
	for _, course := range c.Courses {
		known[course] = true
	}
	for course, count := range c.SectionCounts {
		if !known[course] {
			return &ConfigError{Field: "course_sections_count", Reason: fmt.Sprintf("unknown course %q", course)}
		}
		if count <= 0 {
			return &ConfigError{Field: "course_sections_count", Reason: fmt.Sprintf("course %q needs a positive section count", course)}
		}
	}
	for course, duration := range c.LectureDurations {
		if !known[course] {
			return &ConfigError{Field: "course_lecture_durations", Reason: fmt.Sprintf("unknown course %q", course)}
		}
		if duration <= 0 {
			return &ConfigError{Field: "course_lecture_durations", Reason: fmt.Sprintf("course %q needs a positive duration", course)}
		}
	}
	return nil
}

func (c *Config) lectureDuration(courseID string) int {
	if d, ok := c.LectureDurations[courseID]; ok {
		return d
	}
	return defaultLectureMinutes
}

func (c *Config) requiredSections(courseID string) int {
	if n, ok := c.SectionCounts[courseID]; ok {
		return n
	}
	return 1
}
