package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlot is an immutable day + time-of-day window. Start and End are
// minutes from midnight, with Start < End always holding for constructed
// values.
type TimeSlot struct {
	Day   string
	Start int
	End   int
}

// NewTimeSlot parses "HH:MM" boundaries into a slot on the given day.
func NewTimeSlot(day, start, end string) (TimeSlot, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("start time %q: %w", start, err)
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("end time %q: %w", end, err)
	}
	if startMin >= endMin {
		return TimeSlot{}, fmt.Errorf("slot %s %s-%s: start must precede end", day, start, end)
	}
	return TimeSlot{Day: day, Start: startMin, End: endMin}, nil
}

// Overlaps reports whether the two slots share any minute. Slots on
// different days never overlap; touching boundaries do not count.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	if t.Day != other.Day {
		return false
	}
	return t.Start < other.End && other.Start < t.End
}

// Gap returns the signed minutes between this slot and other: positive when
// other starts after this ends, negative when other ends before this starts,
// zero when they touch or overlap. The second return is false across days,
// where a gap is undefined.
func (t TimeSlot) Gap(other TimeSlot) (int, bool) {
	if t.Day != other.Day {
		return 0, false
	}
	if other.Start >= t.End {
		return other.Start - t.End, true
	}
	if other.End <= t.Start {
		return other.End - t.Start, true
	}
	return 0, true
}

// Within reports whether the slot lies fully inside the window, day included.
func (t TimeSlot) Within(window TimeSlot) bool {
	return t.Day == window.Day && t.Start >= window.Start && t.End <= window.End
}

// Minutes returns the slot length.
func (t TimeSlot) Minutes() int {
	return t.End - t.Start
}

// StartClock formats the start boundary as HH:MM.
func (t TimeSlot) StartClock() string {
	return formatClock(t.Start)
}

// EndClock formats the end boundary as HH:MM.
func (t TimeSlot) EndClock() string {
	return formatClock(t.End)
}

func (t TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", t.Day, t.StartClock(), t.EndClock())
}

// ParseClock converts a strict "HH:MM" string to minutes from midnight.
func ParseClock(raw string) (int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock value %q, want HH:MM", raw)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q, want HH:MM", raw)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q, want HH:MM", raw)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", raw)
	}
	return hours*60 + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
