package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateSlotsStepsByDurationPlusBreak(t *testing.T) {
	cfg := &Config{
		Halls:      []string{"H1"},
		SchoolDays: []string{"Monday"},
		Professors: []string{"p-alice"},
		Courses:    []string{"calculus"},
		DayHours:   map[string]DayHours{"Monday": {Open: 480, Close: 660}}, // 08:00-11:00
	}

	slots := candidateSlots(cfg, "calculus")

	// 60-minute lectures with a 15-minute break: 08:00 and 09:15 fit, the
	// next start at 10:30 would end past 11:00.
	require.Len(t, slots, 2)
	assert.Equal(t, TimeSlot{Day: "Monday", Start: 480, End: 540}, slots[0])
	assert.Equal(t, TimeSlot{Day: "Monday", Start: 555, End: 615}, slots[1])
}

func TestCandidateSlotsHonorsLectureDuration(t *testing.T) {
	cfg := &Config{
		Halls:            []string{"H1"},
		SchoolDays:       []string{"Monday"},
		Professors:       []string{"p-alice"},
		Courses:          []string{"lab"},
		DayHours:         map[string]DayHours{"Monday": {Open: 480, Close: 720}}, // 08:00-12:00
		LectureDurations: map[string]int{"lab": 120},
	}

	slots := candidateSlots(cfg, "lab")

	require.Len(t, slots, 1)
	assert.Equal(t, TimeSlot{Day: "Monday", Start: 480, End: 600}, slots[0])
}

func TestCandidateSlotsSkipsRestrictedWindows(t *testing.T) {
	cfg := &Config{
		Halls:      []string{"H1"},
		SchoolDays: []string{"Monday"},
		Professors: []string{"p-alice"},
		Courses:    []string{"calculus"},
		DayHours:   map[string]DayHours{"Monday": {Open: 480, Close: 720}}, // 08:00-12:00
		RestrictedTimes: []TimeSlot{
			{Day: "Monday", Start: 540, End: 630}, // 09:00-10:30
		},
	}

	slots := candidateSlots(cfg, "calculus")

	// Starts would be 08:00, 09:15, 10:30; the 09:15 slot crosses the
	// restricted window and is dropped.
	require.Len(t, slots, 2)
	assert.Equal(t, TimeSlot{Day: "Monday", Start: 480, End: 540}, slots[0])
	assert.Equal(t, TimeSlot{Day: "Monday", Start: 630, End: 690}, slots[1])
}

func TestCandidateSlotsWalksDaysInDeclaredOrder(t *testing.T) {
	cfg := &Config{
		Halls:      []string{"H1"},
		SchoolDays: []string{"Wednesday", "Monday"},
		Professors: []string{"p-alice"},
		Courses:    []string{"calculus"},
		DayHours: map[string]DayHours{
			"Monday":    {Open: 480, Close: 555},
			"Wednesday": {Open: 480, Close: 555},
		},
	}

	slots := candidateSlots(cfg, "calculus")

	require.Len(t, slots, 2)
	assert.Equal(t, "Wednesday", slots[0].Day)
	assert.Equal(t, "Monday", slots[1].Day)
}
