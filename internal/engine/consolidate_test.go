package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consolidationFixture(t *testing.T) *Generator {
	t.Helper()
	cfg := &Config{
		Halls:      []string{"H1"},
		SchoolDays: []string{"Monday", "Tuesday"},
		Professors: []string{"p-alice"},
		Courses:    []string{"calculus", "algebra", "geometry"},
		DayHours: map[string]DayHours{
			"Monday":  {Open: 480, Close: 1020},
			"Tuesday": {Open: 480, Close: 1020},
		},
	}
	g, err := New(cfg, Options{ConsolidateProfessorDays: true})
	require.NoError(t, err)
	return g
}

func TestConsolidateMovesLoneSection(t *testing.T) {
	g := consolidationFixture(t)
	schedule := []Section{
		{CourseID: "calculus", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 480, End: 540}},
		{CourseID: "algebra", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 555, End: 615}},
		{CourseID: "geometry", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Tuesday", Start: 480, End: 540}},
	}

	moves := g.consolidateProfessorDays(schedule)

	assert.Equal(t, 1, moves)
	// The lone Tuesday section moves to Monday's first slot that conflicts
	// with nothing: 08:00 and 09:15 are taken, 10:30 is free.
	assert.Equal(t, TimeSlot{Day: "Monday", Start: 630, End: 690}, schedule[2].Slot)
	assertScheduleValid(t, g.cfg, schedule)
}

func TestConsolidateLeavesBalancedDaysAlone(t *testing.T) {
	g := consolidationFixture(t)
	schedule := []Section{
		{CourseID: "calculus", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 480, End: 540}},
		{CourseID: "algebra", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 555, End: 615}},
		{CourseID: "geometry", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Tuesday", Start: 480, End: 540}},
		{CourseID: "calculus", Number: 2, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Tuesday", Start: 555, End: 615}},
	}

	moves := g.consolidateProfessorDays(schedule)

	assert.Equal(t, 0, moves, "days with more than one section are already consolidated")
}

func TestConsolidateRespectsMoveCap(t *testing.T) {
	cfg := &Config{
		Halls:      []string{"H1"},
		SchoolDays: []string{"Monday", "Tuesday", "Wednesday"},
		Professors: []string{"p-alice"},
		Courses:    []string{"calculus", "algebra", "geometry", "topology"},
		DayHours: map[string]DayHours{
			"Monday":    {Open: 480, Close: 1020},
			"Tuesday":   {Open: 480, Close: 1020},
			"Wednesday": {Open: 480, Close: 1020},
		},
	}
	g, err := New(cfg, Options{ConsolidateProfessorDays: true, MaxConsolidationMoves: 1})
	require.NoError(t, err)

	// Two lone days would both be folded into Monday without the cap.
	schedule := []Section{
		{CourseID: "calculus", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 480, End: 540}},
		{CourseID: "algebra", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 555, End: 615}},
		{CourseID: "geometry", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Tuesday", Start: 480, End: 540}},
		{CourseID: "topology", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Wednesday", Start: 480, End: 540}},
	}

	moves := g.consolidateProfessorDays(schedule)
	assert.Equal(t, 1, moves)
}

func TestGenerateWithConsolidationStaysValid(t *testing.T) {
	cfg := denseFixture()
	result := mustGenerate(t, cfg, Options{ConsolidateProfessorDays: true})

	assert.Empty(t, result.Shortfalls)
	assert.GreaterOrEqual(t, result.Stats.ConsolidationMoves, 0)
	assertScheduleValid(t, cfg, result.Sections)
}
