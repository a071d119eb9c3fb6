package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoringFixture(t *testing.T) *Generator {
	t.Helper()
	cfg := &Config{
		Halls:       []string{"H1", "H2"},
		SchoolDays:  []string{"Monday", "Tuesday", "Wednesday"},
		Departments: []string{"math"},
		Professors:  []string{"p-alice", "p-bob"},
		Courses:     []string{"calculus", "algebra"},
		DepartmentCourses: map[string][]string{
			"math": {"calculus", "algebra"},
		},
		LevelCourses: map[string][]string{
			"level-1": {"calculus", "algebra"},
		},
		ProfessorPreferredCourses: map[string][]string{
			"p-alice": {"calculus"},
		},
		ProfessorPreferredTimes: map[string][]TimeSlot{
			"p-alice": {{Day: "Monday", Start: 480, End: 720}},
		},
		CoursePreferredTimes: map[string]DayPart{
			"calculus": DayPartEarly,
		},
		DayHours: map[string]DayHours{
			"Monday":    {Open: 480, Close: 1020}, // 08:00-17:00
			"Tuesday":   {Open: 480, Close: 1020},
			"Wednesday": {Open: 480, Close: 1020},
		},
	}
	g, err := New(cfg, Options{})
	require.NoError(t, err)
	return g
}

func TestNormalizedSpread(t *testing.T) {
	assert.Equal(t, 1.0, normalizedSpread([]int{2, 2, 2}), "even counts are a perfect spread")
	assert.Equal(t, 0.0, normalizedSpread([]int{3, 0, 0}), "a single pile is the worst spread")
	assert.Equal(t, 1.0, normalizedSpread([]int{0, 0, 0}), "an empty histogram is trivially even")
	assert.Equal(t, 1.0, normalizedSpread([]int{5}), "a single bin cannot be uneven")
	assert.InDelta(t, 2.0/3.0, normalizedSpread([]int{2, 1, 0}), 1e-9)
}

func TestTimePreferenceScore(t *testing.T) {
	g := scoringFixture(t)

	// The Monday window is 08:00-17:00, so thirds start at 08:00, 11:00
	// and 14:00. calculus prefers early.
	early := TimeSlot{Day: "Monday", Start: 480, End: 540}
	middle := TimeSlot{Day: "Monday", Start: 660, End: 720}
	late := TimeSlot{Day: "Monday", Start: 900, End: 960}

	assert.Equal(t, 1.0, g.timePreferenceScore("calculus", early))
	assert.Equal(t, 0.6, g.timePreferenceScore("calculus", middle))
	assert.Equal(t, 0.3, g.timePreferenceScore("calculus", late))
	assert.Equal(t, neutralScore, g.timePreferenceScore("algebra", early), "untagged courses are neutral")
}

func TestProfessorPreferenceScore(t *testing.T) {
	g := scoringFixture(t)

	inWindow := TimeSlot{Day: "Monday", Start: 480, End: 540}
	outsideWindow := TimeSlot{Day: "Tuesday", Start: 480, End: 540}

	assert.Equal(t, 1.0, g.professorPreferenceScore("p-alice", "calculus", inWindow))
	assert.Equal(t, 0.8, g.professorPreferenceScore("p-alice", "calculus", outsideWindow))
	assert.Equal(t, 0.8, g.professorPreferenceScore("p-alice", "algebra", inWindow))
	assert.Equal(t, neutralScore, g.professorPreferenceScore("p-bob", "algebra", outsideWindow))
}

func TestDistributionScorePrefersFreshDays(t *testing.T) {
	g := scoringFixture(t)
	schedule := []Section{
		{CourseID: "calculus", Number: 1, ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 480, End: 540}},
	}

	freshDay := g.distributionScore(schedule, "calculus", TimeSlot{Day: "Tuesday", Start: 480, End: 540})
	sameDay := g.distributionScore(schedule, "calculus", TimeSlot{Day: "Monday", Start: 555, End: 615})

	assert.Greater(t, freshDay, sameDay)
	// Counts {1, 1, 0} over three days.
	assert.InDelta(t, 0.75, freshDay, 1e-9)
}

func TestHallUtilizationScore(t *testing.T) {
	g := scoringFixture(t)

	assert.Equal(t, 1.0, g.hallUtilizationScore(nil, "H1"), "an empty schedule penalizes nothing")

	schedule := []Section{
		{CourseID: "calculus", HallID: "H1", Slot: TimeSlot{Day: "Monday", Start: 480, End: 540}},
		{CourseID: "calculus", HallID: "H1", Slot: TimeSlot{Day: "Tuesday", Start: 480, End: 540}},
	}
	// Mean usage is 1 per hall; H1 carries 2, so the score decays to 0.
	assert.Equal(t, 0.0, g.hallUtilizationScore(schedule, "H1"))
	assert.Equal(t, 1.0, g.hallUtilizationScore(schedule, "H2"))
}

func TestProfessorGapScore(t *testing.T) {
	g := scoringFixture(t)
	schedule := []Section{
		{CourseID: "calculus", ProfessorID: "p-alice", HallID: "H1",
			Slot: TimeSlot{Day: "Monday", Start: 480, End: 540}},
	}

	adjacent := g.professorGapScore(schedule, "p-alice", TimeSlot{Day: "Monday", Start: 540, End: 600})
	oneHour := g.professorGapScore(schedule, "p-alice", TimeSlot{Day: "Monday", Start: 600, End: 660})
	huge := g.professorGapScore(schedule, "p-alice", TimeSlot{Day: "Monday", Start: 840, End: 900})
	otherDay := g.professorGapScore(schedule, "p-alice", TimeSlot{Day: "Tuesday", Start: 840, End: 900})

	assert.Equal(t, 1.0, adjacent, "back-to-back slots introduce no idle time")
	assert.InDelta(t, 1.0-60.0/180.0, oneHour, 1e-9)
	assert.Equal(t, 0.0, huge, "gaps at or past the cap score zero")
	assert.Equal(t, 1.0, otherDay, "no same-day neighbor means no idle time")
}

func TestLevelBalanceScore(t *testing.T) {
	g := scoringFixture(t)

	noLevelCfg := *g.cfg
	noLevelCfg.LevelCourses = nil
	noLevelGen, err := New(&noLevelCfg, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, noLevelGen.levelBalanceScore(nil, "calculus", TimeSlot{Day: "Monday", Start: 480, End: 540}))

	schedule := []Section{
		{CourseID: "calculus", Slot: TimeSlot{Day: "Monday", Start: 480, End: 540}},
		{CourseID: "algebra", Slot: TimeSlot{Day: "Monday", Start: 555, End: 615}},
	}
	pileOn := g.levelBalanceScore(schedule, "calculus", TimeSlot{Day: "Monday", Start: 630, End: 690})
	spreadOut := g.levelBalanceScore(schedule, "calculus", TimeSlot{Day: "Tuesday", Start: 840, End: 900})

	assert.Greater(t, spreadOut, pileOn)
}
