package engine

const (
	weightTimePreference  = 0.25
	weightDistribution    = 0.20
	weightLevelBalance    = 0.15
	weightProfessorPref   = 0.15
	weightHallUtilization = 0.10
	weightProfessorGap    = 0.15

	maxUsefulGapMinutes = 180
	morningEndMinute    = 12 * 60
	afternoonEndMinute  = 17 * 60

	levelDayWeight    = 0.7
	levelBucketWeight = 0.3

	neutralScore = 0.5
)

// compositeScore rates a candidate (professor, hall, slot) triple for a
// course against the schedule committed so far. All components map into
// [0, 1] before weighting, so the weights alone set their relative pull.
func (g *Generator) compositeScore(schedule []Section, courseID, professorID, hallID string, slot TimeSlot) float64 {
	return weightTimePreference*g.timePreferenceScore(courseID, slot) +
		weightDistribution*g.distributionScore(schedule, courseID, slot) +
		weightLevelBalance*g.levelBalanceScore(schedule, courseID, slot) +
		weightProfessorPref*g.professorPreferenceScore(professorID, courseID, slot) +
		weightHallUtilization*g.hallUtilizationScore(schedule, hallID) +
		weightProfessorGap*g.professorGapScore(schedule, professorID, slot)
}

// distributionScore rewards spreading a course's sections over distinct
// days. When the candidate lands on a day the course already uses, the
// spread is blended with how far apart the same-day sections would sit.
func (g *Generator) distributionScore(schedule []Section, courseID string, slot TimeSlot) float64 {
	counts := make([]int, len(g.cfg.SchoolDays))
	sameDay := false
	for i, day := range g.cfg.SchoolDays {
		for _, s := range schedule {
			if s.CourseID == courseID && s.Slot.Day == day {
				counts[i]++
			}
		}
		if day == slot.Day {
			counts[i]++
			for _, s := range schedule {
				if s.CourseID == courseID && s.Slot.Day == day {
					sameDay = true
				}
			}
		}
	}
	spread := normalizedSpread(counts)
	if !sameDay {
		return spread
	}
	gapScore := g.minGapScore(schedule, courseID, slot)
	return (spread + gapScore) / 2
}

// levelBalanceScore keeps each academic level's sections spread over days
// and over parts of the day. Courses without a level are unconstrained and
// score full marks.
func (g *Generator) levelBalanceScore(schedule []Section, courseID string, slot TimeSlot) float64 {
	level, ok := g.idx.level(courseID)
	if !ok {
		return 1.0
	}
	dayCounts := make([]int, len(g.cfg.SchoolDays))
	bucketCounts := make([]int, 3)
	tally := func(s TimeSlot) {
		for i, day := range g.cfg.SchoolDays {
			if s.Day == day {
				dayCounts[i]++
			}
		}
		bucketCounts[timeOfDayBucket(s.Start)]++
	}
	for _, s := range schedule {
		if l, has := g.idx.level(s.CourseID); has && l == level {
			tally(s.Slot)
		}
	}
	tally(slot)
	return levelDayWeight*normalizedSpread(dayCounts) + levelBucketWeight*normalizedSpread(bucketCounts)
}

// timePreferenceScore rates how close the slot sits to the course's tagged
// part of the operating day, in thirds of the day's window. Untagged
// courses are neutral.
func (g *Generator) timePreferenceScore(courseID string, slot TimeSlot) float64 {
	part, ok := g.cfg.CoursePreferredTimes[courseID]
	if !ok {
		return neutralScore
	}
	hours := g.cfg.DayHours[slot.Day]
	span := hours.Close - hours.Open
	if span <= 0 {
		return neutralScore
	}
	third := span / 3
	slotIdx := (slot.Start - hours.Open) / max(third, 1)
	if slotIdx > 2 {
		slotIdx = 2
	}
	distance := slotIdx - dayPartIndex(part)
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 1.0
	case 1:
		return 0.6
	default:
		return 0.3
	}
}

func (g *Generator) professorPreferenceScore(professorID, courseID string, slot TimeSlot) float64 {
	prefersCourse := g.prefersCourse(professorID, courseID)
	prefersTime := g.slotInPreferredWindow(professorID, slot)
	switch {
	case prefersCourse && prefersTime:
		return 1.0
	case prefersCourse || prefersTime:
		return 0.8
	default:
		return neutralScore
	}
}

// hallUtilizationScore favors halls at or under the mean occupancy; above
// the mean the score decays linearly and bottoms out at twice the mean.
func (g *Generator) hallUtilizationScore(schedule []Section, hallID string) float64 {
	if len(schedule) == 0 {
		return 1.0
	}
	usage := hallUsage(schedule)
	mean := float64(len(schedule)) / float64(len(g.cfg.Halls))
	used := float64(usage[hallID])
	if used <= mean || mean == 0 {
		return 1.0
	}
	score := 1.0 - (used-mean)/mean
	if score < 0 {
		return 0
	}
	return score
}

// professorGapScore scores the idle time the candidate slot would leave
// against the professor's nearest same-day section. No same-day neighbor
// means no idle time is introduced.
func (g *Generator) professorGapScore(schedule []Section, professorID string, slot TimeSlot) float64 {
	minGap := -1
	for _, s := range schedule {
		if s.ProfessorID != professorID {
			continue
		}
		gap, ok := s.Slot.Gap(slot)
		if !ok {
			continue
		}
		if gap < 0 {
			gap = -gap
		}
		if minGap < 0 || gap < minGap {
			minGap = gap
		}
	}
	if minGap < 0 {
		return 1.0
	}
	if minGap > maxUsefulGapMinutes {
		minGap = maxUsefulGapMinutes
	}
	return 1.0 - float64(minGap)/float64(maxUsefulGapMinutes)
}

func (g *Generator) minGapScore(schedule []Section, courseID string, slot TimeSlot) float64 {
	minGap := -1
	for _, s := range schedule {
		if s.CourseID != courseID || s.Slot.Day != slot.Day {
			continue
		}
		gap, ok := s.Slot.Gap(slot)
		if !ok {
			continue
		}
		if gap < 0 {
			gap = -gap
		}
		if minGap < 0 || gap < minGap {
			minGap = gap
		}
	}
	if minGap < 0 {
		return 1.0
	}
	if minGap > maxUsefulGapMinutes {
		minGap = maxUsefulGapMinutes
	}
	return float64(minGap) / float64(maxUsefulGapMinutes)
}

// normalizedSpread maps a histogram to [0, 1]: 1 when counts are perfectly
// even, 0 when everything piles into one bin. The variance of the histogram
// is compared against the worst case of the same total in a single bin.
func normalizedSpread(counts []int) float64 {
	n := len(counts)
	if n <= 1 {
		return 1.0
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 1.0
	}
	mean := float64(total) / float64(n)
	variance := 0.0
	for _, c := range counts {
		d := float64(c) - mean
		variance += d * d
	}
	variance /= float64(n)
	peak := float64(total) - mean
	maxVariance := (peak*peak + float64(n-1)*mean*mean) / float64(n)
	if maxVariance == 0 {
		return 1.0
	}
	return 1.0 - variance/maxVariance
}

func timeOfDayBucket(startMinute int) int {
	switch {
	case startMinute < morningEndMinute:
		return 0
	case startMinute < afternoonEndMinute:
		return 1
	default:
		return 2
	}
}

func dayPartIndex(part DayPart) int {
	switch part {
	case DayPartEarly:
		return 0
	case DayPartMiddle:
		return 1
	default:
		return 2
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
