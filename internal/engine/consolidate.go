package engine

// consolidateProfessorDays walks the roster and, for each professor teaching
// a single section on some day, tries to move that section to a day the
// professor already teaches. Moves must keep every hard constraint intact;
// the schedule is rewritten in place and the number of applied moves is
// returned.
func (g *Generator) consolidateProfessorDays(schedule []Section) int {
	maxMoves := g.opts.MaxConsolidationMoves
	if maxMoves <= 0 {
		maxMoves = len(schedule)
	}

	moves := 0
	for _, prof := range g.cfg.Professors {
		if moves >= maxMoves {
			break
		}
		dayCounts := make(map[string]int)
		for _, s := range schedule {
			if s.ProfessorID == prof {
				dayCounts[s.Slot.Day]++
			}
		}
		if len(dayCounts) <= 1 {
			continue
		}
		for i, s := range schedule {
			if moves >= maxMoves {
				break
			}
			if s.ProfessorID != prof || dayCounts[s.Slot.Day] != 1 {
				continue
			}
			if g.relocateSection(schedule, i, dayCounts) {
				moves++
			}
		}
	}
	return moves
}

// relocateSection looks for a replacement slot on a day the professor
// already teaches more than this section's day, walking school days in
// declared order. On success the section's slot is updated along with the
// per-day tallies.
func (g *Generator) relocateSection(schedule []Section, sectionIdx int, dayCounts map[string]int) bool {
	section := schedule[sectionIdx]
	duration := section.Slot.Minutes()
	for _, day := range g.cfg.SchoolDays {
		if day == section.Slot.Day || dayCounts[day] == 0 {
			continue
		}
		hours := g.cfg.DayHours[day]
		for start := hours.Open; start+duration <= hours.Close; start += duration + slotBreakMinutes {
			candidate := TimeSlot{Day: day, Start: start, End: start + duration}
			if overlapsRestricted(g.cfg, candidate) {
				continue
			}
			if !g.moveKeepsConstraints(schedule, sectionIdx, candidate) {
				continue
			}
			dayCounts[section.Slot.Day]--
			dayCounts[day]++
			schedule[sectionIdx].Slot = candidate
			return true
		}
	}
	return false
}

func (g *Generator) moveKeepsConstraints(schedule []Section, sectionIdx int, candidate TimeSlot) bool {
	moving := schedule[sectionIdx]
	for i, s := range schedule {
		if i == sectionIdx {
			continue
		}
		if s.ProfessorID == moving.ProfessorID && s.Slot.Overlaps(candidate) {
			return false
		}
		if s.HallID == moving.HallID && s.Slot.Overlaps(candidate) {
			return false
		}
		if s.CourseID == moving.CourseID && s.Slot == candidate {
			return false
		}
	}
	return true
}
