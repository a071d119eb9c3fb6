package engine

const (
	bonusPreferredCourse    = 3.0
	bonusSpecialtyDept      = 2.0
	bonusPreferredWindow    = 10.0
	loadConsolidationWeight = 0.5
)

// pickProfessor chooses the best available professor for a course at a slot.
// The eligible pool derived from specialties and preferred courses is tried
// first; when nobody in it can take the slot the full roster serves as a
// fallback so a section is not lost to a thin roster. Ties keep the first
// candidate seen, which follows the Config's declared order.
func (g *Generator) pickProfessor(schedule []Section, courseID string, slot TimeSlot) (string, bool) {
	pool := g.idx.eligibleProfessors(courseID)
	if prof, ok := g.bestProfessorFrom(pool, schedule, courseID, slot); ok {
		return prof, true
	}
	return g.bestProfessorFrom(g.cfg.Professors, schedule, courseID, slot)
}

func (g *Generator) bestProfessorFrom(pool []string, schedule []Section, courseID string, slot TimeSlot) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, prof := range pool {
		if !professorAvailable(schedule, prof, slot) {
			continue
		}
		score := g.professorScore(schedule, prof, courseID, slot)
		if best == "" || score > bestScore {
			best = prof
			bestScore = score
		}
	}
	return best, best != ""
}

func (g *Generator) professorScore(schedule []Section, professorID, courseID string, slot TimeSlot) float64 {
	score := 0.0
	if g.prefersCourse(professorID, courseID) {
		score += bonusPreferredCourse
	}
	if g.hasSpecialty(professorID, courseID) {
		score += bonusSpecialtyDept
	}
	if g.slotInPreferredWindow(professorID, slot) {
		score += bonusPreferredWindow
	}
	sameDay := 0
	for _, s := range schedule {
		if s.ProfessorID == professorID && s.Slot.Day == slot.Day {
			sameDay++
		}
	}
	score += loadConsolidationWeight * float64(sameDay)
	return score
}

func (g *Generator) prefersCourse(professorID, courseID string) bool {
	for _, c := range g.cfg.ProfessorPreferredCourses[professorID] {
		if c == courseID {
			return true
		}
	}
	return false
}

func (g *Generator) hasSpecialty(professorID, courseID string) bool {
	dept, ok := g.idx.department(courseID)
	if !ok {
		return false
	}
	for _, d := range g.cfg.ProfessorSpecialties[professorID] {
		if d == dept {
			return true
		}
	}
	return false
}

func (g *Generator) slotInPreferredWindow(professorID string, slot TimeSlot) bool {
	for _, window := range g.cfg.ProfessorPreferredTimes[professorID] {
		if slot.Within(window) {
			return true
		}
	}
	return false
}

// pickHall returns the least-used available hall, declared order breaking
// ties, so occupancy stays even across the run.
func (g *Generator) pickHall(schedule []Section, slot TimeSlot) (string, bool) {
	usage := hallUsage(schedule)
	best := ""
	bestUsed := 0
	for _, hall := range g.cfg.Halls {
		if !hallAvailable(schedule, hall, slot) {
			continue
		}
		used := usage[hall]
		if best == "" || used < bestUsed {
			best = hall
			bestUsed = used
		}
	}
	return best, best != ""
}

func hallUsage(schedule []Section) map[string]int {
	usage := make(map[string]int)
	for _, s := range schedule {
		usage[s.HallID]++
	}
	return usage
}
