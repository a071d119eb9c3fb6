package engine

func professorAvailable(schedule []Section, professorID string, slot TimeSlot) bool {
	for _, s := range schedule {
		if s.ProfessorID == professorID && s.Slot.Overlaps(slot) {
			return false
		}
	}
	return true
}

func hallAvailable(schedule []Section, hallID string, slot TimeSlot) bool {
	for _, s := range schedule {
		if s.HallID == hallID && s.Slot.Overlaps(slot) {
			return false
		}
	}
	return true
}
