package engine

const (
	defaultLectureMinutes = 60
	slotBreakMinutes      = 15
)

// candidateSlots enumerates every slot the course could occupy, walking the
// school days in declared order and stepping by duration plus the break so
// consecutive lectures never share a changeover minute. Slots crossing a
// restricted window are dropped here, before any scoring happens.
func candidateSlots(cfg *Config, courseID string) []TimeSlot {
	duration := cfg.lectureDuration(courseID)
	var slots []TimeSlot
	for _, day := range cfg.SchoolDays {
		hours := cfg.DayHours[day]
		for start := hours.Open; start+duration <= hours.Close; start += duration + slotBreakMinutes {
			slot := TimeSlot{Day: day, Start: start, End: start + duration}
			if overlapsRestricted(cfg, slot) {
				continue
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

func overlapsRestricted(cfg *Config, slot TimeSlot) bool {
	for _, restricted := range cfg.RestrictedTimes {
		if slot.Overlaps(restricted) {
			return true
		}
	}
	return false
}
