package engine

import "fmt"

// Section is a committed assignment of one course section to a professor,
// hall and time slot.
type Section struct {
	CourseID    string
	Number      int
	ProfessorID string
	HallID      string
	Slot        TimeSlot
}

func (s Section) String() string {
	return fmt.Sprintf("%s#%d prof=%s hall=%s %s", s.CourseID, s.Number, s.ProfessorID, s.HallID, s.Slot)
}
