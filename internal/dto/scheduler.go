package dto

// TimeWindowRequest is a day-bound window expressed in wall-clock strings.
type TimeWindowRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// DayHoursRequest bounds one school day's operating window.
type DayHoursRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// GenerateTimetableRequest instructs the generator to build a timetable proposal.
type GenerateTimetableRequest struct {
	Halls       []string `json:"halls" validate:"required,min=1"`
	SchoolDays  []string `json:"school_days" validate:"required,min=1"`
	Departments []string `json:"departments"`
	Professors  []string `json:"professors" validate:"required,min=1"`
	Courses     []string `json:"courses" validate:"required,min=1"`

	LevelCourses              map[string][]string            `json:"level_courses"`
	DepartmentCourses         map[string][]string            `json:"department_courses"`
	ProfessorSpecialties      map[string][]string            `json:"professor_specialties"`
	ProfessorPreferredCourses map[string][]string            `json:"professor_preferred_courses"`
	ProfessorPreferredTimes   map[string][]TimeWindowRequest `json:"professor_preferred_times" validate:"omitempty,dive,dive"`
	CoursePreferredTimes      map[string]string              `json:"course_preferred_times" validate:"omitempty,dive,oneof=early middle late"`
	RestrictedTimes           []TimeWindowRequest            `json:"restricted_times" validate:"omitempty,dive"`
	DaysWithHours             map[string]DayHoursRequest     `json:"days_with_hours" validate:"required,dive"`
	CourseLectureDurations    map[string]int                 `json:"course_lecture_durations" validate:"omitempty,dive,min=1"`
	CourseSectionsCount       map[string]int                 `json:"course_sections_count" validate:"required,dive,min=1"`
}

// TimetableSectionResponse represents one scheduled lecture.
type TimetableSectionResponse struct {
	CourseID      string `json:"course_id"`
	SectionNumber int    `json:"section_number"`
	ProfessorID   string `json:"professor_id"`
	HallID        string `json:"hall_id"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

// TimetableShortfall reports a section the generator could not place.
type TimetableShortfall struct {
	CourseID      string `json:"course_id"`
	SectionNumber int    `json:"section_number"`
	Reason        string `json:"reason"`
}

// TimetableStats summarises a generation run.
type TimetableStats struct {
	RequestedSections  int `json:"requested_sections"`
	AssignedSections   int `json:"assigned_sections"`
	CoursesPlanned     int `json:"courses_planned"`
	ConsolidationMoves int `json:"consolidation_moves"`
}

// GenerateTimetableResponse returns the built timetable proposal.
type GenerateTimetableResponse struct {
	ProposalID string                     `json:"proposal_id"`
	Sections   []TimetableSectionResponse `json:"sections"`
	Shortfalls []TimetableShortfall       `json:"shortfalls"`
	Stats      TimetableStats             `json:"stats"`
}
