package engine

import "sort"

// indexes holds lookups derived once from a Config. They are read-only for
// the rest of the run.
type indexes struct {
	professorCourses map[string][]string
	courseProfessors map[string][]string
	courseDepartment map[string]string
	courseLevel      map[string]string
}

func buildIndexes(cfg *Config) (*indexes, error) {
	idx := &indexes{
		professorCourses: make(map[string][]string, len(cfg.Professors)),
		courseProfessors: make(map[string][]string, len(cfg.Courses)),
		courseDepartment: make(map[string]string, len(cfg.Courses)),
		courseLevel:      make(map[string]string, len(cfg.Courses)),
	}

	for _, dept := range cfg.Departments {
		for _, course := range cfg.DepartmentCourses[dept] {
			if _, claimed := idx.courseDepartment[course]; !claimed {
				idx.courseDepartment[course] = dept
			}
		}
	}

	levels := make([]string, 0, len(cfg.LevelCourses))
	for level := range cfg.LevelCourses {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	for _, level := range levels {
		for _, course := range cfg.LevelCourses[level] {
			if _, claimed := idx.courseLevel[course]; !claimed {
				idx.courseLevel[course] = level
			}
		}
	}

	for _, prof := range cfg.Professors {
		seen := make(map[string]bool)
		var courses []string
		for _, dept := range cfg.ProfessorSpecialties[prof] {
			for _, course := range cfg.DepartmentCourses[dept] {
				if !seen[course] {
					seen[course] = true
					courses = append(courses, course)
				}
			}
		}
		for _, course := range cfg.ProfessorPreferredCourses[prof] {
			if !seen[course] {
				seen[course] = true
				courses = append(courses, course)
			}
		}
		idx.professorCourses[prof] = courses
		for _, course := range courses {
			idx.courseProfessors[course] = append(idx.courseProfessors[course], prof)
		}
	}

	for course, profs := range idx.courseProfessors {
		for _, prof := range profs {
			found := false
			for _, c := range idx.professorCourses[prof] {
				if c == course {
					found = true
					break
				}
			}
			if !found {
				return nil, errIndexInconsistent
			}
		}
	}
	return idx, nil
}

func (idx *indexes) eligibleProfessors(courseID string) []string {
	return idx.courseProfessors[courseID]
}

func (idx *indexes) department(courseID string) (string, bool) {
	d, ok := idx.courseDepartment[courseID]
	return d, ok
}

func (idx *indexes) level(courseID string) (string, bool) {
	l, ok := idx.courseLevel[courseID]
	return l, ok
}
