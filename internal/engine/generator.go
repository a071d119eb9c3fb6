package engine

import "sort"

const (
	priorityNoEligible = 1000.0
	priorityBase       = 100.0
)

// Options tunes optional generator behavior.
type Options struct {
	// ConsolidateProfessorDays enables the post-pass that moves isolated
	// single-section days onto days the professor already teaches.
	ConsolidateProfessorDays bool
	// MaxConsolidationMoves caps the post-pass; zero means one move per
	// scheduled section at most.
	MaxConsolidationMoves int
}

// Shortfall records a section that could not be placed.
type Shortfall struct {
	CourseID      string
	SectionNumber int
	Reason        string
}

// Stats summarizes a generation run.
type Stats struct {
	RequestedSections  int
	AssignedSections   int
	CoursesPlanned     int
	ConsolidationMoves int
}

// Result is the outcome of one generation run.
type Result struct {
	Sections   []Section
	Shortfalls []Shortfall
	Stats      Stats
}

// Generator builds a timetable for one immutable Config.
type Generator struct {
	cfg  *Config
	idx  *indexes
	opts Options
}

// New validates the config, derives its indexes and returns a generator
// ready to run. A *ConfigError identifies bad input.
func New(cfg *Config, opts Options) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	idx, err := buildIndexes(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, idx: idx, opts: opts}, nil
}

// Generate runs the constructive pass: courses in priority order, and for
// each required section the best-scoring feasible (professor, hall, slot)
// triple still available. Sections that cannot be placed become shortfalls
// rather than failures.
func (g *Generator) Generate() Result {
	courses := g.prioritizedCourses()

	var schedule []Section
	var shortfalls []Shortfall
	requested := 0

	for _, courseID := range courses {
		need := g.cfg.requiredSections(courseID)
		requested += need
		pool := candidateSlots(g.cfg, courseID)
		committed := 0
		missed := 0
		for section := 0; section < need; section++ {
			bestIdx := -1
			bestScore := 0.0
			bestProf := ""
			bestHall := ""
			for i, slot := range pool {
				prof, ok := g.pickProfessor(schedule, courseID, slot)
				if !ok {
					continue
				}
				hall, ok := g.pickHall(schedule, slot)
				if !ok {
					continue
				}
				score := g.compositeScore(schedule, courseID, prof, hall, slot)
				if bestIdx < 0 || score > bestScore {
					bestIdx = i
					bestScore = score
					bestProf = prof
					bestHall = hall
				}
			}
			if bestIdx < 0 {
				missed++
				shortfalls = append(shortfalls, Shortfall{
					CourseID:      courseID,
					SectionNumber: committed + missed,
					Reason:        "no feasible slot, professor and hall combination",
				})
				continue
			}
			schedule = append(schedule, Section{
				CourseID:    courseID,
				Number:      committed + 1,
				ProfessorID: bestProf,
				HallID:      bestHall,
				Slot:        pool[bestIdx],
			})
			committed++
			pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
		}
	}

	moves := 0
	if g.opts.ConsolidateProfessorDays {
		moves = g.consolidateProfessorDays(schedule)
	}

	return Result{
		Sections:   schedule,
		Shortfalls: shortfalls,
		Stats: Stats{
			RequestedSections:  requested,
			AssignedSections:   len(schedule),
			CoursesPlanned:     len(courses),
			ConsolidationMoves: moves,
		},
	}
}

// prioritizedCourses orders courses hardest-first: courses with no eligible
// professors get the highest urgency, then demand divided by roster depth.
func (g *Generator) prioritizedCourses() []string {
	courses := make([]string, len(g.cfg.Courses))
	copy(courses, g.cfg.Courses)
	priority := make(map[string]float64, len(courses))
	for _, courseID := range courses {
		sections := float64(g.cfg.requiredSections(courseID))
		eligible := len(g.idx.eligibleProfessors(courseID))
		if eligible == 0 {
			priority[courseID] = priorityNoEligible * sections
		} else {
			priority[courseID] = priorityBase * sections / float64(eligible)
		}
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return priority[courses[i]] > priority[courses[j]]
	})
	return courses
}
