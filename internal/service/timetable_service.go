package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushq/scheduler-api/internal/dto"
	"github.com/campushq/scheduler-api/internal/engine"
	appErrors "github.com/campushq/scheduler-api/pkg/errors"
	"github.com/campushq/scheduler-api/pkg/export"
)

// Export formats accepted by ExportProposal.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// TimetableConfig governs generator behaviour.
type TimetableConfig struct {
	ConsolidateDays       bool
	MaxConsolidationMoves int
}

// TimetableService turns generation requests into stored timetable proposals.
type TimetableService struct {
	store     ProposalStore
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       TimetableConfig
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewTimetableService wires scheduler dependencies.
func NewTimetableService(store ProposalStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg TimetableConfig) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = NewMemoryProposalStore(30 * time.Minute)
	}
	return &TimetableService{
		store:     store,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Generate validates the request, runs the engine and stores the proposal.
func (s *TimetableService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable generation payload")
	}

	cfg, err := buildEngineConfig(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	start := time.Now()
	gen, err := engine.New(cfg, engine.Options{
		ConsolidateProfessorDays: s.cfg.ConsolidateDays,
		MaxConsolidationMoves:    s.cfg.MaxConsolidationMoves,
	})
	if err != nil {
		s.metrics.ObserveGenerationRun(0, 0, time.Since(start), err)
		var cfgErr *engine.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, cfgErr.Error())
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "timetable generator failed to initialise")
	}

	result := gen.Generate()
	elapsed := time.Since(start)
	s.metrics.ObserveGenerationRun(result.Stats.AssignedSections, len(result.Shortfalls), elapsed, nil)

	proposal := TimetableProposal{
		ProposalID:  uuid.NewString(),
		Sections:    sectionsToDTO(result.Sections),
		Shortfalls:  shortfallsToDTO(result.Shortfalls),
		Stats:       statsToDTO(result.Stats),
		RequestedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, proposal); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store timetable proposal")
	}

	s.logger.Info("timetable_generated",
		zap.String("proposal_id", proposal.ProposalID),
		zap.Int("requested_sections", proposal.Stats.RequestedSections),
		zap.Int("assigned_sections", proposal.Stats.AssignedSections),
		zap.Int("shortfalls", len(proposal.Shortfalls)),
		zap.Int("consolidation_moves", proposal.Stats.ConsolidationMoves),
		zap.Duration("elapsed", elapsed),
	)

	return &dto.GenerateTimetableResponse{
		ProposalID: proposal.ProposalID,
		Sections:   proposal.Sections,
		Shortfalls: proposal.Shortfalls,
		Stats:      proposal.Stats,
	}, nil
}

// GetProposal returns a stored proposal.
func (s *TimetableService) GetProposal(ctx context.Context, id string) (*dto.GenerateTimetableResponse, error) {
	proposal, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load timetable proposal")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "proposal not found or expired")
	}
	return &dto.GenerateTimetableResponse{
		ProposalID: proposal.ProposalID,
		Sections:   proposal.Sections,
		Shortfalls: proposal.Shortfalls,
		Stats:      proposal.Stats,
	}, nil
}

// DeleteProposal discards a stored proposal.
func (s *TimetableService) DeleteProposal(ctx context.Context, id string) error {
	_, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load timetable proposal")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "proposal not found or expired")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "delete timetable proposal")
	}
	return nil
}

// ExportProposal renders a stored proposal as CSV or PDF bytes.
func (s *TimetableService) ExportProposal(ctx context.Context, id, format string) ([]byte, string, error) {
	proposal, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load timetable proposal")
	}
	if !ok {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "proposal not found or expired")
	}

	timetable := export.Timetable{
		Title:   fmt.Sprintf("Timetable proposal %s", proposal.ProposalID),
		Entries: make([]export.Entry, 0, len(proposal.Sections)),
	}
	for _, section := range proposal.Sections {
		timetable.Entries = append(timetable.Entries, export.Entry{
			Day:           section.Day,
			StartTime:     section.StartTime,
			EndTime:       section.EndTime,
			CourseID:      section.CourseID,
			SectionNumber: section.SectionNumber,
			ProfessorID:   section.ProfessorID,
			HallID:        section.HallID,
		})
	}

	switch format {
	case FormatCSV:
		out, err := s.csv.Render(timetable)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv export")
		}
		return out, "text/csv", nil
	case FormatPDF:
		out, err := s.pdf.Render(timetable)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf export")
		}
		return out, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrUnsupported, fmt.Sprintf("unsupported export format %q", format))
	}
}

func buildEngineConfig(req dto.GenerateTimetableRequest) (*engine.Config, error) {
	cfg := &engine.Config{
		Halls:       req.Halls,
		SchoolDays:  req.SchoolDays,
		Departments: req.Departments,
		Professors:  req.Professors,
		Courses:     req.Courses,

		LevelCourses:              req.LevelCourses,
		DepartmentCourses:         req.DepartmentCourses,
		ProfessorSpecialties:      req.ProfessorSpecialties,
		ProfessorPreferredCourses: req.ProfessorPreferredCourses,
		LectureDurations:          req.CourseLectureDurations,
		SectionCounts:             req.CourseSectionsCount,
	}

	if len(req.ProfessorPreferredTimes) > 0 {
		cfg.ProfessorPreferredTimes = make(map[string][]engine.TimeSlot, len(req.ProfessorPreferredTimes))
		for prof, windows := range req.ProfessorPreferredTimes {
			for _, window := range windows {
				slot, err := engine.NewTimeSlot(window.Day, window.StartTime, window.EndTime)
				if err != nil {
					return nil, fmt.Errorf("professor_preferred_times[%s]: %w", prof, err)
				}
				cfg.ProfessorPreferredTimes[prof] = append(cfg.ProfessorPreferredTimes[prof], slot)
			}
		}
	}

	if len(req.CoursePreferredTimes) > 0 {
		cfg.CoursePreferredTimes = make(map[string]engine.DayPart, len(req.CoursePreferredTimes))
		for course, raw := range req.CoursePreferredTimes {
			part, err := engine.ParseDayPart(raw)
			if err != nil {
				return nil, fmt.Errorf("course_preferred_times[%s]: %w", course, err)
			}
			cfg.CoursePreferredTimes[course] = part
		}
	}

	for i, window := range req.RestrictedTimes {
		slot, err := engine.NewTimeSlot(window.Day, window.StartTime, window.EndTime)
		if err != nil {
			return nil, fmt.Errorf("restricted_times[%d]: %w", i, err)
		}
		cfg.RestrictedTimes = append(cfg.RestrictedTimes, slot)
	}

	cfg.DayHours = make(map[string]engine.DayHours, len(req.DaysWithHours))
	for day, hours := range req.DaysWithHours {
		open, err := engine.ParseClock(hours.Start)
		if err != nil {
			return nil, fmt.Errorf("days_with_hours[%s].start: %w", day, err)
		}
		closeAt, err := engine.ParseClock(hours.End)
		if err != nil {
			return nil, fmt.Errorf("days_with_hours[%s].end: %w", day, err)
		}
		cfg.DayHours[day] = engine.DayHours{Open: open, Close: closeAt}
	}

	return cfg, nil
}

func sectionsToDTO(sections []engine.Section) []dto.TimetableSectionResponse {
	out := make([]dto.TimetableSectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, dto.TimetableSectionResponse{
			CourseID:      s.CourseID,
			SectionNumber: s.Number,
			ProfessorID:   s.ProfessorID,
			HallID:        s.HallID,
			Day:           s.Slot.Day,
			StartTime:     s.Slot.StartClock(),
			EndTime:       s.Slot.EndClock(),
		})
	}
	return out
}

func shortfallsToDTO(shortfalls []engine.Shortfall) []dto.TimetableShortfall {
	out := make([]dto.TimetableShortfall, 0, len(shortfalls))
	for _, s := range shortfalls {
		out = append(out, dto.TimetableShortfall{
			CourseID:      s.CourseID,
			SectionNumber: s.SectionNumber,
			Reason:        s.Reason,
		})
	}
	return out
}

func statsToDTO(stats engine.Stats) dto.TimetableStats {
	return dto.TimetableStats{
		RequestedSections:  stats.RequestedSections,
		AssignedSections:   stats.AssignedSections,
		CoursesPlanned:     stats.CoursesPlanned,
		ConsolidationMoves: stats.ConsolidationMoves,
	}
}
