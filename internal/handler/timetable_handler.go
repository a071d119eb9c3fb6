package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/scheduler-api/internal/dto"
	"github.com/campushq/scheduler-api/internal/service"
	appErrors "github.com/campushq/scheduler-api/pkg/errors"
	"github.com/campushq/scheduler-api/pkg/response"
)

const defaultMaxCourses = 200

type timetableGenerator interface {
	Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error)
	GetProposal(ctx context.Context, id string) (*dto.GenerateTimetableResponse, error)
	DeleteProposal(ctx context.Context, id string) error
	ExportProposal(ctx context.Context, id, format string) ([]byte, string, error)
}

// TimetableHandler exposes timetable generation endpoints.
type TimetableHandler struct {
	service    timetableGenerator
	maxCourses int
}

// NewTimetableHandler constructs the handler. maxCourses guards request
// size; non-positive values fall back to the default.
func NewTimetableHandler(svc *service.TimetableService, maxCourses int) *TimetableHandler {
	if maxCourses <= 0 {
		maxCourses = defaultMaxCourses
	}
	return &TimetableHandler{service: svc, maxCourses: maxCourses}
}

// Generate godoc
// @Summary Generate a timetable proposal
// @Description Builds a timetable from halls, professors, courses and constraints. The proposal is held until it expires or is deleted.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetableRequest true "Generate timetable payload"
// @Success 201 {object} response.Envelope
// @Router /timetable/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	if len(req.Courses) > h.maxCourses {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("courses exceeds supported limit of %d", h.maxCourses)))
		return
	}
	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// GetProposal godoc
// @Summary Fetch a stored timetable proposal
// @Tags Timetable
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} response.Envelope
// @Router /timetable/proposals/{id} [get]
func (h *TimetableHandler) GetProposal(c *gin.Context) {
	result, err := h.service.GetProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// DeleteProposal godoc
// @Summary Discard a stored timetable proposal
// @Tags Timetable
// @Param id path string true "Proposal ID"
// @Success 204
// @Router /timetable/proposals/{id} [delete]
func (h *TimetableHandler) DeleteProposal(c *gin.Context) {
	if err := h.service.DeleteProposal(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ExportProposal godoc
// @Summary Export a stored timetable proposal
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Proposal ID"
// @Param format query string true "Export format (csv or pdf)"
// @Success 200
// @Router /timetable/proposals/{id}/export [get]
func (h *TimetableHandler) ExportProposal(c *gin.Context) {
	id := c.Param("id")
	format := c.DefaultQuery("format", service.FormatCSV)
	out, contentType, err := h.service.ExportProposal(c.Request.Context(), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("timetable-%s.%s", id, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, out)
}
