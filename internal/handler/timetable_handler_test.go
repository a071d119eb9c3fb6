package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/scheduler-api/internal/dto"
	appErrors "github.com/campushq/scheduler-api/pkg/errors"
)

type timetableServiceMock struct {
	captured    dto.GenerateTimetableRequest
	generateErr error
	getErr      error
	deleteErr   error
	exportErr   error
}

func (m *timetableServiceMock) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	m.captured = req
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return &dto.GenerateTimetableResponse{ProposalID: "proposal-1"}, nil
}

func (m *timetableServiceMock) GetProposal(ctx context.Context, id string) (*dto.GenerateTimetableResponse, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return &dto.GenerateTimetableResponse{ProposalID: id}, nil
}

func (m *timetableServiceMock) DeleteProposal(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *timetableServiceMock) ExportProposal(ctx context.Context, id, format string) ([]byte, string, error) {
	if m.exportErr != nil {
		return nil, "", m.exportErr
	}
	return []byte("day,start_time\n"), "text/csv", nil
}

func validGeneratePayload() []byte {
	payload := map[string]any{
		"halls":       []string{"H1"},
		"school_days": []string{"Monday"},
		"professors":  []string{"p-alice"},
		"courses":     []string{"calculus"},
		"days_with_hours": map[string]any{
			"Monday": map[string]string{"start": "08:00", "end": "17:00"},
		},
		"course_sections_count": map[string]int{"calculus": 1},
	}
	out, _ := json.Marshal(payload)
	return out
}

func newTestContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	return c, w
}

func TestGenerateSuccess(t *testing.T) {
	mockSvc := &timetableServiceMock{}
	h := &TimetableHandler{service: mockSvc, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodPost, "/timetable/generate", validGeneratePayload())
	h.Generate(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"H1"}, mockSvc.captured.Halls)
	assert.Equal(t, []string{"calculus"}, mockSvc.captured.Courses)
	assert.Contains(t, w.Body.String(), "proposal-1")
}

func TestGenerateMalformedJSON(t *testing.T) {
	h := &TimetableHandler{service: &timetableServiceMock{}, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodPost, "/timetable/generate", []byte(`{"halls":`))
	h.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateTooManyCourses(t *testing.T) {
	h := &TimetableHandler{service: &timetableServiceMock{}, maxCourses: 1}

	payload := map[string]any{
		"halls":       []string{"H1"},
		"school_days": []string{"Monday"},
		"professors":  []string{"p-alice"},
		"courses":     []string{"calculus", "algebra"},
		"days_with_hours": map[string]any{
			"Monday": map[string]string{"start": "08:00", "end": "17:00"},
		},
		"course_sections_count": map[string]int{"calculus": 1, "algebra": 1},
	}
	body, _ := json.Marshal(payload)

	c, w := newTestContext(t, http.MethodPost, "/timetable/generate", body)
	h.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "supported limit")
}

func TestGenerateServiceError(t *testing.T) {
	mockSvc := &timetableServiceMock{generateErr: appErrors.Clone(appErrors.ErrValidation, "bad input")}
	h := &TimetableHandler{service: mockSvc, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodPost, "/timetable/generate", validGeneratePayload())
	h.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad input")
}

func TestGetProposalSuccess(t *testing.T) {
	h := &TimetableHandler{service: &timetableServiceMock{}, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodGet, "/timetable/proposals/p-123", nil)
	c.Params = gin.Params{{Key: "id", Value: "p-123"}}
	h.GetProposal(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p-123")
}

func TestGetProposalNotFound(t *testing.T) {
	mockSvc := &timetableServiceMock{getErr: appErrors.ErrNotFound}
	h := &TimetableHandler{service: mockSvc, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodGet, "/timetable/proposals/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	h.GetProposal(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProposalSuccess(t *testing.T) {
	h := &TimetableHandler{service: &timetableServiceMock{}, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodDelete, "/timetable/proposals/p-123", nil)
	c.Params = gin.Params{{Key: "id", Value: "p-123"}}
	h.DeleteProposal(c)
	// gin defers WriteHeader for body-less responses; flush it so the
	// recorder sees the status code outside a running engine.
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestExportProposalDefaultsToCSV(t *testing.T) {
	h := &TimetableHandler{service: &timetableServiceMock{}, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodGet, "/timetable/proposals/p-123/export", nil)
	c.Params = gin.Params{{Key: "id", Value: "p-123"}}
	h.ExportProposal(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "timetable-p-123.csv")
}

func TestExportProposalUnsupported(t *testing.T) {
	mockSvc := &timetableServiceMock{exportErr: appErrors.Clone(appErrors.ErrUnsupported, "unsupported export format")}
	h := &TimetableHandler{service: mockSvc, maxCourses: defaultMaxCourses}

	c, w := newTestContext(t, http.MethodGet, "/timetable/proposals/p-123/export?format=xlsx", nil)
	c.Params = gin.Params{{Key: "id", Value: "p-123"}}
	h.ExportProposal(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
