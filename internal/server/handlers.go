package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/iulcompare/iulcompare/internal/domain"
	"go.uber.org/zap"
)

// maxBodyBytes bounds a comparison request; a 100-year illustration is well under it.
const maxBodyBytes = 1 << 20

// ComparisonRequest represents the request body for running a comparison.
// Missing assumptions fall back to the settings panel defaults.
type ComparisonRequest struct {
	ClientName   string                `json:"clientName"`
	Assumptions  *domain.AssumptionSet `json:"assumptions,omitempty"`
	Illustration *domain.Illustration  `json:"illustration"`
}

// ChartResponse is the chart-only view of a comparison.
type ChartResponse struct {
	ID     string              `json:"id"`
	Points []domain.ChartPoint `json:"points"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) defaultAssumptions(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, domain.DefaultAssumptions())
}

// createComparison handles POST /api/v1/comparisons
func (s *Server) createComparison(w http.ResponseWriter, r *http.Request) {
	report, ok := s.runComparison(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

// createChart handles POST /api/v1/comparisons/chart
func (s *Server) createChart(w http.ResponseWriter, r *http.Request) {
	report, ok := s.runComparison(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, ChartResponse{ID: report.ID, Points: report.Chart})
}

// runComparison decodes the request and builds the report, writing the error
// response itself when it fails.
func (s *Server) runComparison(w http.ResponseWriter, r *http.Request) (*domain.ComparisonReport, bool) {
	var req ComparisonRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.metrics.IncrementOutcome(OutcomeBadRequest)
		s.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	assumptions := domain.DefaultAssumptions()
	if req.Assumptions != nil {
		assumptions = *req.Assumptions
	}
	clientName := req.ClientName
	if clientName == "" && req.Illustration != nil {
		clientName = req.Illustration.ClientName
	}

	start := time.Now()
	report, err := s.engine.BuildReport(clientName, assumptions, req.Illustration)
	s.metrics.ObserveComputeLatency(time.Since(start))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAssumption):
			s.metrics.IncrementOutcome(OutcomeInvalid)
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrIllustrationNotAnalyzed):
			s.metrics.IncrementOutcome(OutcomeNotAnalyzed)
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.metrics.IncrementOutcome(OutcomeError)
			s.logger.Error("Comparison failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, "comparison failed")
		}
		return nil, false
	}

	s.metrics.IncrementOutcome(OutcomeSuccess)
	s.logger.Debug("Comparison built",
		zap.String("reportID", report.ID),
		zap.String("client", clientName),
		zap.String("leader", string(report.Recommendation.Vehicle)),
	)
	return report, true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: true, Message: message, Code: status})
}
