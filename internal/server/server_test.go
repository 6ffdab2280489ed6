package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iulcompare/iulcompare/internal/calculation"
	"github.com/iulcompare/iulcompare/internal/config"
	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() config.ServerConfig {
	return config.ServerConfig{
		Addr:             "127.0.0.1:0",
		LogLevel:         "debug",
		LogFormat:        "json",
		MetricsNamespace: "iulcompare",
		AllowedOrigins:   []string{"http://localhost:3000"},
	}
}

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return New(testConfig(), calculation.NewComparisonEngine(), zap.New(core)), logs
}

func requestBody(t *testing.T, req ComparisonRequest) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func analyzedRequest() ComparisonRequest {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	a := cfg.Assumptions
	return ComparisonRequest{ClientName: "Robert Johnson", Assumptions: &a, Illustration: &cfg.Illustration}
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDefaultAssumptions(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/v1/assumptions/default", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var a domain.AssumptionSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, 47, a.Age)
	assert.True(t, a.ReturnRate.Equal(decimal.RequireFromString("0.07")))
	assert.NoError(t, a.Validate())
}

func TestCreateComparison(t *testing.T) {
	s, logs := newTestServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", requestBody(t, analyzedRequest())))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report domain.ComparisonReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "Robert Johnson", report.ClientName)
	assert.Len(t, report.Rows, len(calculation.Metrics))
	assert.Len(t, report.Result.IRA.Balances, 18+calculation.RetirementYears)
	assert.Len(t, report.Chart, 18+calculation.RetirementYears)
	assert.Len(t, report.Result.IUL.Balances, 30)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Comparisons.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1, logs.FilterMessage("HTTP Request").Len())
}

func TestCreateComparison_DefaultsAssumptionsAndClientName(t *testing.T) {
	s, _ := newTestServer(t)
	req := analyzedRequest()
	req.ClientName = ""
	req.Assumptions = nil

	rec := serve(s, httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", requestBody(t, req)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report domain.ComparisonReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Robert Johnson", report.ClientName)
	assert.Equal(t, 47, report.Assumptions.Age)
}

func TestCreateComparison_Errors(t *testing.T) {
	invalid := analyzedRequest()
	bad := domain.DefaultAssumptions()
	bad.Age = 20
	invalid.Assumptions = &bad

	pending := analyzedRequest()
	pending.Illustration.Status = domain.StatusPending

	tests := []struct {
		name    string
		body    string
		status  int
		outcome string
		message string
	}{
		{name: "malformed json", body: `{"clientName":`, status: http.StatusBadRequest, outcome: OutcomeBadRequest, message: "Invalid request body"},
		{name: "unknown field", body: `{"client":"x"}`, status: http.StatusBadRequest, outcome: OutcomeBadRequest, message: "Invalid request body"},
		{name: "invalid assumption", body: mustJSON(t, invalid), status: http.StatusUnprocessableEntity, outcome: OutcomeInvalid, message: "age must be at least 25"},
		{name: "pending illustration", body: mustJSON(t, pending), status: http.StatusUnprocessableEntity, outcome: OutcomeNotAnalyzed, message: "has not been analyzed"},
		{name: "missing illustration", body: `{"clientName":"x"}`, status: http.StatusUnprocessableEntity, outcome: OutcomeNotAnalyzed, message: "has not been analyzed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t)
			rec := serve(s, httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", strings.NewReader(tt.body)))
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Error)
			assert.Equal(t, tt.status, resp.Code)
			assert.Contains(t, resp.Message, tt.message)
			assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Comparisons.WithLabelValues(tt.outcome)))
		})
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestCreateChart(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodPost, "/api/v1/comparisons/chart", requestBody(t, analyzedRequest())))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var chart ChartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	require.NotEmpty(t, chart.Points)
	first := chart.Points[0]
	assert.Equal(t, 47, first.Age)
	assert.Equal(t, 1, first.Year)
	assert.False(t, first.IsRetirement)
	assert.True(t, chart.Points[18].IsRetirement)
	assert.True(t, first.Balances[domain.VehicleIUL].Equal(decimal.NewFromInt(1000)))
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	serve(s, httptest.NewRequest(http.MethodPost, "/api/v1/comparisons", requestBody(t, analyzedRequest())))

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `iulcompare_comparisons_total{outcome="success"} 1`)
	assert.Contains(t, body, "iulcompare_comparison_duration_seconds_count 1")
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/comparisons", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(s, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/comparisons", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = serve(s, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDPropagatesToLogs(t *testing.T) {
	s, logs := newTestServer(t)
	serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["requestID"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
