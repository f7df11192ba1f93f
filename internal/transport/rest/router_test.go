package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	_ "memorycompanion/docs"
	"memorycompanion/internal/config"
	"memorycompanion/internal/model"
	"memorycompanion/internal/service"
)

const testSecret = "router-test-secret"

type stubProfiles struct {
	profiles map[string]*model.Profile
}

func (s *stubProfiles) Upsert(ctx context.Context, p *model.Profile) error { return nil }

func (s *stubProfiles) GetByAuthUserID(ctx context.Context, id string) (*model.Profile, error) {
	return s.profiles[id], nil
}

func (s *stubProfiles) GetByUserKey(ctx context.Context, key int64) (*model.Profile, error) {
	return nil, nil
}

type stubReflections struct {
	rows []model.Reflection
	err  error
}

func (s *stubReflections) Create(ctx context.Context, r *model.Reflection, questionID string) error {
	return nil
}

func (s *stubReflections) ListSince(ctx context.Context, key int64, since time.Time) ([]model.Reflection, error) {
	return s.rows, s.err
}

type testServer struct {
	handler http.Handler
	auth    *service.AuthService
	userID  string
}

func newTestServer(t *testing.T, reflections *stubReflections) *testServer {
	t.Helper()
	userID := uuid.NewString()
	today := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	auth := service.NewAuthService(testSecret, "authenticated")
	profiles := &stubProfiles{profiles: map[string]*model.Profile{userID: {AuthUserID: userID, UserKey: 1}}}
	insightSvc := service.NewInsightService(profiles, nil, reflections, 365, zap.NewNop())
	insightSvc.SetClock(func() time.Time { return today })

	return &testServer{
		handler: NewRouter(&Container{
			AuthService:    auth,
			InsightService: insightSvc,
			CORS:           config.Default().CORS,
			Logger:         zap.NewNop(),
		}),
		auth:   auth,
		userID: userID,
	}
}

func (s *testServer) do(t *testing.T, method, path, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if userID != "" {
		token, err := s.auth.IssueToken(userID, "", time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &stubReflections{})
	rec := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestInsightsUnauthorized(t *testing.T) {
	s := newTestServer(t, &stubReflections{})

	rec := s.do(t, http.MethodGet, "/v1/insights", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "error")

	req := httptest.NewRequest(http.MethodGet, "/v1/insights", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInsightsProfileNotFound(t *testing.T) {
	s := newTestServer(t, &stubReflections{})
	rec := s.do(t, http.MethodGet, "/v1/insights", uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User profile not found", decodeBody(t, rec)["error"])
}

func TestInsightsOK(t *testing.T) {
	s := newTestServer(t, &stubReflections{rows: []model.Reflection{
		{ResponseText: "I am grateful for my family today", WordCount: 7,
			CreatedAt: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC), Category: "gratitude"},
	}})

	rec := s.do(t, http.MethodGet, "/v1/insights", s.userID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp model.InsightsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalReflections)
	assert.Len(t, resp.Insights.StreakCalendar.CalendarData, 365)
	assert.Equal(t, 1, resp.Insights.StreakCalendar.CurrentStreak)
	assert.Equal(t, 1, resp.Insights.CategoryInsights["gratitude"].Count)
}

func TestInsightsEmpty(t *testing.T) {
	s := newTestServer(t, &stubReflections{})
	rec := s.do(t, http.MethodGet, "/v1/insights", s.userID)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["total_reflections"])
}

func TestInsightsUpstreamError(t *testing.T) {
	s := newTestServer(t, &stubReflections{err: errors.New("server selection timeout")})
	rec := s.do(t, http.MethodGet, "/v1/insights", s.userID)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to generate insights", body["error"])
	assert.Equal(t, "server selection timeout", body["message"])
}

func TestInsightsPreflight(t *testing.T) {
	s := newTestServer(t, &stubReflections{})
	rec := s.do(t, http.MethodOptions, "/v1/insights", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, &stubReflections{})
	s.do(t, http.MethodGet, "/v1/insights", s.userID)

	rec := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "memorycompanion_insights_requests_total")
	assert.Contains(t, string(body), "memorycompanion_http_requests_total")
}

func TestSwaggerDoc(t *testing.T) {
	s := newTestServer(t, &stubReflections{})
	rec := s.do(t, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/insights"`)
	assert.Contains(t, rec.Body.String(), "Memory Companion Insights API")
}
