package server_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/config"
	"github.com/studysaathi/studysaathi/internal/inference"
	mock_inference "github.com/studysaathi/studysaathi/internal/mocks/inference"
	mock_server "github.com/studysaathi/studysaathi/internal/mocks/server"
	mock_user "github.com/studysaathi/studysaathi/internal/mocks/user"
	"github.com/studysaathi/studysaathi/internal/server"
)

type fixture struct {
	progress *mock_server.MockProgressTracker
	streaks  *mock_server.MockStreakTracker
	notes    *mock_server.MockNoteService
	plans    *mock_server.MockStudyPlanService
	cache    *mock_server.MockContentCache
	profiles *mock_user.MockRepository
	client   *mock_inference.MockClient
	router   *gin.Engine
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Port: 8080,
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func newFixture(t *testing.T, cfg config.ServerConfig) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := &fixture{
		progress: mock_server.NewMockProgressTracker(ctrl),
		streaks:  mock_server.NewMockStreakTracker(ctrl),
		notes:    mock_server.NewMockNoteService(ctrl),
		plans:    mock_server.NewMockStudyPlanService(ctrl),
		cache:    mock_server.NewMockContentCache(ctrl),
		profiles: mock_user.NewMockRepository(ctrl),
		client:   mock_inference.NewMockClient(ctrl),
	}
	srv := server.New(server.Dependencies{
		Progress: f.progress,
		Streaks:  f.streaks,
		Notes:    f.notes,
		Plans:    f.plans,
		Profiles: f.profiles,
		Client:   f.client,
		Cache:    f.cache,
		Logger:   zap.NewNop(),
	})
	f.router = srv.Router(cfg)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got), rec.Body.String())
	return got
}

func TestRouter_Welcome(t *testing.T) {
	f := newFixture(t, testServerConfig())

	rec := f.do(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Welcome to StudySaathi AI API", "status": "running"}, decodeBody(t, rec))
}

func TestRouter_Health(t *testing.T) {
	f := newFixture(t, testServerConfig())

	rec := f.do(t, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "ok", got["status"])
	assert.NotEmpty(t, got["timestamp"])
}

func TestRouter_NotFound(t *testing.T) {
	f := newFixture(t, testServerConfig())

	rec := f.do(t, http.MethodGet, "/api/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"error": "Route not found", "path": "/api/unknown"}, decodeBody(t, rec))
}

func TestRouter_CORS(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "allowed origin",
			origin:     "http://localhost:5173",
			wantStatus: http.StatusNoContent,
			wantOrigin: "http://localhost:5173",
		},
		{
			name:       "unknown origin",
			origin:     "https://evil.example.com",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testServerConfig())

			rec := f.do(t, http.MethodOptions, "/api/ai/track/time", "", map[string]string{
				"Origin":                        tt.origin,
				"Access-Control-Request-Method": http.MethodPost,
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	f := newFixture(t, cfg)
	f.client.EXPECT().
		GenerateText(gomock.Any(), inference.TextRequest{Prompt: "hello"}).
		Return(inference.TextResponse{Text: "hi"}, nil).
		Times(2)

	body := `{"prompt":"hello"}`
	first := f.do(t, http.MethodPost, "/api/ai/prompt", body, map[string]string{server.UserIDHeader: "user-1"})
	second := f.do(t, http.MethodPost, "/api/ai/prompt", body, map[string]string{server.UserIDHeader: "user-1"})
	other := f.do(t, http.MethodPost, "/api/ai/prompt", body, map[string]string{server.UserIDHeader: "user-2"})

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "rate_limited", decodeBody(t, second)["code"])
	assert.Equal(t, http.StatusOK, other.Code)

	// tracking routes are not limited
	f.streaks.EXPECT().Get(gomock.Any(), "user-1").Return(nil, errors.New("boom"))
	rec := f.do(t, http.MethodGet, "/api/ai/streak/user-1", "", map[string]string{server.UserIDHeader: "user-1"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_StoreFailureHidesDetails(t *testing.T) {
	f := newFixture(t, testServerConfig())
	f.progress.EXPECT().
		TopicProgress(gomock.Any(), "user-1", "").
		Return(nil, storeError())

	rec := f.do(t, http.MethodGet, "/api/ai/track/progress/user-1", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{
		"success": false,
		"error":   "Database is unavailable, please try again later",
		"code":    "store_unavailable",
	}, decodeBody(t, rec))
}
