package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/c3devs/novamuse/internal/mocks"
	"github.com/c3devs/novamuse/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func healthEngine(t *testing.T, registry ports.HealthRegistry, info BuildInfo) *gin.Engine {
	t.Helper()

	engine := gin.New()
	NewHealthHandler(registry, info).Register(engine)

	return engine
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2024-01-15T10:00:00Z")

	assert.Equal(t, "1.0.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	// Liveness never consults the registry; the mock fails the test if it does.
	engine := healthEngine(t, mocks.NewMockHealthRegistry(t), BuildInfo{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		result *ports.HealthResult
		code   int
	}{
		{
			name: "healthy",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"sqlite":        {Status: ports.HealthStatusHealthy},
					"quote-service": {Status: ports.HealthStatusHealthy, Optional: true},
				},
			},
			code: http.StatusOK,
		},
		{
			name: "quote API down only degrades",
			result: &ports.HealthResult{
				Status: ports.HealthStatusDegraded,
				Checks: map[string]*ports.CheckResult{
					"sqlite":        {Status: ports.HealthStatusHealthy},
					"quote-service": {Status: ports.HealthStatusUnhealthy, Optional: true, Message: "connection refused"},
				},
			},
			code: http.StatusOK,
		},
		{
			name: "session store down",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"sqlite": {Status: ports.HealthStatusUnhealthy, Message: "database is locked"},
				},
			},
			code: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result).Once()

			w := httptest.NewRecorder()
			healthEngine(t, registry, BuildInfo{}).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody))

			assert.Equal(t, tt.code, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.result.Status), resp.Status)
			assert.Len(t, resp.Checks, len(tt.result.Checks))
		})
	}
}

func TestFailing(t *testing.T) {
	attrs := failing(&ports.HealthResult{
		Checks: map[string]*ports.CheckResult{
			"sqlite":        {Status: ports.HealthStatusHealthy},
			"quote-service": {Status: ports.HealthStatusUnhealthy, Message: "timeout"},
		},
	})

	require.Len(t, attrs, 1)
	assert.Equal(t, "quote-service=timeout", attrs[0].(interface{ String() string }).String())
}

func TestHealthHandler_Build(t *testing.T) {
	info := BuildInfo{Version: "1.2.3", Commit: "def456", BuildTime: "2024-02-01T12:00:00Z", GoVersion: "go1.25.7"}

	w := httptest.NewRecorder()
	healthEngine(t, mocks.NewMockHealthRegistry(t), info).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/build", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, info, resp)
}

func TestHealthHandler_Metrics(t *testing.T) {
	w := httptest.NewRecorder()
	healthEngine(t, mocks.NewMockHealthRegistry(t), BuildInfo{}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
