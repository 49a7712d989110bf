package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/ports"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func newOpsEngine(t *testing.T, checkers ...ports.HealthChecker) *gin.Engine {
	t.Helper()

	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		require.NoError(t, registry.Register(c))
	}

	handler := NewHealthHandler(registry, NewBuildInfo("1.2.3", "abc123", "2026-08-25T00:00:00Z"))

	engine := gin.New()
	engine.GET("/health", handler.Health)
	handler.RegisterOperationalRoutes(engine)

	return engine
}

func opsGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)

	return w
}

func TestLiveness(t *testing.T) {
	engine := newOpsEngine(t)

	w := opsGet(engine, "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadiness_Healthy(t *testing.T) {
	engine := newOpsEngine(t, stubChecker{name: "mongodb"})

	w := opsGet(engine, "/-/ready")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestReadiness_UnhealthyDependency(t *testing.T) {
	engine := newOpsEngine(t, stubChecker{name: "mongodb", err: errors.New("connection refused")})

	w := opsGet(engine, "/-/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestReadiness_DegradedButHealthEndpointStaysOK(t *testing.T) {
	engine := newOpsEngine(t, stubChecker{name: "mongodb", err: errors.New("server selection timeout")})

	ready := opsGet(engine, "/-/ready")
	health := opsGet(engine, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, ready.Code)
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "OK", health.Body.String())
}

func TestBuildInfoEndpoint(t *testing.T) {
	engine := newOpsEngine(t)

	w := opsGet(engine, "/-/build")

	assert.Equal(t, http.StatusOK, w.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.GoVersion)
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newOpsEngine(t)

	w := opsGet(engine, "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
