package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notekeeper/internal/ports"
)

// BuildInfo contains build-time information about the service,
// typically injected with ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo creates a BuildInfo with the Go version filled in.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the health and operational endpoints.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
	}
}

// Health handles GET /health with a plain-text 200 "OK". It never
// consults the health registry: the page keeps answering even when the
// database is down and the service is running on the memory fallback.
func (h *HealthHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness handles GET /-/live. It answers 200 whenever the process is
// up and deliberately checks no dependencies; readiness does that.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
	})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness handles GET /-/ready. It runs every registered check and
// answers 503 when any fails — which includes running degraded on the
// memory fallback while MongoDB is unreachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	resp := readinessResponse{
		Status: string(result.Status),
		Checks: result.Checks,
	}

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}

// BuildInfoHandler handles GET /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler returns the Prometheus metrics handler for use with
// gin.WrapH.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RegisterOperationalRoutes registers the probe endpoints under /-:
//   - GET /-/live     liveness probe
//   - GET /-/ready    readiness probe
//   - GET /-/build    build information
//   - GET /-/metrics  Prometheus metrics
func (h *HealthHandler) RegisterOperationalRoutes(engine *gin.Engine) {
	ops := engine.Group("/-")
	ops.GET("/live", h.Liveness)
	ops.GET("/ready", h.Readiness)
	ops.GET("/build", h.BuildInfoHandler)
	ops.GET("/metrics", gin.WrapH(MetricsHandler()))
}
