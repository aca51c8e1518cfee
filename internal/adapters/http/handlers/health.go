// Package handlers serves the NovaMuse pages, the sign-in flow and the
// operational endpoints under /-/.
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c3devs/novamuse/internal/platform/logging"
	"github.com/c3devs/novamuse/internal/ports"
)

// BuildInfo is reported at /-/build. Version, commit and build time come
// from ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills in the running Go version.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the probe, build and metrics endpoints.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
}

// NewHealthHandler creates a health handler over registry.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
	}
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness handles GET /-/live. It answers as long as the process can
// serve and looks at no dependency.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness handles GET /-/ready. Only an unhealthy result answers 503;
// a degraded site (quote API down) still takes traffic, since its pages
// render without quotes.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()
	result := h.registry.CheckAll(ctx)

	status := http.StatusOK

	switch result.Status {
	case ports.HealthStatusUnhealthy:
		status = http.StatusServiceUnavailable
		logging.FromContext(ctx).Warn("not ready", failing(result)...)
	case ports.HealthStatusDegraded:
		logging.FromContext(ctx).Info("ready but degraded", failing(result)...)
	case ports.HealthStatusHealthy:
	}

	c.JSON(status, readinessResponse{
		Status: string(result.Status),
		Checks: result.Checks,
	})
}

// failing lists the failed checks as log attributes.
func failing(result *ports.HealthResult) []any {
	attrs := make([]any, 0, len(result.Checks))

	for name, check := range result.Checks {
		if check.Status != ports.HealthStatusHealthy {
			attrs = append(attrs, slog.String(name, check.Message))
		}
	}

	return attrs
}

// BuildInfoHandler handles GET /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler exposes the Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// Register mounts the operational endpoints under /-/: live, ready, build
// and metrics.
func (h *HealthHandler) Register(engine *gin.Engine) {
	ops := engine.Group("/-")
	ops.GET("/live", h.Liveness)
	ops.GET("/ready", h.Readiness)
	ops.GET("/build", h.BuildInfoHandler)
	ops.GET("/metrics", gin.WrapH(MetricsHandler()))
}
