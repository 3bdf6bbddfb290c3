package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"punchclock/internal/delivery/api/response"
	"punchclock/internal/infra/metrics"
	"punchclock/internal/infra/persistence/postgres"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const readinessTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB      *gorm.DB
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// HealthHandler serves the health checks and the metrics endpoint.
type HealthHandler struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:      params.DB,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Health reports that the process is serving.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// Ready reports whether the database answers.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := postgres.Ping(ctx, h.db); err != nil {
		h.logger.Warn("Readiness check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "database unavailable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ready"}, "")
}

// Metrics serves the Prometheus exposition.
func (h *HealthHandler) Metrics(c echo.Context) error {
	h.metrics.Handler().ServeHTTP(c.Response(), c.Request())

	return nil
}
