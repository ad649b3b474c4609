package health

import (
	"storage-console/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports the console's dependency health.
// @Summary Health
// @Description Probe the database, schema and storage bucket.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "All checks passed"
// @Failure 503 {object} health.Report "One or more checks failed"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.Check(c.Context())
	if report.Status != "ok" {
		l.Warn("Health check degraded")
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}

	return c.JSON(report)
}
