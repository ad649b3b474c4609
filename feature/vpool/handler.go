package vpool

import (
	"errors"

	"storage-console/core/logger"
	"storage-console/core/viewsync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for vpools.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the vpool routes. The status route is registered
// before the guid route so "/status" is not captured as a guid.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/vpools")
	group.Get("/", h.HandleListVPools)
	group.Get("/status/:status", h.HandleListVPoolsByStatus)
	group.Post("/refresh", h.HandleRefreshVPools)
	group.Get("/:guid", h.HandleGetVPool)
	group.Patch("/:guid", h.HandleEditVPool)
}

// HandleListVPools returns all vpool view records.
// @Summary List VPools
// @Description List the console view of all vpools.
// @Tags vpool
// @Produce json
// @Success 200 {array} map[string]interface{} "VPool records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vpools [get]
func (h *Handler) HandleListVPools(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context())
	if err != nil {
		l.Error("VPool list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records)
}

// HandleGetVPool returns the view record for a single vpool.
// @Summary Get VPool
// @Description Get the console view record of one vpool.
// @Tags vpool
// @Produce json
// @Param guid path string true "VPool GUID"
// @Success 200 {object} map[string]interface{} "VPool record"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vpools/{guid} [get]
func (h *Handler) HandleGetVPool(c *fiber.Ctx) error {
	guid := c.Params("guid")
	l := logger.WithRayID(h.service.logger, c)

	record, err := h.service.Get(c.Context(), guid)
	if err != nil {
		l.Error("VPool lookup failed", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "vpool not found",
		})
	}

	return c.JSON(record)
}

// HandleListVPoolsByStatus returns all vpools in one lifecycle status.
// @Summary List VPools by Status
// @Description List vpools in a given lifecycle status (e.g. RUNNING, FAILURE).
// @Tags vpool
// @Produce json
// @Param status path string true "Lifecycle status"
// @Success 200 {array} map[string]interface{} "VPool records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vpools/status/{status} [get]
func (h *Handler) HandleListVPoolsByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.WithStatus(c.Context(), status)
	if err != nil {
		l.Error("VPool status query failed", zap.String("status", status), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records)
}

// HandleRefreshVPools forces a resync of the vpool view with the database.
// @Summary Refresh VPools
// @Description Force a resync of the vpool view state with the platform database.
// @Tags vpool
// @Produce json
// @Success 200 {object} viewsync.Stats "Refresh stats"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vpools/refresh [post]
func (h *Handler) HandleRefreshVPools(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("VPool refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}

// HandleEditVPool applies operator edits to a vpool view record.
// @Summary Edit VPool
// @Description Apply operator edits to editable vpool fields (name, connection, login).
// @Tags vpool
// @Accept json
// @Produce json
// @Param guid path string true "VPool GUID"
// @Param edits body map[string]interface{} true "Field edits"
// @Success 200 {object} map[string]interface{} "Updated record"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vpools/{guid} [patch]
func (h *Handler) HandleEditVPool(c *fiber.Ctx) error {
	guid := c.Params("guid")
	l := logger.WithRayID(h.service.logger, c)

	var edits map[string]any
	if err := c.BodyParser(&edits); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.Edit(c.Context(), guid, edits); err != nil {
		if errors.Is(err, viewsync.ErrUnknownEntity) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "vpool not found",
			})
		}
		l.Warn("VPool edit rejected", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	record, err := h.service.Get(c.Context(), guid)
	if err != nil {
		l.Error("VPool lookup failed", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(record)
}
