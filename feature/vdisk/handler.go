package vdisk

import (
	"errors"

	"storage-console/core/logger"
	"storage-console/core/viewsync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for vdisks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the vdisk routes. Literal segments are registered
// before the guid route so they are not captured as guids.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/vdisks")
	group.Get("/", h.HandleListVDisks)
	group.Get("/orphans", h.HandleListOrphans)
	group.Delete("/orphans", h.HandlePurgeOrphans)
	group.Get("/vpool/:guid", h.HandleListVDisksOnVPool)
	group.Post("/refresh", h.HandleRefreshVDisks)
	group.Get("/:guid", h.HandleGetVDisk)
	group.Get("/:guid/volume", h.HandleGetVDiskVolume)
	group.Patch("/:guid", h.HandleEditVDisk)
}

// HandleListVDisks returns all vdisk view records.
// @Summary List VDisks
// @Description List the console view of all vdisks, including volume presence.
// @Tags vdisk
// @Produce json
// @Success 200 {array} map[string]interface{} "VDisk records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks [get]
func (h *Handler) HandleListVDisks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context())
	if err != nil {
		l.Error("VDisk list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records)
}

// HandleGetVDisk returns the view record for a single vdisk.
// @Summary Get VDisk
// @Description Get the console view record of one vdisk.
// @Tags vdisk
// @Produce json
// @Param guid path string true "VDisk GUID"
// @Success 200 {object} map[string]interface{} "VDisk record"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks/{guid} [get]
func (h *Handler) HandleGetVDisk(c *fiber.Ctx) error {
	guid := c.Params("guid")
	l := logger.WithRayID(h.service.logger, c)

	record, err := h.service.Get(c.Context(), guid)
	if err != nil {
		l.Error("VDisk lookup failed", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "vdisk not found",
		})
	}

	return c.JSON(record)
}

// HandleListVDisksOnVPool returns all vdisks living on one vpool.
// @Summary List VDisks on VPool
// @Description List the vdisks carved out of a given vpool.
// @Tags vdisk
// @Produce json
// @Param guid path string true "VPool GUID"
// @Success 200 {array} map[string]interface{} "VDisk records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks/vpool/{guid} [get]
func (h *Handler) HandleListVDisksOnVPool(c *fiber.Ctx) error {
	guid := c.Params("guid")
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.OnVPool(c.Context(), guid)
	if err != nil {
		l.Error("VDisk vpool query failed", zap.String("vpool_guid", guid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records)
}

// HandleGetVDiskVolume reports the live state of one vdisk's volume object.
// @Summary Get VDisk Volume
// @Description Check a vdisk's backing volume object directly against storage.
// @Tags vdisk
// @Produce json
// @Param guid path string true "VDisk GUID"
// @Success 200 {object} vdisk.VolumeInfo "Volume object state"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks/{guid}/volume [get]
func (h *Handler) HandleGetVDiskVolume(c *fiber.Ctx) error {
	guid := c.Params("guid")
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.VolumeInfo(c.Context(), guid)
	if err != nil {
		l.Error("VDisk volume stat failed", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if info == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "vdisk not found",
		})
	}

	return c.JSON(info)
}

// HandleListOrphans returns volume objects no vdisk references.
// @Summary List Orphan Volumes
// @Description List volume objects present in storage without a matching vdisk.
// @Tags vdisk
// @Produce json
// @Success 200 {array} string "Orphan devicenames"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks/orphans [get]
func (h *Handler) HandleListOrphans(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	orphans, err := h.service.Orphans(c.Context())
	if err != nil {
		l.Error("VDisk orphan scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(orphans)
}

// HandlePurgeOrphans deletes the orphan volume objects from storage.
// @Summary Purge Orphan Volumes
// @Description Delete volume objects present in storage without a matching vdisk.
// @Tags vdisk
// @Produce json
// @Success 200 {array} string "Purged devicenames"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks/orphans [delete]
func (h *Handler) HandlePurgeOrphans(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	purged, err := h.service.PurgeOrphans(c.Context())
	if err != nil {
		l.Error("VDisk orphan purge failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(purged)
}

// HandleRefreshVDisks forces a resync of the vdisk view.
// @Summary Refresh VDisks
// @Description Force a resync of the vdisk view state with the database and storage.
// @Tags vdisk
// @Produce json
// @Success 200 {object} viewsync.Stats "Refresh stats"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks/refresh [post]
func (h *Handler) HandleRefreshVDisks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("VDisk refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}

// HandleEditVDisk applies operator edits to a vdisk view record.
// @Summary Edit VDisk
// @Description Apply operator edits to editable vdisk fields (name, description).
// @Tags vdisk
// @Accept json
// @Produce json
// @Param guid path string true "VDisk GUID"
// @Param edits body map[string]interface{} true "Field edits"
// @Success 200 {object} map[string]interface{} "Updated record"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vdisks/{guid} [patch]
func (h *Handler) HandleEditVDisk(c *fiber.Ctx) error {
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
				"error": "vdisk not found",
			})
		}
		l.Warn("VDisk edit rejected", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	record, err := h.service.Get(c.Context(), guid)
	if err != nil {
		l.Error("VDisk lookup failed", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(record)
}
