package handler

import (
	"errors"
	"net/http"

	"shipment-monitor/internal/core/logger"
	"shipment-monitor/internal/features/alerts/domain"
	"shipment-monitor/internal/features/alerts/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AlertHandler handles HTTP requests for shipment alerts.
type AlertHandler struct {
	service ports.AlertService
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(service ports.AlertService) *AlertHandler {
	return &AlertHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AlertListResponse wraps a filtered, ranked alert list.
type AlertListResponse struct {
	Items []domain.AlertShipment `json:"items"`
	Count int                    `json:"count"`
}

// Register mounts the alert routes.
func (h *AlertHandler) Register(router fiber.Router) {
	router.Get("/alerts", h.ListAlerts)
	router.Get("/alerts/:id", h.GetAlert)
}

// ListAlerts godoc
// @Summary List shipment alerts
// @Description Assesses every shipment and returns them ranked by risk score, highest first, ties by ID.
// @Tags alerts
// @Produce json
// @Param status query string false "all, completed, in_progress, canceled or future"
// @Param severity query string false "High, Medium or Low"
// @Success 200 {object} AlertListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c *fiber.Ctx) error {
	status, err := domain.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid status filter: "+c.Query("status"))
	}

	q := domain.AlertQuery{Status: status}
	if raw := c.Query("severity"); raw != "" {
		if q.Severity, err = domain.ParseSeverity(raw); err != nil {
			return respondError(c, http.StatusBadRequest, "invalid severity filter: "+raw)
		}
	}

	alerts, err := h.service.ListAlerts(c.UserContext(), q)
	if err != nil {
		logger.Get().Error("Failed to list alerts", zap.String("ray_id", rayID(c)), zap.Error(err))
		return respondError(c, http.StatusInternalServerError, "failed to assess shipments")
	}

	if alerts == nil {
		alerts = []domain.AlertShipment{}
	}
	return c.Status(http.StatusOK).JSON(AlertListResponse{Items: alerts, Count: len(alerts)})
}

// GetAlert godoc
// @Summary Get one shipment alert
// @Description Assesses a single shipment.
// @Tags alerts
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} domain.AlertShipment
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts/{id} [get]
func (h *AlertHandler) GetAlert(c *fiber.Ctx) error {
	id := c.Params("id")

	alert, err := h.service.GetAlert(c.UserContext(), id)
	if err == nil {
		return c.Status(http.StatusOK).JSON(alert)
	}

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrShipmentNotFound):
		return respondError(c, http.StatusNotFound, "shipment not found")
	case errors.As(err, &verr):
		return respondError(c, http.StatusUnprocessableEntity, verr.Error())
	}

	logger.Get().Error("Failed to assess shipment",
		zap.String("shipment_id", id),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return respondError(c, http.StatusInternalServerError, "failed to assess shipment")
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
