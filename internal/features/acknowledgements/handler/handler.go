package handler

import (
	"errors"
	"net/http"

	"shipment-monitor/internal/core/logger"
	"shipment-monitor/internal/features/acknowledgements/domain"
	"shipment-monitor/internal/features/acknowledgements/ports"
	alertsdomain "shipment-monitor/internal/features/alerts/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AcknowledgementHandler handles HTTP requests for acknowledgements.
type AcknowledgementHandler struct {
	service ports.AcknowledgementService
}

// NewAcknowledgementHandler creates a new AcknowledgementHandler.
func NewAcknowledgementHandler(service ports.AcknowledgementService) *AcknowledgementHandler {
	return &AcknowledgementHandler{
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

// AcknowledgeRequest is the body of POST /alerts/{id}/ack.
type AcknowledgeRequest struct {
	User string `json:"user"`
}

// ClearResponse reports how many acknowledgements were dropped.
type ClearResponse struct {
	Cleared int `json:"cleared"`
}

// Register mounts the acknowledgement routes.
func (h *AcknowledgementHandler) Register(router fiber.Router) {
	router.Post("/alerts/:id/ack", h.Acknowledge)
	router.Delete("/acknowledgements", h.Clear)
}

// Acknowledge godoc
// @Summary Acknowledge a shipment alert
// @Description Records that a user has seen the alert. A later acknowledgement replaces the earlier one.
// @Tags acknowledgements
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param body body AcknowledgeRequest true "Acknowledging user"
// @Success 200 {object} domain.Acknowledgement
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts/{id}/ack [post]
func (h *AcknowledgementHandler) Acknowledge(c *fiber.Ctx) error {
	var req AcknowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	id := c.Params("id")
	ack, err := h.service.Acknowledge(c.UserContext(), id, req.User)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(ack)
	case errors.Is(err, domain.ErrUserRequired), errors.Is(err, domain.ErrShipmentIDRequired):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, alertsdomain.ErrShipmentNotFound):
		return respondError(c, http.StatusNotFound, "shipment not found")
	}

	logger.Get().Error("Failed to acknowledge shipment",
		zap.String("shipment_id", id),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return respondError(c, http.StatusInternalServerError, "internal server error")
}

// Clear godoc
// @Summary Clear all acknowledgements
// @Description Administrative reset of the acknowledgement store.
// @Tags acknowledgements
// @Produce json
// @Success 200 {object} ClearResponse
// @Failure 500 {object} ErrorResponse
// @Router /acknowledgements [delete]
func (h *AcknowledgementHandler) Clear(c *fiber.Ctx) error {
	n, err := h.service.Clear(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to clear acknowledgements", zap.String("ray_id", rayID(c)), zap.Error(err))
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}

	logger.Get().Info("Acknowledgements cleared", zap.Int("count", n))
	return c.Status(http.StatusOK).JSON(ClearResponse{Cleared: n})
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
