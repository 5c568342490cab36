package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargoconnect/logistics-api/internal/api/metrics"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

// ShipmentHandler handles the admin console's shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// List handles GET /shipments.
//
// @Summary      List all shipments, most recently updated first
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   shipmentSummaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	shipments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(shipments))
}

// Create handles POST /shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shipment, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(shipment.Country).Inc()
	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// UpdateStatus handles PATCH /shipments/:code. The accepted transition
// appends a timeline entry and dispatches the notification server-side, so a
// client dying between calls cannot leave a half-applied state.
//
// @Summary      Update a shipment's status
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string               true  "Tracking code"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  shipmentResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /shipments/{code} [patch]
func (h *ShipmentHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shipment, err := h.service.UpdateStatus(c.Request().Context(), c.Param("code"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(shipment.Status)).Inc()
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Notify handles POST /shipments/:code/notify — manual re-send of the
// notification for the current status.
//
// @Summary      Re-send the notification for a shipment's current status
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Tracking code"
// @Success      202   {object}  acceptedResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shipments/{code}/notify [post]
func (h *ShipmentHandler) Notify(c echo.Context) error {
	if err := h.service.Notify(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "notification queued"})
}
