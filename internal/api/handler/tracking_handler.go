package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargoconnect/logistics-api/internal/api/metrics"
	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

// TrackingHandler serves the public shipment lookup.
type TrackingHandler struct {
	service ports.ShipmentService
}

func NewTrackingHandler(service ports.ShipmentService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles GET /track/:code.
//
// @Summary      Look up a shipment by tracking code
// @Tags         tracking
// @Produce      json
// @Param        code  path      string  true  "Tracking code (e.g. CC-7A8B9C2D3E4F)"
// @Success      200   {object}  trackResponse
// @Failure      404   {object}  errorResponse
// @Router       /track/{code} [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	code := c.Param("code")

	shipment, err := h.service.Track(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			metrics.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.TrackingLookupsTotal.WithLabelValues("found").Inc()
	return c.JSON(http.StatusOK, toTrackResponse(shipment))
}
