package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

const receiptFetchTimeout = 10 * time.Second

// ReceiptHandler streams shipment receipts from the external receipt
// collaborator. Receipt rendering is not implemented here; the handler only
// verifies the shipment exists and passes the document through.
type ReceiptHandler struct {
	service ports.ShipmentService
	baseURL string
	client  *http.Client
}

func NewReceiptHandler(service ports.ShipmentService, baseURL string) *ReceiptHandler {
	return &ReceiptHandler{
		service: service,
		baseURL: baseURL,
		client:  &http.Client{Timeout: receiptFetchTimeout},
	}
}

// Download handles GET /shipments/:code/receipt.pdf.
//
// @Summary      Download the shipment receipt
// @Tags         shipments
// @Produce      application/pdf
// @Param        code  path  string  true  "Tracking code"
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /shipments/{code}/receipt.pdf [get]
func (h *ReceiptHandler) Download(c echo.Context) error {
	code := c.Param("code")

	// Unknown codes 404 before the collaborator is contacted.
	if _, err := h.service.Track(c.Request().Context(), code); err != nil {
		return err
	}

	receiptURL := fmt.Sprintf("%s/receipts/%s.pdf", h.baseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, receiptURL, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "receipt service unavailable")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "receipt service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return echo.NewHTTPError(http.StatusBadGateway,
			fmt.Sprintf("receipt service returned %d", resp.StatusCode))
	}

	return c.Stream(http.StatusOK, "application/pdf", resp.Body)
}
