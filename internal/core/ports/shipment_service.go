package ports

import (
	"context"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
)

// CreateShipmentInput carries all data needed to create a new shipment.
// Presence and range checks happen at the transport layer; InitialStatus is
// optional and defaults to "Package Pickup".
type CreateShipmentInput struct {
	SenderName    string
	ReceiverName  string
	ReceiverEmail string
	ReceiverPhone string
	Address       string
	Country       string
	Origin        string
	Destination   string
	Weight        float64
	Description   string
	Amount        float64
	InitialStatus string
}

// ShipmentService defines the use-case operations of the tracking workflow.
type ShipmentService interface {
	// Create allocates a tracking code, writes the initial timeline entry and
	// persists the shipment.
	Create(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)

	// Track is the public lookup by tracking code.
	Track(ctx context.Context, trackingCode string) (*domain.Shipment, error)

	// List returns all shipments, most recently updated first.
	List(ctx context.Context) ([]*domain.Shipment, error)

	// UpdateStatus appends a timeline entry for the new status and dispatches
	// exactly one notification for the accepted transition. Dispatch failure
	// never fails the transition.
	UpdateStatus(ctx context.Context, trackingCode, status string) (*domain.Shipment, error)

	// Notify re-sends the notification for the shipment's current status.
	Notify(ctx context.Context, trackingCode string) error
}
