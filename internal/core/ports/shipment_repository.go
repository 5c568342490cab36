package ports

import (
	"context"
	"time"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
)

// ShipmentRepository defines persistence operations for shipments.
//
// Writes must be visible to subsequent reads from any caller; there is no
// eventual-consistency window (the admin console reads its own writes).
type ShipmentRepository interface {
	// Insert persists a new shipment. Returns domain.ErrDuplicateTrackingCode
	// when the tracking code is already taken.
	Insert(ctx context.Context, s *domain.Shipment) error

	// FindByTrackingCode retrieves a shipment or domain.ErrShipmentNotFound.
	FindByTrackingCode(ctx context.Context, trackingCode string) (*domain.Shipment, error)

	// List returns all shipments, most recently updated first.
	List(ctx context.Context) ([]*domain.Shipment, error)

	// AppendStatus atomically sets the shipment's status and last_update and
	// appends a timeline entry, returning the updated document. Concurrent
	// calls on the same tracking code apply as a strict sequence of appends.
	// Returns domain.ErrShipmentNotFound for unknown codes.
	AppendStatus(ctx context.Context, trackingCode string, status domain.ShipmentStatus, ts time.Time) (*domain.Shipment, error)
}
