package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an outbound notice built from an accepted status
// transition. Delivery is delegated to an external webhook; the record
// carries everything the collaborator needs to render the message.
type Notification struct {
	ID           uuid.UUID      `json:"id"`
	TrackingCode string         `json:"tracking_code"`
	Status       ShipmentStatus `json:"status"`
	Recipient    string         `json:"recipient"`
	Subject      string         `json:"subject"`
	Message      string         `json:"message"`
	OccurredAt   time.Time      `json:"occurred_at"`
}

// NewStatusNotification builds the notice for a shipment's current status.
func NewStatusNotification(s *Shipment, occurredAt time.Time) *Notification {
	return &Notification{
		ID:           uuid.New(),
		TrackingCode: s.TrackingCode,
		Status:       s.Status,
		Recipient:    s.ReceiverEmail,
		Subject:      "Shipment " + s.TrackingCode + ": " + string(s.Status),
		Message:      "Your shipment " + s.TrackingCode + " is now \"" + string(s.Status) + "\".",
		OccurredAt:   occurredAt,
	}
}
