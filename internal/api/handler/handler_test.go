package handler

import (
	"context"
	"time"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

// stubShipmentService records calls and serves canned shipments, so handler
// tests exercise binding, validation and status codes only.
type stubShipmentService struct {
	shipments map[string]*domain.Shipment

	createErr error
	updateErr error
	notified  []string
}

func newStubShipmentService() *stubShipmentService {
	return &stubShipmentService{shipments: make(map[string]*domain.Shipment)}
}

func sampleShipment(code string) *domain.Shipment {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Shipment{
		TrackingCode:  code,
		SenderName:    "Acme Corp",
		ReceiverName:  "Jane Doe",
		ReceiverEmail: "jane@example.com",
		Origin:        "Mexico City",
		Destination:   "Monterrey",
		Weight:        2.5,
		Amount:        120,
		Status:        domain.StatusPackagePickup,
		CreatedAt:     now,
		LastUpdate:    now,
		Timeline: []domain.TimelineEntry{
			{Status: domain.StatusPackagePickup, Timestamp: now},
		},
	}
}

func (s *stubShipmentService) Create(_ context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	shipment := sampleShipment("CC-0123456789AB")
	shipment.SenderName = input.SenderName
	shipment.ReceiverName = input.ReceiverName
	shipment.Origin = input.Origin
	shipment.Destination = input.Destination
	s.shipments[shipment.TrackingCode] = shipment
	return shipment, nil
}

func (s *stubShipmentService) Track(_ context.Context, trackingCode string) (*domain.Shipment, error) {
	shipment, ok := s.shipments[trackingCode]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return shipment, nil
}

func (s *stubShipmentService) List(_ context.Context) ([]*domain.Shipment, error) {
	out := make([]*domain.Shipment, 0, len(s.shipments))
	for _, shipment := range s.shipments {
		out = append(out, shipment)
	}
	return out, nil
}

func (s *stubShipmentService) UpdateStatus(_ context.Context, trackingCode, status string) (*domain.Shipment, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	shipment, ok := s.shipments[trackingCode]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	now := shipment.LastUpdate.Add(time.Hour)
	shipment.Status = domain.ShipmentStatus(status)
	shipment.LastUpdate = now
	shipment.Timeline = append(shipment.Timeline, domain.TimelineEntry{
		Status:    shipment.Status,
		Timestamp: now,
	})
	return shipment, nil
}

func (s *stubShipmentService) Notify(_ context.Context, trackingCode string) error {
	if _, ok := s.shipments[trackingCode]; !ok {
		return domain.ErrShipmentNotFound
	}
	s.notified = append(s.notified, trackingCode)
	return nil
}

// stubAuthService accepts a single username/password pair.
type stubAuthService struct {
	username string
	password string
	token    string
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	if username != s.username || password != s.password {
		return "", domain.ErrInvalidCredentials
	}
	return s.token, nil
}
