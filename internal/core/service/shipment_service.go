package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

// ShipmentService implements the shipment lifecycle: creation, public
// tracking lookup, admin listing and status transitions.
type ShipmentService struct {
	repo       ports.ShipmentRepository
	dispatcher ports.NotificationDispatcher
	logger     zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, dispatcher ports.NotificationDispatcher, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// Create allocates a tracking code and persists the shipment with its initial
// timeline entry. On a tracking code collision the code is regenerated.
func (s *ShipmentService) Create(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	initial := domain.StatusPackagePickup
	if input.InitialStatus != "" {
		initial = domain.ShipmentStatus(input.InitialStatus)
		if !initial.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.InitialStatus)
		}
	}

	now := time.Now().UTC()
	shipment := &domain.Shipment{
		SenderName:    input.SenderName,
		ReceiverName:  input.ReceiverName,
		ReceiverEmail: input.ReceiverEmail,
		ReceiverPhone: input.ReceiverPhone,
		Address:       input.Address,
		Country:       input.Country,
		Origin:        input.Origin,
		Destination:   input.Destination,
		Weight:        input.Weight,
		Description:   input.Description,
		Amount:        input.Amount,
		Status:        initial,
		Timeline:      []domain.TimelineEntry{{Status: initial, Timestamp: now}},
		CreatedAt:     now,
		LastUpdate:    now,
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		shipment.TrackingCode = newTrackingCode()
		err := s.repo.Insert(ctx, shipment)
		if err == nil {
			s.logger.Info().
				Str("tracking_code", shipment.TrackingCode).
				Str("status", string(initial)).
				Msg("shipment created")
			return shipment, nil
		}
		if errors.Is(err, domain.ErrDuplicateTrackingCode) {
			s.logger.Warn().Str("tracking_code", shipment.TrackingCode).Msg("tracking code collision, regenerating")
			continue
		}
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}
	return nil, fmt.Errorf("create shipment: %w after %d attempts", domain.ErrDuplicateTrackingCode, maxCodeAttempts)
}

// Track returns the shipment for a public tracking lookup.
func (s *ShipmentService) Track(ctx context.Context, trackingCode string) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByTrackingCode(ctx, trackingCode)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", trackingCode, err)
	}
	return shipment, nil
}

// List returns all shipments, most recently updated first.
func (s *ShipmentService) List(ctx context.Context) ([]*domain.Shipment, error) {
	return s.repo.List(ctx)
}

// UpdateStatus appends a timeline entry for the new status and dispatches
// exactly one notification for the accepted transition. Per the tracking
// workflow, any member of the status enumeration is accepted regardless of
// the shipment's current position in the lifecycle.
func (s *ShipmentService) UpdateStatus(ctx context.Context, trackingCode, status string) (*domain.Shipment, error) {
	newStatus := domain.ShipmentStatus(status)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	now := time.Now().UTC()
	updated, err := s.repo.AppendStatus(ctx, trackingCode, newStatus, now)
	if err != nil {
		return nil, fmt.Errorf("update status %s: %w", trackingCode, err)
	}

	// The transition has committed; notification delivery happens off the
	// request path and cannot fail it.
	s.dispatcher.Enqueue(domain.NewStatusNotification(updated, now))

	s.logger.Info().
		Str("tracking_code", trackingCode).
		Str("status", status).
		Int("timeline_len", len(updated.Timeline)).
		Msg("status updated")

	return updated, nil
}

// Notify re-sends the notification for the shipment's current status. A fresh
// occurrence timestamp is used so the manual re-send is not swallowed by the
// dispatcher's dedup of the original transition.
func (s *ShipmentService) Notify(ctx context.Context, trackingCode string) error {
	shipment, err := s.repo.FindByTrackingCode(ctx, trackingCode)
	if err != nil {
		return fmt.Errorf("notify %s: %w", trackingCode, err)
	}

	s.dispatcher.Enqueue(domain.NewStatusNotification(shipment, time.Now().UTC()))
	s.logger.Info().
		Str("tracking_code", trackingCode).
		Str("status", string(shipment.Status)).
		Msg("manual notification queued")
	return nil
}
