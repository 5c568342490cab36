package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). It guarantees that a
// given (tracking code, status, occurrence) notice goes out at most once even
// when the dispatcher retries or a transition is enqueued twice.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingCode, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingCode, status string, ts time.Time) error
}

type notificationService struct {
	dedup  DedupChecker
	sender ports.NotificationSender
	log    zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(dedup DedupChecker, sender ports.NotificationSender, log zerolog.Logger) ports.NotificationService {
	return &notificationService{dedup: dedup, sender: sender, log: log}
}

// Deliver deduplicates and sends a single notification. Errors are returned
// for the caller to log and count; they never reach the transition that
// produced the notification.
func (s *notificationService) Deliver(ctx context.Context, n *domain.Notification) error {
	isDup, err := s.dedup.IsDuplicate(ctx, n.TrackingCode, string(n.Status), n.OccurredAt)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking_code", n.TrackingCode).Msg("dedup check failed, sending anyway")
	} else if isDup {
		s.log.Debug().
			Str("tracking_code", n.TrackingCode).
			Str("status", string(n.Status)).
			Msg("duplicate notification skipped")
		return nil
	}

	// Mark before sending so a crash mid-send cannot double-deliver on retry.
	if markErr := s.dedup.Mark(ctx, n.TrackingCode, string(n.Status), n.OccurredAt); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking_code", n.TrackingCode).Msg("failed to set dedup key")
	}

	if n.Recipient == "" {
		s.log.Debug().Str("tracking_code", n.TrackingCode).Msg("no recipient on shipment, skipping notification")
		return nil
	}

	if err := s.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("deliver notification %s: %w", n.ID, err)
	}

	s.log.Info().
		Str("tracking_code", n.TrackingCode).
		Str("status", string(n.Status)).
		Str("recipient", n.Recipient).
		Msg("notification delivered")
	return nil
}
