package ports

import (
	"context"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
)

// NotificationDispatcher accepts notifications for asynchronous delivery.
// Enqueue is fire-and-forget from the caller's perspective; the transition
// that produced the notification has already committed.
type NotificationDispatcher interface {
	Enqueue(n *domain.Notification)
}

// NotificationSender delivers a single notification to the external
// collaborator (e.g. the email webhook).
type NotificationSender interface {
	Send(ctx context.Context, n *domain.Notification) error
}

// NotificationService deduplicates and delivers notifications. Failures are
// reported to the caller for logging and metrics, never retried into the
// originating transition.
type NotificationService interface {
	Deliver(ctx context.Context, n *domain.Notification) error
}
