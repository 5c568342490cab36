package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
)

type stubDedup struct {
	duplicate bool
	checkErr  error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, code, status string, _ time.Time) (bool, error) {
	return d.duplicate, d.checkErr
}

func (d *stubDedup) Mark(_ context.Context, code, status string, _ time.Time) error {
	d.marked = append(d.marked, code+":"+status)
	return nil
}

type stubSender struct {
	sendErr error
	sent    []*domain.Notification
}

func (s *stubSender) Send(_ context.Context, n *domain.Notification) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, n)
	return nil
}

func sampleNotification() *domain.Notification {
	return domain.NewStatusNotification(&domain.Shipment{
		TrackingCode:  "CC-0123456789AB",
		ReceiverEmail: "b@example.com",
		Status:        domain.StatusInTransit,
	}, time.Now().UTC())
}

func TestNotificationService_Deliver_Success(t *testing.T) {
	dedup := &stubDedup{}
	sender := &stubSender{}
	svc := NewNotificationService(dedup, sender, discardLogger)

	if err := svc.Deliver(context.Background(), sampleNotification()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.sent))
	}
	if len(dedup.marked) != 1 {
		t.Fatalf("expected the notice to be marked, got %d marks", len(dedup.marked))
	}
}

func TestNotificationService_Deliver_DuplicateSkipped(t *testing.T) {
	dedup := &stubDedup{duplicate: true}
	sender := &stubSender{}
	svc := NewNotificationService(dedup, sender, discardLogger)

	if err := svc.Deliver(context.Background(), sampleNotification()); err != nil {
		t.Fatalf("duplicates must be skipped silently, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("duplicate must not be sent, got %d sends", len(sender.sent))
	}
}

func TestNotificationService_Deliver_DedupFailureStillSends(t *testing.T) {
	dedup := &stubDedup{checkErr: errors.New("redis down")}
	sender := &stubSender{}
	svc := NewNotificationService(dedup, sender, discardLogger)

	if err := svc.Deliver(context.Background(), sampleNotification()); err != nil {
		t.Fatalf("dedup failure must not block delivery, got %v", err)
	}
	if len(sender.sent) != 1 {
		t.Errorf("expected delivery despite dedup failure, got %d sends", len(sender.sent))
	}
}

func TestNotificationService_Deliver_SendFailureReported(t *testing.T) {
	dedup := &stubDedup{}
	sender := &stubSender{sendErr: errors.New("webhook timeout")}
	svc := NewNotificationService(dedup, sender, discardLogger)

	err := svc.Deliver(context.Background(), sampleNotification())
	if err == nil {
		t.Fatal("expected the send failure to be reported")
	}
}

func TestNotificationService_Deliver_NoRecipientSkipped(t *testing.T) {
	dedup := &stubDedup{}
	sender := &stubSender{}
	svc := NewNotificationService(dedup, sender, discardLogger)

	n := sampleNotification()
	n.Recipient = ""

	if err := svc.Deliver(context.Background(), n); err != nil {
		t.Fatalf("missing recipient is not an error, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("nothing must be sent without a recipient, got %d sends", len(sender.sent))
	}
}
