package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cargoconnect/logistics-api/internal/core/domain"
)

const defaultSendTimeout = 5 * time.Second

// WebhookSender delivers notifications to the external email collaborator via
// an HTTP webhook. Calls are bounded by a timeout; message rendering and
// actual delivery to the recipient happen on the collaborator's side.
type WebhookSender struct {
	url    string
	client *http.Client
}

// NewWebhookSender returns a sender posting to url. A default timeout is
// applied when none is provided.
func NewWebhookSender(url string, timeout time.Duration) *WebhookSender {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &WebhookSender{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookPayload struct {
	ID           string `json:"id"`
	TrackingCode string `json:"tracking_code"`
	Status       string `json:"status"`
	Recipient    string `json:"recipient"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	OccurredAt   string `json:"occurred_at"`
}

// Send posts the notification payload to the webhook. Any non-2xx response is
// reported as an error for the caller to log.
func (w *WebhookSender) Send(ctx context.Context, n *domain.Notification) error {
	payload := webhookPayload{
		ID:           n.ID.String(),
		TrackingCode: n.TrackingCode,
		Status:       string(n.Status),
		Recipient:    n.Recipient,
		Subject:      n.Subject,
		Message:      n.Message,
		OccurredAt:   n.OccurredAt.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send notification: webhook returned %d", resp.StatusCode)
	}
	return nil
}
