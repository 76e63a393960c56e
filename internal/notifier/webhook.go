package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const webhookTimeout = 15 * time.Second

// WebhookNotifier posts announcements to a chat webhook endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhook creates a webhook notifier for the given endpoint URL.
func NewWebhook(url string) (*WebhookNotifier, error) {
	if url == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}
	return &WebhookNotifier{
		url: url,
		client: &http.Client{
			Timeout: webhookTimeout,
		},
	}, nil
}

// Notify posts one message as a JSON payload with a single content field.
// Any status >= 400 is treated as a delivery failure.
func (n *WebhookNotifier) Notify(message string) error {
	payload, err := json.Marshal(map[string]string{
		"content": message,
	})
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook error (status %d)", resp.StatusCode)
	}

	return nil
}
