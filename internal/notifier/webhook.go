package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// webhookNotifier POSTs order summaries as JSON to a chat webhook URL.
type webhookNotifier struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// webhookPayload is the message body, in the shape chat webhooks expect.
type webhookPayload struct {
	Text string `json:"text"`
}

// NewWebhook creates a webhook notifier with a bounded request timeout.
func NewWebhook(url string, timeout time.Duration, logger zerolog.Logger) Notifier {
	return &webhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "webhook-notifier").Logger(),
	}
}

// Notify POSTs the text to the webhook. Any non-2xx response is an error.
func (n *webhookNotifier) Notify(ctx context.Context, text string) error {
	body, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn().Err(err).Msg("webhook request failed")
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.logger.Warn().Int("status", resp.StatusCode).Msg("webhook returned non-success status")
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	n.logger.Debug().Int("status", resp.StatusCode).Msg("order notification delivered")
	return nil
}
