package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SlackWebhook posts messages to user-supplied incoming-webhook URLs.
// URL validation against the allow-list preamble happens in the
// preference resolver before this adapter is reached.
type SlackWebhook struct {
	httpClient *http.Client
}

// NewSlackWebhook creates a webhook poster with a bounded timeout.
func NewSlackWebhook() *SlackWebhook {
	return &SlackWebhook{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

// PostWebhook sends one message to the webhook URL.
func (s *SlackWebhook) PostWebhook(ctx context.Context, url, text string) error {
	body, err := json.Marshal(slackPayload{Text: text})
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack webhook returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

var _ SlackPoster = (*SlackWebhook)(nil)
