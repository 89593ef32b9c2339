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

// PushRelay forwards real-time refresh events to the frontend broadcast
// service. The relay fans the event out to the user's open sessions.
type PushRelay struct {
	url        string
	httpClient *http.Client
}

// NewPushRelay creates a push adapter for the given relay endpoint.
func NewPushRelay(url string) *PushRelay {
	return &PushRelay{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type pushPayload struct {
	UserID    int    `json:"user_id"`
	EventName string `json:"event_name"`
}

// Push emits one event for the user.
func (p *PushRelay) Push(ctx context.Context, userID int, eventName string) error {
	if p.url == "" {
		return nil
	}

	body, err := json.Marshal(pushPayload{UserID: userID, EventName: eventName})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post push event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push relay returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

var _ Pusher = (*PushRelay)(nil)
