package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSlackWebhook_PostWebhook(t *testing.T) {
	var got slackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := NewSlackWebhook().PostWebhook(context.Background(), srv.URL, "New GCN event"); err != nil {
		t.Fatalf("PostWebhook() error = %v", err)
	}
	if got.Text != "New GCN event" {
		t.Errorf("posted text = %q", got.Text)
	}
}

func TestSlackWebhook_PostWebhook_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_token", http.StatusForbidden)
	}))
	defer srv.Close()

	if err := NewSlackWebhook().PostWebhook(context.Background(), srv.URL, "hi"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestPushRelay_Push(t *testing.T) {
	var got pushPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := NewPushRelay(srv.URL).Push(context.Background(), 42, "FETCH_NOTIFICATIONS"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if got.UserID != 42 || got.EventName != "FETCH_NOTIFICATIONS" {
		t.Errorf("payload = %+v", got)
	}
}

func TestPushRelay_Push_NoURLIsNoOp(t *testing.T) {
	if err := NewPushRelay("").Push(context.Background(), 42, "FETCH_NOTIFICATIONS"); err != nil {
		t.Fatalf("Push() with empty relay URL should no-op, got %v", err)
	}
}
