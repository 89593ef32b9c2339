package dispatch

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"sky-herald.io/herald/internal/config"
	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/prefs"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

// recorder captures every provider call in invocation order.
type recorder struct {
	calls    []string
	emailErr error
	smsErr   error
}

func (r *recorder) SendEmail(_ context.Context, _ []string, _, _ string) error {
	r.calls = append(r.calls, "email")
	return r.emailErr
}

func (r *recorder) SendSMS(_ context.Context, _, _ string) error {
	r.calls = append(r.calls, "sms")
	return r.smsErr
}

func (r *recorder) SendCall(_ context.Context, _, _ string) error {
	r.calls = append(r.calls, "phone")
	return nil
}

func (r *recorder) SendWhatsApp(_ context.Context, _, _ string) error {
	r.calls = append(r.calls, "whatsapp")
	return nil
}

func (r *recorder) PostWebhook(_ context.Context, _, _ string) error {
	r.calls = append(r.calls, "slack")
	return nil
}

func (r *recorder) Push(_ context.Context, _ int, _ string) error {
	r.calls = append(r.calls, "push")
	return nil
}

type alwaysOnShift struct{}

func (alwaysOnShift) OnShiftNow(context.Context, int, time.Time) (bool, error) { return true, nil }

func notifierConfig() config.NotifierConfig {
	return config.NotifierConfig{
		EmailService:     "ses",
		TwilioAccountSID: "AC00000000000000000000000000000000",
		TwilioAuthToken:  "token",
		SlackURLPreamble: "https://hooks.slack.com/services/",
	}
}

func allChannelTarget() domain.NotificationTarget {
	channelOn := func(extra map[string]interface{}) map[string]interface{} {
		entry := map[string]interface{}{"active": true}
		for k, v := range extra {
			entry[k] = v
		}
		return entry
	}
	return domain.NotificationTarget{
		ID: 1,
		User: domain.UserRef{
			ID:           9,
			Username:     "observer",
			ContactEmail: "observer@example.com",
			ContactPhone: "+15550100",
			Preferences: map[string]interface{}{
				"notifications": map[string]interface{}{
					"sources": map[string]interface{}{
						"active":   true,
						"email":    channelOn(nil),
						"sms":      channelOn(map[string]interface{}{"on_shift": true}),
						"phone":    channelOn(map[string]interface{}{"on_shift": true}),
						"whatsapp": channelOn(map[string]interface{}{"on_shift": true}),
						"slack":    channelOn(nil),
					},
				},
				"slack_integration": map[string]interface{}{
					"active": true,
					"url":    "https://hooks.slack.com/services/T0/B0/x",
				},
			},
		},
		NotificationType: "sources_new_classification",
		Text:             "New classification *Ia* for source *ZTF21abc*",
		URL:              "/source/ZTF21abc",
	}
}

func newTestDispatcher(rec *recorder) *Dispatcher {
	return NewDispatcher(
		prefs.NewResolver(notifierConfig()),
		alwaysOnShift{},
		Providers{Email: rec, Texter: rec, Slack: rec, Pusher: rec},
		"Sky Herald",
	)
}

func TestDispatch_FixedChannelOrder(t *testing.T) {
	rec := &recorder{}
	d := newTestDispatcher(rec)

	d.Dispatch(context.Background(), allChannelTarget())

	want := []string{"push", "phone", "sms", "whatsapp", "email", "slack"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", rec.calls, want)
		}
	}
}

func TestDispatch_ChannelFailureDoesNotStopSiblings(t *testing.T) {
	rec := &recorder{emailErr: errors.New("smtp down"), smsErr: errors.New("twilio down")}
	d := newTestDispatcher(rec)

	d.Dispatch(context.Background(), allChannelTarget())

	// Every channel still attempted despite the email and sms failures.
	want := []string{"push", "phone", "sms", "whatsapp", "email", "slack"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestDispatch_SMSNeverFiresWithoutShiftOrTimeSlot(t *testing.T) {
	rec := &recorder{}
	d := newTestDispatcher(rec)

	target := allChannelTarget()
	sources := target.User.Preferences["notifications"].(map[string]interface{})["sources"].(map[string]interface{})
	for _, ch := range []string{"sms", "phone", "whatsapp"} {
		sources[ch] = map[string]interface{}{"active": true}
	}

	d.Dispatch(context.Background(), target)

	for _, call := range rec.calls {
		if call == "sms" || call == "phone" || call == "whatsapp" {
			t.Fatalf("%s fired without on_shift or time_slot configured", call)
		}
	}
	// Email and slack carry no time gating and still fire.
	found := map[string]bool{}
	for _, call := range rec.calls {
		found[call] = true
	}
	if !found["email"] || !found["slack"] || !found["push"] {
		t.Fatalf("expected push, email, and slack, got %v", rec.calls)
	}
}

func TestDispatch_IneligibleChannelsSilentlySkip(t *testing.T) {
	rec := &recorder{}
	d := newTestDispatcher(rec)

	target := allChannelTarget()
	target.User.Preferences = map[string]interface{}{} // nothing configured

	d.Dispatch(context.Background(), target)

	// Only the ungated push channel runs.
	if len(rec.calls) != 1 || rec.calls[0] != "push" {
		t.Fatalf("calls = %v, want only push", rec.calls)
	}
}

func TestDispatch_GroupAdmissionEmailsWithoutPreferences(t *testing.T) {
	rec := &recorder{}
	d := newTestDispatcher(rec)

	target := domain.NotificationTarget{
		ID: 2,
		User: domain.UserRef{
			ID:           4,
			ContactEmail: "admin@example.com",
		},
		NotificationType: "group_admission_request",
		Text:             "*someone* requested to join group *Partner Survey*",
		URL:              "/group/12",
	}

	d.Dispatch(context.Background(), target)

	foundEmail := false
	for _, call := range rec.calls {
		if call == "email" {
			foundEmail = true
		}
	}
	if !foundEmail {
		t.Fatalf("group admission must email admins regardless of preferences, calls = %v", rec.calls)
	}
}
