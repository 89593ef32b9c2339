package prefs

import (
	"context"
	"os"
	"testing"
	"time"

	"sky-herald.io/herald/internal/config"
	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func fullNotifierConfig() config.NotifierConfig {
	return config.NotifierConfig{
		EmailService:     "ses",
		TwilioAccountSID: "AC00000000000000000000000000000000",
		TwilioAuthToken:  "token",
		SlackURLPreamble: "https://hooks.slack.com/services/",
	}
}

func activePrefs(rt string, channels ...string) map[string]interface{} {
	entry := map[string]interface{}{"active": true}
	for _, ch := range channels {
		entry[ch] = map[string]interface{}{"active": true}
	}
	return map[string]interface{}{
		"notifications": map[string]interface{}{rt: entry},
	}
}

func TestParse_EmptyAndMalformed(t *testing.T) {
	p := Parse(nil)
	if p.HasNotifications {
		t.Fatal("nil blob should not report notifications")
	}

	// Wrong shapes are treated as absent, never as errors.
	p = Parse(map[string]interface{}{
		"notifications": map[string]interface{}{
			"sources": "not-a-map",
			"gcn_events": map[string]interface{}{
				"active":     true,
				"properties": []interface{}{"not-a-map"},
			},
		},
		"slack_integration": "not-a-map",
	})
	if !p.HasNotifications {
		t.Fatal("notifications key present, HasNotifications should be true")
	}
	if _, ok := p.Notifications[domain.ResourceSources]; ok {
		t.Error("malformed sources entry should be dropped")
	}
	gcn := p.Resource(domain.ResourceGcnEvents)
	if !gcn.Active || gcn.FilterSets != nil {
		t.Errorf("gcn_events = %+v, want active with no filter sets", gcn)
	}
}

func TestParse_GcnFilterSets(t *testing.T) {
	p := Parse(map[string]interface{}{
		"notifications": map[string]interface{}{
			"gcn_events": map[string]interface{}{
				"active":   true,
				"new_tags": true,
				"properties": map[string]interface{}{
					"grb": map[string]interface{}{
						"gcn_notice_types": []interface{}{"FERMI_GBM_FIN_POS"},
						"gcn_tags":         []interface{}{"GRB"},
						"gcn_properties":   []interface{}{"far:1e-8:lt"},
					},
				},
			},
		},
	})

	gcn := p.Resource(domain.ResourceGcnEvents)
	if !gcn.NewTags {
		t.Error("new_tags not parsed")
	}
	set, ok := gcn.FilterSets["grb"]
	if !ok {
		t.Fatal("filter set 'grb' missing")
	}
	if len(set.NoticeTypes) != 1 || set.NoticeTypes[0] != "FERMI_GBM_FIN_POS" {
		t.Errorf("NoticeTypes = %v", set.NoticeTypes)
	}
	if len(set.Properties) != 1 || set.Properties[0] != "far:1e-8:lt" {
		t.Errorf("Properties = %v", set.Properties)
	}
}

func TestResolve_ChannelAvailabilityAndContacts(t *testing.T) {
	target := domain.NotificationTarget{
		User: domain.UserRef{
			ID:           1,
			ContactEmail: "ops@example.com",
			ContactPhone: "+15550100",
			Preferences:  activePrefs("sources", "email", "sms"),
		},
	}

	tests := []struct {
		name    string
		cfg     config.NotifierConfig
		channel domain.Channel
		want    bool
	}{
		{"email with service configured", fullNotifierConfig(), domain.ChannelEmail, true},
		{"email without service", config.NotifierConfig{}, domain.ChannelEmail, false},
		{"sms with twilio configured", fullNotifierConfig(), domain.ChannelSMS, true},
		{"sms without twilio", config.NotifierConfig{EmailService: "ses"}, domain.ChannelSMS, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewResolver(tt.cfg).Resolve(target, tt.channel, domain.ResourceSources)
			if (got != nil) != tt.want {
				t.Errorf("Resolve() eligible = %v, want %v", got != nil, tt.want)
			}
		})
	}

	// Missing contact details always disqualify.
	noEmail := target
	noEmail.User.ContactEmail = ""
	if NewResolver(fullNotifierConfig()).Resolve(noEmail, domain.ChannelEmail, domain.ResourceSources) != nil {
		t.Error("email should require contact_email")
	}
	noPhone := target
	noPhone.User.ContactPhone = ""
	if NewResolver(fullNotifierConfig()).Resolve(noPhone, domain.ChannelSMS, domain.ResourceSources) != nil {
		t.Error("sms should require contact_phone")
	}
}

func TestResolve_GroupAdmissionEmailBypassesPreferences(t *testing.T) {
	r := NewResolver(fullNotifierConfig())
	target := domain.NotificationTarget{
		User: domain.UserRef{ID: 7, ContactEmail: "admin@example.com"},
	}

	// No notification preferences configured at all.
	if r.Resolve(target, domain.ChannelEmail, domain.ResourceGroupAdmissionRequest) == nil {
		t.Error("group admission email must bypass preference lookup")
	}
	// The bypass is email-only.
	if r.Resolve(target, domain.ChannelPush, domain.ResourceGroupAdmissionRequest) != nil {
		t.Error("non-email channels still go through preferences")
	}
}

func TestResolve_Slack(t *testing.T) {
	r := NewResolver(fullNotifierConfig())
	mk := func(active bool, url string) domain.NotificationTarget {
		return domain.NotificationTarget{
			User: domain.UserRef{
				ID: 3,
				Preferences: map[string]interface{}{
					"slack_integration": map[string]interface{}{"active": active, "url": url},
				},
			},
		}
	}

	if r.Resolve(mk(true, "https://hooks.slack.com/services/T0/B0/x"), domain.ChannelSlack, domain.ResourceSources) == nil {
		t.Error("allow-listed webhook URL should be eligible")
	}
	if r.Resolve(mk(true, "https://evil.example.com/hook"), domain.ChannelSlack, domain.ResourceSources) != nil {
		t.Error("off-list webhook URL must be rejected")
	}
	if r.Resolve(mk(false, "https://hooks.slack.com/services/T0/B0/x"), domain.ChannelSlack, domain.ResourceSources) != nil {
		t.Error("inactive slack integration must not fire")
	}
}

func TestResolve_UnrecognizedResourceType(t *testing.T) {
	r := NewResolver(fullNotifierConfig())
	target := domain.NotificationTarget{
		User: domain.UserRef{
			ID:           1,
			ContactEmail: "ops@example.com",
			Preferences:  activePrefs("sources", "email"),
		},
	}

	for _, rt := range []domain.ResourceType{"comments", "vm_events", "weird"} {
		if r.Resolve(target, domain.ChannelEmail, rt) != nil {
			t.Errorf("resource type %q should never be eligible", rt)
		}
	}
	if r.Resolve(target, domain.ChannelEmail, "") != nil {
		t.Error("empty resource type should never be eligible")
	}
	if r.Resolve(target, "", domain.ResourceSources) != nil {
		t.Error("empty channel should never be eligible")
	}
}

func TestResolve_RequiresActiveAtEveryLevel(t *testing.T) {
	r := NewResolver(fullNotifierConfig())
	mk := func(blob map[string]interface{}) domain.NotificationTarget {
		return domain.NotificationTarget{
			User: domain.UserRef{ID: 1, ContactEmail: "ops@example.com", Preferences: blob},
		}
	}

	// Resource type inactive.
	blob := activePrefs("sources", "email")
	blob["notifications"].(map[string]interface{})["sources"].(map[string]interface{})["active"] = false
	if r.Resolve(mk(blob), domain.ChannelEmail, domain.ResourceSources) != nil {
		t.Error("inactive resource type must not fire")
	}

	// Channel missing entirely.
	if r.Resolve(mk(activePrefs("sources")), domain.ChannelEmail, domain.ResourceSources) != nil {
		t.Error("missing channel block must not fire")
	}

	// No notifications key at all.
	if r.Resolve(mk(map[string]interface{}{}), domain.ChannelEmail, domain.ResourceSources) != nil {
		t.Error("absent notifications mapping must not fire")
	}
}

type staticShifts struct{ onShift bool }

func (s staticShifts) OnShiftNow(context.Context, int, time.Time) (bool, error) {
	return s.onShift, nil
}

func TestFiresNow_TimeSlot(t *testing.T) {
	mkPrefs := func(slot []interface{}) *UserPreferences {
		entry := map[string]interface{}{
			"active": true,
			"sms":    map[string]interface{}{"active": true, "time_slot": slot},
		}
		return Parse(map[string]interface{}{
			"notifications": map[string]interface{}{"sources": entry},
		})
	}
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 1, hour, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		slot []interface{}
		hour int
		want bool
	}{
		{"wrapping slot, inside after midnight boundary", []interface{}{float64(22), float64(6)}, 23, true},
		{"wrapping slot, inside early morning", []interface{}{float64(22), float64(6)}, 6, true},
		{"wrapping slot, outside", []interface{}{float64(22), float64(6)}, 12, false},
		{"plain slot, inside", []interface{}{float64(6), float64(22)}, 12, true},
		{"plain slot, outside", []interface{}{float64(6), float64(22)}, 23, false},
		{"plain slot, inclusive ends", []interface{}{float64(6), float64(22)}, 22, true},
		{"no slot configured", nil, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FiresNow(context.Background(), mkPrefs(tt.slot), domain.ResourceSources, domain.ChannelSMS, 1, at(tt.hour), staticShifts{})
			if got != tt.want {
				t.Errorf("FiresNow(hour=%d, slot=%v) = %v, want %v", tt.hour, tt.slot, got, tt.want)
			}
		})
	}
}

func TestFiresNow_OnShift(t *testing.T) {
	p := Parse(map[string]interface{}{
		"notifications": map[string]interface{}{
			"sources": map[string]interface{}{
				"active": true,
				"sms":    map[string]interface{}{"active": true, "on_shift": true},
			},
		},
	})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if !FiresNow(context.Background(), p, domain.ResourceSources, domain.ChannelSMS, 1, now, staticShifts{onShift: true}) {
		t.Error("on-shift user should fire")
	}
	if FiresNow(context.Background(), p, domain.ResourceSources, domain.ChannelSMS, 1, now, staticShifts{onShift: false}) {
		t.Error("off-shift user with no time slot should not fire")
	}
}
