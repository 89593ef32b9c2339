// Package prefs turns the per-user notification preference blob into a
// typed structure and answers the question "may this channel fire for
// this user and resource type right now".
//
// Preferences are stored as free-form JSON on the user record. They are
// parsed exactly once at the dispatch boundary; everything downstream
// works with the typed form instead of probing nested maps.
package prefs

import (
	"sky-herald.io/herald/internal/domain"
)

// ChannelPrefs holds the per-channel settings under one resource type.
type ChannelPrefs struct {
	Active bool

	// OnShift gates sms/phone/whatsapp on active shift membership.
	OnShift bool

	// TimeSlot is a [startHour, endHour] UTC window, inclusive on both
	// ends, wrapping past midnight when start > end. Nil means no
	// window is configured.
	TimeSlot []int
}

// HasTimeSlot reports whether a usable two-element window is configured.
func (c ChannelPrefs) HasTimeSlot() bool {
	return len(c.TimeSlot) == 2
}

// GcnFilterSet is one named entry under gcn_events.properties. Each
// condition is optional; absence means pass. Property filter strings
// stay raw here and are parsed at evaluation time, where a malformed
// string is a hard error.
type GcnFilterSet struct {
	NoticeTypes            []string
	Tags                   []string
	Properties             []string
	LocalizationTags       []string
	LocalizationProperties []string
}

// ResourcePrefs holds the settings for one resource type. The GCN
// fields are only populated for the gcn_events resource type.
type ResourcePrefs struct {
	Active   bool
	Channels map[domain.Channel]ChannelPrefs

	NewTags bool
	// FilterSets maps a user-chosen name to a GCN subscription predicate.
	FilterSets map[string]GcnFilterSet
}

// Channel returns the channel settings, zero-valued when absent.
func (r ResourcePrefs) Channel(ch domain.Channel) ChannelPrefs {
	return r.Channels[ch]
}

// SlackIntegration is the user's personal Slack webhook configuration.
type SlackIntegration struct {
	Active bool
	URL    string
}

// UserPreferences is the parsed form of the preference blob.
type UserPreferences struct {
	// HasNotifications distinguishes "notifications key absent" from
	// "present but empty"; the resolver refuses to notify when absent.
	HasNotifications bool
	Notifications    map[domain.ResourceType]ResourcePrefs
	Slack            SlackIntegration
}

// Resource returns the per-resource-type settings, zero-valued when absent.
func (p *UserPreferences) Resource(rt domain.ResourceType) ResourcePrefs {
	if p == nil {
		return ResourcePrefs{}
	}
	return p.Notifications[rt]
}

// Parse converts a raw preference blob into UserPreferences. Entries of
// the wrong shape are treated as absent rather than rejected; a corrupt
// preference should silence a channel, not fail the whole user.
func Parse(raw map[string]interface{}) *UserPreferences {
	p := &UserPreferences{
		Notifications: make(map[domain.ResourceType]ResourcePrefs),
	}
	if raw == nil {
		return p
	}

	if slack, ok := raw["slack_integration"].(map[string]interface{}); ok {
		p.Slack.Active = boolAt(slack, "active")
		p.Slack.URL, _ = slack["url"].(string)
	}

	notifications, ok := raw["notifications"].(map[string]interface{})
	if !ok {
		return p
	}
	p.HasNotifications = true

	for key, v := range notifications {
		entry, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		rt := domain.ResourceType(key)
		rp := ResourcePrefs{
			Active:   boolAt(entry, "active"),
			Channels: make(map[domain.Channel]ChannelPrefs),
		}
		for _, ch := range []domain.Channel{
			domain.ChannelPush, domain.ChannelEmail, domain.ChannelSMS,
			domain.ChannelPhone, domain.ChannelWhatsApp, domain.ChannelSlack,
		} {
			chEntry, ok := entry[string(ch)].(map[string]interface{})
			if !ok {
				continue
			}
			rp.Channels[ch] = ChannelPrefs{
				Active:   boolAt(chEntry, "active"),
				OnShift:  boolAt(chEntry, "on_shift"),
				TimeSlot: intsAt(chEntry, "time_slot"),
			}
		}
		if rt == domain.ResourceGcnEvents {
			rp.NewTags = boolAt(entry, "new_tags")
			rp.FilterSets = parseFilterSets(entry)
		}
		p.Notifications[rt] = rp
	}
	return p
}

func parseFilterSets(entry map[string]interface{}) map[string]GcnFilterSet {
	propsRaw, ok := entry["properties"].(map[string]interface{})
	if !ok {
		return nil
	}
	sets := make(map[string]GcnFilterSet, len(propsRaw))
	for name, v := range propsRaw {
		setEntry, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		sets[name] = GcnFilterSet{
			NoticeTypes:            stringsAt(setEntry, "gcn_notice_types"),
			Tags:                   stringsAt(setEntry, "gcn_tags"),
			Properties:             stringsAt(setEntry, "gcn_properties"),
			LocalizationTags:       stringsAt(setEntry, "localization_tags"),
			LocalizationProperties: stringsAt(setEntry, "localization_properties"),
		}
	}
	return sets
}

func boolAt(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func stringsAt(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// intsAt accepts both float64 (JSON numbers) and int elements.
func intsAt(m map[string]interface{}, key string) []int {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		}
	}
	return out
}
