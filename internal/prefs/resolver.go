package prefs

import (
	"strings"

	"go.uber.org/zap"

	"sky-herald.io/herald/internal/config"
	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
)

// Resolver decides whether a channel may fire for a notification target.
// Process-wide provider availability is captured once at construction;
// per-user state comes from the target itself.
type Resolver struct {
	emailConfigured  bool
	twilioConfigured bool
	slackPreamble    string
}

// NewResolver derives channel availability from the notifier config.
func NewResolver(cfg config.NotifierConfig) *Resolver {
	return &Resolver{
		emailConfigured:  cfg.EmailService != "",
		twilioConfigured: cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "",
		slackPreamble:    cfg.SlackURLPreamble,
	}
}

// Resolve returns the target user's parsed preferences when the channel
// is eligible for the resource type, or nil when it must not fire.
// Ineligibility is a silent no-op for the caller, never an error.
func (r *Resolver) Resolve(target domain.NotificationTarget, channel domain.Channel, resourceType domain.ResourceType) *UserPreferences {
	if channel == "" || resourceType == "" || target.User.ID == 0 {
		return nil
	}

	// Process-wide channel availability.
	switch channel {
	case domain.ChannelEmail:
		if !r.emailConfigured {
			return nil
		}
	case domain.ChannelSMS, domain.ChannelPhone, domain.ChannelWhatsApp:
		if !r.twilioConfigured {
			return nil
		}
	}

	// Per-user contact prerequisites.
	switch channel {
	case domain.ChannelEmail:
		if target.User.ContactEmail == "" {
			return nil
		}
	case domain.ChannelSMS, domain.ChannelPhone, domain.ChannelWhatsApp:
		if target.User.ContactPhone == "" {
			return nil
		}
	}

	parsed := Parse(target.User.Preferences)

	// Group admins must always be emailed about admission requests,
	// regardless of their own preference settings.
	if resourceType == domain.ResourceGroupAdmissionRequest && channel == domain.ChannelEmail {
		return parsed
	}

	if channel == domain.ChannelSlack {
		if !parsed.Slack.Active {
			return nil
		}
		if !strings.HasPrefix(parsed.Slack.URL, r.slackPreamble) {
			logger.Warn("Slack webhook URL rejected by allow-list preamble",
				zap.Int("user_id", target.User.ID),
			)
			return nil
		}
		return parsed
	}

	if !parsed.HasNotifications {
		return nil
	}
	if !domain.RecognizedResourceType(resourceType) {
		return nil
	}
	rp := parsed.Resource(resourceType)
	if !rp.Active || !rp.Channel(channel).Active {
		return nil
	}
	return parsed
}
