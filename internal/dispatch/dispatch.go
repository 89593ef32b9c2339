// Package dispatch fans one persisted notification out across the
// delivery channels. Channels are attempted sequentially in a fixed
// order and are fully isolated: a provider failure is logged and
// swallowed so the remaining channels still run.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
	"sky-herald.io/herald/internal/prefs"
	"sky-herald.io/herald/internal/provider"
)

// PushEventName is the real-time event emitted to refresh the
// recipient's notification inbox.
const PushEventName = "FETCH_NOTIFICATIONS"

// Providers bundles the outbound adapters. Nil entries disable their
// channels; the resolver blocks them first in normal configurations.
type Providers struct {
	Email  provider.EmailSender
	Texter provider.Texter
	Slack  provider.SlackPoster
	Pusher provider.Pusher
}

// Dispatcher delivers one notification target per call.
type Dispatcher struct {
	resolver  *prefs.Resolver
	shifts    prefs.ShiftLookup
	providers Providers
	appTitle  string

	now func() time.Time
}

// NewDispatcher wires the resolver, shift lookup, and provider adapters.
func NewDispatcher(resolver *prefs.Resolver, shifts prefs.ShiftLookup, providers Providers, appTitle string) *Dispatcher {
	return &Dispatcher{
		resolver:  resolver,
		shifts:    shifts,
		providers: providers,
		appTitle:  appTitle,
		now:       time.Now,
	}
}

// Dispatch attempts every channel for the target. Nothing is returned:
// per-channel outcomes are logged, and a failure on one channel must
// never prevent the others from being attempted.
func (d *Dispatcher) Dispatch(ctx context.Context, target domain.NotificationTarget) {
	resourceType := target.ResourceType()

	d.attemptPush(ctx, target)
	d.attemptCall(ctx, target, resourceType)
	d.attemptSMS(ctx, target, resourceType)
	d.attemptWhatsApp(ctx, target, resourceType)
	d.attemptEmail(ctx, target, resourceType)
	d.attemptSlack(ctx, target, resourceType)
}

// attemptPush refreshes the in-app inbox. Push has no preference
// gating; the record already exists, the frontend just needs to fetch it.
func (d *Dispatcher) attemptPush(ctx context.Context, target domain.NotificationTarget) {
	if d.providers.Pusher == nil {
		return
	}
	if err := d.providers.Pusher.Push(ctx, target.User.ID, PushEventName); err != nil {
		d.logFailure(target, domain.ChannelPush, err)
	}
}

func (d *Dispatcher) attemptCall(ctx context.Context, target domain.NotificationTarget, resourceType domain.ResourceType) {
	p := d.resolver.Resolve(target, domain.ChannelPhone, resourceType)
	if p == nil || d.providers.Texter == nil {
		return
	}
	if !prefs.FiresNow(ctx, p, resourceType, domain.ChannelPhone, target.User.ID, d.now(), d.shifts) {
		return
	}
	if err := d.providers.Texter.SendCall(ctx, target.User.ContactPhone, target.Text); err != nil {
		d.logFailure(target, domain.ChannelPhone, err)
	}
}

func (d *Dispatcher) attemptSMS(ctx context.Context, target domain.NotificationTarget, resourceType domain.ResourceType) {
	p := d.resolver.Resolve(target, domain.ChannelSMS, resourceType)
	if p == nil || d.providers.Texter == nil {
		return
	}
	if !prefs.FiresNow(ctx, p, resourceType, domain.ChannelSMS, target.User.ID, d.now(), d.shifts) {
		return
	}
	if err := d.providers.Texter.SendSMS(ctx, target.User.ContactPhone, target.Text); err != nil {
		d.logFailure(target, domain.ChannelSMS, err)
	}
}

func (d *Dispatcher) attemptWhatsApp(ctx context.Context, target domain.NotificationTarget, resourceType domain.ResourceType) {
	p := d.resolver.Resolve(target, domain.ChannelWhatsApp, resourceType)
	if p == nil || d.providers.Texter == nil {
		return
	}
	if !prefs.FiresNow(ctx, p, resourceType, domain.ChannelWhatsApp, target.User.ID, d.now(), d.shifts) {
		return
	}
	if err := d.providers.Texter.SendWhatsApp(ctx, target.User.ContactPhone, target.Text); err != nil {
		d.logFailure(target, domain.ChannelWhatsApp, err)
	}
}

// attemptEmail fires whenever the resolver allows it; email carries no
// time or shift gating.
func (d *Dispatcher) attemptEmail(ctx context.Context, target domain.NotificationTarget, resourceType domain.ResourceType) {
	p := d.resolver.Resolve(target, domain.ChannelEmail, resourceType)
	if p == nil || d.providers.Email == nil {
		return
	}
	subject := fmt.Sprintf("%s notification", d.appTitle)
	if err := d.providers.Email.SendEmail(ctx, []string{target.User.ContactEmail}, subject, target.Text); err != nil {
		d.logFailure(target, domain.ChannelEmail, err)
	}
}

func (d *Dispatcher) attemptSlack(ctx context.Context, target domain.NotificationTarget, resourceType domain.ResourceType) {
	p := d.resolver.Resolve(target, domain.ChannelSlack, resourceType)
	if p == nil || d.providers.Slack == nil {
		return
	}
	if err := d.providers.Slack.PostWebhook(ctx, p.Slack.URL, target.Text); err != nil {
		d.logFailure(target, domain.ChannelSlack, err)
	}
}

func (d *Dispatcher) logFailure(target domain.NotificationTarget, channel domain.Channel, err error) {
	logger.Error("Channel delivery failed",
		zap.Int("user_id", target.User.ID),
		zap.String("channel", string(channel)),
		zap.String("notification_type", target.NotificationType),
		zap.String("text", target.Text),
		zap.Error(err),
	)
}
