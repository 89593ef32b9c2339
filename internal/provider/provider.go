// Package provider wraps the outbound delivery services behind narrow
// send interfaces. Each adapter makes exactly one outbound call per
// send; retries and eligibility decisions belong to the dispatcher.
package provider

import "context"

// EmailSender delivers one email to a list of recipients.
type EmailSender interface {
	SendEmail(ctx context.Context, recipients []string, subject, body string) error
}

// Texter delivers SMS, voice call, and WhatsApp messages.
type Texter interface {
	SendSMS(ctx context.Context, to, body string) error
	SendCall(ctx context.Context, to, body string) error
	SendWhatsApp(ctx context.Context, to, body string) error
}

// SlackPoster posts one message to a user-supplied webhook URL.
type SlackPoster interface {
	PostWebhook(ctx context.Context, url, text string) error
}

// Pusher emits a real-time event to a connected frontend session.
type Pusher interface {
	Push(ctx context.Context, userID int, eventName string) error
}
