package provider

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"sky-herald.io/herald/internal/config"
)

// TwilioTexter delivers SMS, voice calls, and WhatsApp messages through
// the Twilio REST API.
type TwilioTexter struct {
	client       *twilio.RestClient
	fromNumber   string
	whatsAppFrom string
}

// NewTwilioTexter builds a Twilio client from the notifier config.
func NewTwilioTexter(cfg config.NotifierConfig) *TwilioTexter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return &TwilioTexter{
		client:       client,
		fromNumber:   cfg.TwilioFromNumber,
		whatsAppFrom: cfg.TwilioWhatsAppFrom,
	}
}

// SendSMS sends one text message.
func (t *TwilioTexter) SendSMS(_ context.Context, to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(body)
	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send sms: %w", err)
	}
	return nil
}

// SendCall places one voice call that reads the body aloud.
func (t *TwilioTexter) SendCall(_ context.Context, to, body string) error {
	params := &twilioapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetTwiml(fmt.Sprintf("<Response><Say>%s</Say></Response>", body))
	if _, err := t.client.Api.CreateCall(params); err != nil {
		return fmt.Errorf("twilio place call: %w", err)
	}
	return nil
}

// SendWhatsApp sends one WhatsApp message via the Twilio channel address.
func (t *TwilioTexter) SendWhatsApp(_ context.Context, to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + t.whatsAppFrom)
	params.SetBody(body)
	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send whatsapp: %w", err)
	}
	return nil
}

var _ Texter = (*TwilioTexter)(nil)
