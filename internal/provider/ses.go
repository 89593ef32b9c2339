package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESEmailSender sends email through Amazon SES.
type SESEmailSender struct {
	client *ses.Client
	from   string
}

// NewSESEmailSender loads the default AWS credential chain for the
// given region.
func NewSESEmailSender(ctx context.Context, region, from string) (*SESEmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESEmailSender{client: ses.NewFromConfig(cfg), from: from}, nil
}

// SendEmail sends one plain-text email to the recipients.
func (s *SESEmailSender) SendEmail(ctx context.Context, recipients []string, subject, body string) error {
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: recipients,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}

var _ EmailSender = (*SESEmailSender)(nil)
