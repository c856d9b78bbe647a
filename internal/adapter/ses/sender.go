// Package ses delivers campaign email through Amazon SES.
package ses

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"localreach/internal/core/port"
)

// API is the part of the SES v2 client the sender uses.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender implements port.EmailSender. SES has no bulk send for individual
// recipients, so one message is sent per address, in order.
type Sender struct {
	api              API
	from             string
	configurationSet string
	logger           *slog.Logger
}

// NewSender creates a Sender sending from the given address. An empty
// configurationSet sends without one.
func NewSender(api API, from, configurationSet string, logger *slog.Logger) *Sender {
	return &Sender{api: api, from: from, configurationSet: configurationSet, logger: logger}
}

// Send stops at the first rejected recipient, or once ctx is done, and
// returns a *port.DeliveryError counting the recipients accepted before it.
// Every message carries the idempotency key as its campaign_id tag.
func (s *Sender) Send(ctx context.Context, msg port.EmailMessage) error {
	for i, to := range msg.Recipients {
		if err := ctx.Err(); err != nil {
			return &port.DeliveryError{Accepted: i, Err: fmt.Errorf("stopped before recipient %d: %w", i+1, err)}
		}
		out, err := s.api.SendEmail(ctx, s.input(msg, to))
		if err != nil {
			return &port.DeliveryError{Accepted: i, Err: fmt.Errorf("send to recipient %d: %w", i+1, err)}
		}
		s.logger.Debug("email accepted",
			slog.String("campaign_id", msg.IdempotencyKey),
			slog.String("message_id", aws.ToString(out.MessageId)),
		)
	}
	s.logger.Info("campaign email delivered",
		slog.String("campaign_id", msg.IdempotencyKey),
		slog.Int("recipients", len(msg.Recipients)),
	)
	return nil
}

func (s *Sender) input(msg port.EmailMessage, to string) *sesv2.SendEmailInput {
	in := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if msg.IdempotencyKey != "" {
		in.EmailTags = []types.MessageTag{
			{Name: aws.String("campaign_id"), Value: aws.String(msg.IdempotencyKey)},
		}
	}
	if s.configurationSet != "" {
		in.ConfigurationSetName = aws.String(s.configurationSet)
	}
	return in
}
