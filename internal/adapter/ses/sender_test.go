package ses

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localreach/internal/core/port"
)

type fakeAPI struct {
	inputs []*sesv2.SendEmailInput
	failOn int
	// afterSend runs after every accepted message.
	afterSend func()
}

func (f *fakeAPI) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.afterSend != nil {
		defer f.afterSend()
	}
	if f.failOn > 0 && len(f.inputs) == f.failOn {
		return nil, errors.New("throttling: maximum sending rate exceeded")
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("mid")}, nil
}

func testMessage() port.EmailMessage {
	return port.EmailMessage{
		Subject:        "This week",
		HTML:           "<p>hi</p>",
		Recipients:     []string{"a@example.com", "b@example.com", "c@example.com"},
		IdempotencyKey: "campaign-1",
	}
}

func TestSendEveryRecipient(t *testing.T) {
	api := &fakeAPI{}
	s := NewSender(api, "news@example.com", "marketing", slog.New(slog.DiscardHandler))

	require.NoError(t, s.Send(context.Background(), testMessage()))
	require.Len(t, api.inputs, 3)

	in := api.inputs[1]
	assert.Equal(t, "news@example.com", aws.ToString(in.FromEmailAddress))
	assert.Equal(t, []string{"b@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "This week", aws.ToString(in.Content.Simple.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(in.Content.Simple.Body.Html.Data))
	assert.Equal(t, "marketing", aws.ToString(in.ConfigurationSetName))
	require.Len(t, in.EmailTags, 1)
	assert.Equal(t, "campaign-1", aws.ToString(in.EmailTags[0].Value))
}

func TestSendReportsPartialDelivery(t *testing.T) {
	api := &fakeAPI{failOn: 2}
	s := NewSender(api, "news@example.com", "", slog.New(slog.DiscardHandler))

	err := s.Send(context.Background(), testMessage())

	var derr *port.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, derr.Accepted)
	assert.ErrorIs(t, err, port.ErrEmailDelivery)
	assert.Len(t, api.inputs, 2)
	assert.Nil(t, api.inputs[0].ConfigurationSetName)
}

func TestSendStopsAtDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api := &fakeAPI{afterSend: cancel}
	s := NewSender(api, "news@example.com", "", slog.New(slog.DiscardHandler))

	err := s.Send(ctx, testMessage())
	var de *port.DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Accepted)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, api.inputs, 1)
}
