package port

import (
	"context"
	"time"

	"localreach/internal/core/domain"
)

// EmailMessage is one campaign email addressed to every recipient.
// IdempotencyKey identifies the send to the provider.
type EmailMessage struct {
	Subject        string
	HTML           string
	Recipients     []string
	IdempotencyKey string
}

// EmailSender delivers email through the transactional email provider. A
// failed delivery returns a *DeliveryError.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// TextGenerator produces text from a prompt with a hosted language model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ObjectStorage issues upload URLs for the media bucket.
type ObjectStorage interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
}

// VideoHost reads asset state from the video hosting service.
type VideoHost interface {
	// GetAsset returns ErrNotFound for an unknown asset.
	GetAsset(ctx context.Context, assetID string) (*domain.VideoAsset, error)
}

// SessionProvider resolves a session token issued by the hosted auth
// service into the calling actor. Invalid or expired tokens return
// ErrUnauthenticated.
type SessionProvider interface {
	Resolve(ctx context.Context, token string) (*domain.Actor, error)
}
