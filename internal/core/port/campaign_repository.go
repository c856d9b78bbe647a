package port

import (
	"context"
	"time"

	"localreach/internal/core/domain"
)

// CampaignRepository persists campaigns, their templates and the send
// bookkeeping. Lookups return nil without error when nothing matches.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// GetCampaignWithTemplate loads a campaign joined with its template.
	GetCampaignWithTemplate(ctx context.Context, id string) (*CampaignWithTemplate, error)

	CreateTemplate(ctx context.Context, t *domain.EmailTemplate) error
	GetTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error)

	// ActiveSubscriberEmails returns the addresses of profiles whose
	// subscription to listID has no unsubscribed_at.
	ActiveSubscriberEmails(ctx context.Context, listID string) ([]string, error)

	// ClaimSend marks a draft campaign as being sent. It returns false when
	// the campaign is already claimed or sent.
	ClaimSend(ctx context.Context, id string) (bool, error)
	// ReleaseSend removes the claim of a campaign that was not sent.
	ReleaseSend(ctx context.Context, id string) error
	// MarkSent stamps sent_at. It returns ErrAlreadySent when sent_at was
	// already set.
	MarkSent(ctx context.Context, id string, at time.Time) error
}

// CampaignWithTemplate is a campaign with the template it sends.
type CampaignWithTemplate struct {
	Campaign domain.Campaign
	Template domain.EmailTemplate
}
