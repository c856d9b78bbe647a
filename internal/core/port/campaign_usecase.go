package port

import (
	"context"

	"localreach/internal/core/domain"
)

// CampaignUseCase defines campaign management and the send pipeline. All
// operations require an admin actor.
type CampaignUseCase interface {
	Create(ctx context.Context, req CreateCampaignReq, actor *domain.Actor) (*domain.Campaign, error)
	Get(ctx context.Context, id string, actor *domain.Actor) (*domain.Campaign, error)
	// Preview renders the campaign email without sending it.
	Preview(ctx context.Context, id string, actor *domain.Actor) (*CampaignPreview, error)
	// Send delivers the campaign to the active subscribers of its list and
	// marks it sent. Campaigns already sent or being sent are rejected with
	// ErrAlreadySent.
	Send(ctx context.Context, id string, actor *domain.Actor) (*SendResult, error)

	CreateTemplate(ctx context.Context, req CreateTemplateReq, actor *domain.Actor) (*domain.EmailTemplate, error)
	GetTemplate(ctx context.Context, id string, actor *domain.Actor) (*domain.EmailTemplate, error)
}

type CreateCampaignReq struct {
	CollectionID string `json:"collection_id"`
	TemplateID   string `json:"template_id"`
	ListID       string `json:"list_id"`
}

type CreateTemplateReq struct {
	Name    string              `json:"name"`
	Subject string              `json:"subject"`
	Type    domain.TemplateType `json:"type"`
	Content string              `json:"content"`
}

// CampaignPreview is the merged email of a campaign.
type CampaignPreview struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendResult reports how many recipients a campaign went to.
type SendResult struct {
	RecipientCount int
}
