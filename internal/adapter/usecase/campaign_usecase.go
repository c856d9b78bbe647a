package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/tagmerge"
)

// CampaignUseCase implements campaign management and the send pipeline:
// load the campaign and its template, resolve the recipients, merge the
// collection's posts into the template, claim the campaign, deliver once and
// record completion.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	posts     port.PostRepository
	sender    port.EmailSender
	sanitizer *tagmerge.Sanitizer
	logger    *slog.Logger

	// sendTimeout bounds delivery; zero means no deadline.
	sendTimeout time.Duration
	now         func() time.Time
}

// NewCampaignUseCase creates a CampaignUseCase.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	posts port.PostRepository,
	sender port.EmailSender,
	sanitizer *tagmerge.Sanitizer,
	sendTimeout time.Duration,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:   campaigns,
		posts:       posts,
		sender:      sender,
		sanitizer:   sanitizer,
		logger:      logger,
		sendTimeout: sendTimeout,
		now:         time.Now,
	}
}

// Create stores a draft campaign. The referenced template must exist and be
// a campaign template.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CreateCampaignReq, actor *domain.Actor) (*domain.Campaign, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	switch {
	case req.CollectionID == "":
		return nil, port.NewValidationError("collection_id", "is required")
	case req.TemplateID == "":
		return nil, port.NewValidationError("template_id", "is required")
	case req.ListID == "":
		return nil, port.NewValidationError("list_id", "is required")
	}
	tmpl, err := u.campaigns.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, fmt.Errorf("template %s: %w", req.TemplateID, port.ErrNotFound)
	}
	if tmpl.Type != domain.TemplateCampaign {
		return nil, port.NewValidationError("template_id", "must reference a campaign template")
	}

	c := &domain.Campaign{
		CollectionID: req.CollectionID,
		TemplateID:   req.TemplateID,
		ListID:       req.ListID,
	}
	if err = u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// Get returns a campaign by id.
func (u *CampaignUseCase) Get(ctx context.Context, id string, actor *domain.Actor) (*domain.Campaign, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %s: %w", id, port.ErrNotFound)
	}
	return c, nil
}

// Preview renders the subject and body the campaign would send.
func (u *CampaignUseCase) Preview(ctx context.Context, id string, actor *domain.Actor) (*port.CampaignPreview, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	cwt, err := u.loadCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.render(ctx, cwt)
}

// Send delivers a campaign to every active subscriber of its list in one
// batch and stamps sent_at.
//
// The campaign is claimed before delivery. From the claim on, the send no
// longer follows ctx cancellation: delivery runs under the send timeout and
// the final bookkeeping without a deadline. A failed delivery releases the
// claim unless some recipients were already accepted. A failure to stamp
// sent_at after delivery leaves the claim in place, so a retry is rejected
// with ErrAlreadySent instead of mailing everyone again.
func (u *CampaignUseCase) Send(ctx context.Context, id string, actor *domain.Actor) (*port.SendResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	cwt, err := u.loadCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if cwt.Campaign.Sent() {
		return nil, fmt.Errorf("campaign %s: %w", id, port.ErrAlreadySent)
	}

	recipients, err := u.campaigns.ActiveSubscriberEmails(ctx, cwt.Campaign.ListID)
	if err != nil {
		return nil, fmt.Errorf("load subscribers of list %s: %w", cwt.Campaign.ListID, err)
	}
	if len(recipients) == 0 {
		return nil, port.ErrNoRecipients
	}

	email, err := u.render(ctx, cwt)
	if err != nil {
		return nil, err
	}

	claimed, err := u.campaigns.ClaimSend(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("claim campaign %s: %w", id, err)
	}
	if !claimed {
		return nil, fmt.Errorf("campaign %s: %w", id, port.ErrAlreadySent)
	}

	detached := context.WithoutCancel(ctx)
	deliverCtx, cancel := u.deliveryContext(detached)
	defer cancel()

	err = u.sender.Send(deliverCtx, port.EmailMessage{
		Subject:        email.Subject,
		HTML:           email.HTML,
		Recipients:     recipients,
		IdempotencyKey: id,
	})
	if err != nil {
		u.releaseClaim(detached, id, err)
		return nil, wrapDelivery(err)
	}

	if err = u.campaigns.MarkSent(detached, id, u.now().UTC()); err != nil {
		u.logger.Error("campaign delivered but not marked sent",
			slog.String("campaign_id", id),
			slog.Int("recipients", len(recipients)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("mark campaign %s sent: %w", id, err)
	}

	u.logger.Info("campaign sent",
		slog.String("campaign_id", id),
		slog.Int("recipients", len(recipients)),
		slog.String("actor", actor.ProfileID),
	)
	return &port.SendResult{RecipientCount: len(recipients)}, nil
}

// releaseClaim undoes the send claim after a failed delivery. A partial
// delivery keeps the claim: some subscribers already have the email.
func (u *CampaignUseCase) releaseClaim(ctx context.Context, id string, cause error) {
	var de *port.DeliveryError
	if errors.As(cause, &de) && de.Accepted > 0 {
		u.logger.Warn("partial campaign delivery, keeping send claim",
			slog.String("campaign_id", id),
			slog.Int("accepted", de.Accepted),
			slog.Any("error", cause),
		)
		return
	}
	if err := u.campaigns.ReleaseSend(ctx, id); err != nil {
		u.logger.Error("release send claim", slog.String("campaign_id", id), slog.Any("error", err))
	}
}

func (u *CampaignUseCase) deliveryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.sendTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.sendTimeout)
}

func wrapDelivery(err error) error {
	if errors.Is(err, port.ErrEmailDelivery) {
		return err
	}
	return fmt.Errorf("%w: %w", port.ErrEmailDelivery, err)
}

func (u *CampaignUseCase) loadCampaign(ctx context.Context, id string) (*port.CampaignWithTemplate, error) {
	cwt, err := u.campaigns.GetCampaignWithTemplate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load campaign %s: %w", id, err)
	}
	if cwt == nil {
		return nil, fmt.Errorf("campaign %s: %w", id, port.ErrNotFound)
	}
	return cwt, nil
}

func (u *CampaignUseCase) render(ctx context.Context, cwt *port.CampaignWithTemplate) (*port.CampaignPreview, error) {
	posts, err := u.posts.ListCollectionPosts(ctx, cwt.Campaign.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("load posts of collection %s: %w", cwt.Campaign.CollectionID, err)
	}
	tags := tagmerge.CampaignTags(posts, u.sanitizer)
	return &port.CampaignPreview{
		Subject: tagmerge.Merge(cwt.Template.Subject, tags),
		HTML:    tagmerge.Merge(cwt.Template.Content, tags),
	}, nil
}

// CreateTemplate validates and stores an email template.
func (u *CampaignUseCase) CreateTemplate(ctx context.Context, req port.CreateTemplateReq, actor *domain.Actor) (*domain.EmailTemplate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	t := &domain.EmailTemplate{
		Name:    strings.TrimSpace(req.Name),
		Subject: strings.TrimSpace(req.Subject),
		Type:    req.Type,
		Content: req.Content,
	}
	switch {
	case t.Name == "":
		return nil, port.NewValidationError("name", "is required")
	case t.Subject == "":
		return nil, port.NewValidationError("subject", "is required")
	case !t.Type.Valid():
		return nil, port.NewValidationError("type", "must be transactional or campaign")
	case strings.TrimSpace(t.Content) == "":
		return nil, port.NewValidationError("content", "is required")
	}
	if err := u.campaigns.CreateTemplate(ctx, t); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return t, nil
}

// GetTemplate returns an email template by id.
func (u *CampaignUseCase) GetTemplate(ctx context.Context, id string, actor *domain.Actor) (*domain.EmailTemplate, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	t, err := u.campaigns.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("template %s: %w", id, port.ErrNotFound)
	}
	return t, nil
}
