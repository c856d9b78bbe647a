package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

const (
	campaignColumns = `id, collection_id, template_id, list_id, send_claimed_at, sent_at, created_at, updated_at`
	templateColumns = `id, name, subject, type, content, created_at, updated_at`
)

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (collection_id, template_id, list_id) VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		c.CollectionID, c.TemplateID, c.ListID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", translate(err))
	}
	return nil
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.Campaign])
	if noRows(err) {
		return nil, nil
	}
	return c, err
}

func (r *CampaignRepository) GetCampaignWithTemplate(ctx context.Context, id string) (*port.CampaignWithTemplate, error) {
	var cwt port.CampaignWithTemplate
	c, t := &cwt.Campaign, &cwt.Template
	err := r.pool.QueryRow(ctx, `
        SELECT c.id, c.collection_id, c.template_id, c.list_id, c.send_claimed_at, c.sent_at, c.created_at, c.updated_at,
               t.id, t.name, t.subject, t.type, t.content, t.created_at, t.updated_at
        FROM campaigns c
        JOIN email_templates t ON t.id = c.template_id
        WHERE c.id = $1`, id,
	).Scan(
		&c.ID, &c.CollectionID, &c.TemplateID, &c.ListID, &c.SendClaimedAt, &c.SentAt, &c.CreatedAt, &c.UpdatedAt,
		&t.ID, &t.Name, &t.Subject, &t.Type, &t.Content, &t.CreatedAt, &t.UpdatedAt,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cwt, nil
}

func (r *CampaignRepository) CreateTemplate(ctx context.Context, t *domain.EmailTemplate) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO email_templates (name, subject, type, content) VALUES ($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		t.Name, t.Subject, string(t.Type), t.Content,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert template: %w", translate(err))
	}
	return nil
}

func (r *CampaignRepository) GetTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+templateColumns+` FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	t, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.EmailTemplate])
	if noRows(err) {
		return nil, nil
	}
	return t, err
}

func (r *CampaignRepository) ActiveSubscriberEmails(ctx context.Context, listID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT p.email
        FROM profile_list_subscriptions s
        JOIN profiles p ON p.id = s.profile_id
        WHERE s.list_id = $1 AND s.unsubscribed_at IS NULL
        ORDER BY p.email`, listID)
	if err != nil {
		return nil, err
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, translate(err)
	}
	return emails, nil
}

// ClaimSend is a conditional update, so of two concurrent claims only one
// affects the row.
func (r *CampaignRepository) ClaimSend(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET send_claimed_at = now(), updated_at = now()
        WHERE id = $1 AND send_claimed_at IS NULL AND sent_at IS NULL`, id)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CampaignRepository) ReleaseSend(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET send_claimed_at = NULL, updated_at = now()
        WHERE id = $1 AND sent_at IS NULL`, id)
	return translate(err)
}

func (r *CampaignRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET sent_at = $2, updated_at = now()
        WHERE id = $1 AND sent_at IS NULL`, id, at)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("campaign %s: %w", id, port.ErrNotFound)
	}
	return fmt.Errorf("campaign %s: %w", id, port.ErrAlreadySent)
}
