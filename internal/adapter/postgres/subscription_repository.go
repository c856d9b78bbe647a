package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

// SubscriptionRepository implements port.SubscriptionRepository.
type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository returns a new repository instance.
func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

func (r *SubscriptionRepository) GetList(ctx context.Context, id string) (*domain.EmailList, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM email_lists WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	l, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.EmailList])
	if noRows(err) {
		return nil, nil
	}
	return l, err
}

func (r *SubscriptionRepository) ActiveSubscription(ctx context.Context, listID, profileID string) (*domain.Subscription, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, profile_id, list_id, subscribed_at, unsubscribed_at
        FROM profile_list_subscriptions
        WHERE list_id = $1 AND profile_id = $2 AND unsubscribed_at IS NULL`, listID, profileID)
	if err != nil {
		return nil, err
	}
	s, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.Subscription])
	if noRows(err) {
		return nil, nil
	}
	return s, err
}

// CreateSubscription returns ErrConflict when the profile already has an
// active subscription to the list.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, s *domain.Subscription) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO profile_list_subscriptions (profile_id, list_id) VALUES ($1, $2) RETURNING id, subscribed_at`,
		s.ProfileID, s.ListID,
	).Scan(&s.ID, &s.SubscribedAt)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", translate(err))
	}
	return nil
}

func (r *SubscriptionRepository) EndSubscription(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE profile_list_subscriptions SET unsubscribed_at = now() WHERE id = $1 AND unsubscribed_at IS NULL`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subscription %s: %w", id, port.ErrNotFound)
	}
	return nil
}
