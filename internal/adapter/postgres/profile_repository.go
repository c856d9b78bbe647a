package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"localreach/internal/core/domain"
)

// ProfileRepository implements port.ProfileRepository.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a new repository instance.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email, business_name, role, zip_code FROM profiles WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.Profile])
	if noRows(err) {
		return nil, nil
	}
	return p, err
}
