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
	zipCodeColumns = `id, code, city, state, created_at`
	statusColumns  = `id, zip_code_id, is_active, start_date, end_date, reason, campaign_id, created_by`
)

// ZipCodeRepository implements port.ZipCodeRepository.
type ZipCodeRepository struct {
	pool *pgxpool.Pool
}

// NewZipCodeRepository returns a new repository instance.
func NewZipCodeRepository(pool *pgxpool.Pool) *ZipCodeRepository {
	return &ZipCodeRepository{pool: pool}
}

func (r *ZipCodeRepository) CreateZipCode(ctx context.Context, zc *domain.ZipCode, initial *domain.ZipCodeStatus) error {
	return withTx(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO zip_codes (code, city, state) VALUES ($1, $2, $3) RETURNING id, created_at`,
			zc.Code, zc.City, zc.State,
		).Scan(&zc.ID, &zc.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert zip code %s: %w", zc.Code, translate(err))
		}
		if initial == nil {
			return nil
		}

		initial.ZipCodeID = zc.ID
		initial.EndDate = nil
		err = tx.QueryRow(ctx,
			`INSERT INTO zip_code_statuses (zip_code_id, is_active, start_date, reason, campaign_id, created_by)
             VALUES ($1, $2, clock_timestamp(), $3, $4, $5)
             RETURNING id, start_date`,
			initial.ZipCodeID, initial.IsActive, initial.Reason, initial.CampaignID, initial.CreatedBy,
		).Scan(&initial.ID, &initial.StartDate)
		if err != nil {
			return fmt.Errorf("insert initial status of zip code %s: %w", zc.Code, translate(err))
		}
		return nil
	})
}

func (r *ZipCodeRepository) GetZipCode(ctx context.Context, id string) (*domain.ZipCode, error) {
	return r.getOne(ctx, `SELECT `+zipCodeColumns+` FROM zip_codes WHERE id = $1`, id)
}

func (r *ZipCodeRepository) GetZipCodeByCode(ctx context.Context, code string) (*domain.ZipCode, error) {
	return r.getOne(ctx, `SELECT `+zipCodeColumns+` FROM zip_codes WHERE code = $1`, code)
}

func (r *ZipCodeRepository) getOne(ctx context.Context, query string, arg any) (*domain.ZipCode, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	zc, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.ZipCode])
	if noRows(err) {
		return nil, nil
	}
	return zc, err
}

func (r *ZipCodeRepository) UpdateZipCode(ctx context.Context, zc domain.ZipCode) error {
	tag, err := r.pool.Exec(ctx, `UPDATE zip_codes SET city = $2, state = $3 WHERE id = $1`, zc.ID, zc.City, zc.State)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("zip code %s: %w", zc.ID, port.ErrNotFound)
	}
	return nil
}

func (r *ZipCodeRepository) ListZipCodes(ctx context.Context, filter port.ListFilter) ([]domain.ZipCode, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+zipCodeColumns+` FROM zip_codes ORDER BY code LIMIT $1 OFFSET $2`,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ZipCode])
}

// ReplaceStatus locks the zip code row so concurrent replacements of the
// same zip code serialise. The boundary time is read after the lock is held,
// so intervals never overlap, and it both ends the closed interval and
// starts the new one.
func (r *ZipCodeRepository) ReplaceStatus(ctx context.Context, st *domain.ZipCodeStatus) error {
	return withTx(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx, `SELECT id FROM zip_codes WHERE id = $1 FOR UPDATE`, st.ZipCodeID).Scan(&id)
		if noRows(err) {
			return fmt.Errorf("zip code %s: %w", st.ZipCodeID, port.ErrNotFound)
		}
		if err != nil {
			return err
		}
		var at time.Time
		if err = tx.QueryRow(ctx, `SELECT clock_timestamp()`).Scan(&at); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE zip_code_statuses SET end_date = $2 WHERE zip_code_id = $1 AND end_date IS NULL`,
			st.ZipCodeID, at,
		)
		if err != nil {
			return fmt.Errorf("close status of zip code %s: %w", st.ZipCodeID, err)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO zip_code_statuses (zip_code_id, is_active, start_date, reason, campaign_id, created_by)
             VALUES ($1, $2, $3, $4, $5, $6)
             RETURNING id, start_date`,
			st.ZipCodeID, st.IsActive, at, st.Reason, st.CampaignID, st.CreatedBy,
		).Scan(&st.ID, &st.StartDate)
		if err != nil {
			return fmt.Errorf("insert status of zip code %s: %w", st.ZipCodeID, translate(err))
		}
		st.EndDate = nil
		return nil
	})
}

func (r *ZipCodeRepository) CurrentStatus(ctx context.Context, zipCodeID string) (*domain.ZipCodeStatus, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+statusColumns+` FROM zip_code_statuses WHERE zip_code_id = $1 AND end_date IS NULL
         ORDER BY start_date DESC LIMIT 1`,
		zipCodeID,
	)
	if err != nil {
		return nil, err
	}
	st, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.ZipCodeStatus])
	if noRows(err) {
		return nil, nil
	}
	return st, err
}

func (r *ZipCodeRepository) StatusHistory(ctx context.Context, zipCodeID string) ([]domain.ZipCodeStatus, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+statusColumns+` FROM zip_code_statuses WHERE zip_code_id = $1
         ORDER BY start_date DESC, end_date DESC NULLS FIRST`,
		zipCodeID,
	)
	if err != nil {
		return nil, err
	}
	history, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ZipCodeStatus])
	if noRows(err) {
		return nil, nil
	}
	return history, err
}
