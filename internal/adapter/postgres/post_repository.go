package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

const (
	postColumns   = `p.id, p.profile_id, p.source, p.content, p.final_content, p.final_type, p.post_url, p.published_at, p.created_at`
	promptColumns = `id, name, prompt, prompt_type, is_active, is_default`
)

// PostRepository implements port.PostRepository.
type PostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository returns a new repository instance.
func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func scanPost(row pgx.Row) (domain.Post, error) {
	var (
		p         domain.Post
		source    string
		finalType *string
	)
	err := row.Scan(&p.ID, &p.ProfileID, &source, &p.Content, &p.FinalContent, &finalType, &p.PostURL, &p.PublishedAt, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	p.Source = domain.PostSource(source)
	if finalType != nil {
		t := domain.PostType(*finalType)
		p.FinalType = &t
	}
	return p, nil
}

func (r *PostRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) UpdateFinalContent(ctx context.Context, id, content string, typ domain.PostType) error {
	tag, err := r.pool.Exec(ctx, `UPDATE posts SET final_content = $2, final_type = $3 WHERE id = $1`, id, content, string(typ))
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, port.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) CreateCollection(ctx context.Context, c *domain.Collection) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO collections (name) VALUES ($1) RETURNING id, created_at`, c.Name).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert collection: %w", translate(err))
	}
	return nil
}

func (r *PostRepository) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM collections WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.Collection])
	if noRows(err) {
		return nil, nil
	}
	return c, err
}

func (r *PostRepository) AddPostToCollection(ctx context.Context, collectionID, postID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO posts_collections (collection_id, post_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		collectionID, postID,
	)
	return translate(err)
}

func (r *PostRepository) ListCollectionPosts(ctx context.Context, collectionID string) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+postColumns+`
        FROM posts p
        JOIN posts_collections pc ON pc.post_id = p.id
        WHERE pc.collection_id = $1
        ORDER BY p.published_at DESC NULLS LAST, p.created_at DESC`, collectionID)
	if err != nil {
		return nil, err
	}
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Post, error) {
		return scanPost(row)
	})
	if noRows(err) {
		return nil, nil
	}
	return posts, err
}

func (r *PostRepository) DefaultPrompt(ctx context.Context, typ domain.PromptType) (*domain.AIPrompt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+promptColumns+` FROM ai_prompts WHERE prompt_type = $1 AND is_default AND is_active`,
		string(typ),
	)
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[domain.AIPrompt])
	if noRows(err) {
		return nil, nil
	}
	return p, err
}
