package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed ids keep Seed idempotent.
const (
	seedAdminID      = "00000000-0000-4000-8000-000000000001"
	seedBusinessID   = "00000000-0000-4000-8000-000000000002"
	seedListID       = "00000000-0000-4000-8000-000000000010"
	seedTemplateID   = "00000000-0000-4000-8000-000000000020"
	seedCollectionID = "00000000-0000-4000-8000-000000000030"
)

const seedTemplate = `<h2>Updates</h2>{{updates_list}}<h2>Promotions</h2>{{promos_list}}<h2>Events</h2>{{events_list}}`

const seedContentPrompt = `Rewrite this {{post_type}} from {{business_name}} as a short, friendly newsletter blurb.
Published {{published_date}}. Link: {{post_url}}

{{content}}`

const seedTypePrompt = `Answer with one word, update, promotion or event, for this post by {{business_name}}:

{{content}}`

// Seed inserts demo data: an admin, a business with posts in a collection,
// a list with a campaign template, a few active zip codes and the default
// AI prompts. Rows that already exist are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	profiles := []struct {
		id, email, businessName, role string
	}{
		{seedAdminID, "admin@localreach.test", "", "admin"},
		{seedBusinessID, "owner@casataco.test", "Casa Taco", "business"},
	}
	for _, p := range profiles {
		_, err := db.Exec(ctx, `INSERT INTO profiles (id, email, business_name, role, zip_code)
VALUES ($1, $2, NULLIF($3, ''), $4, '78701') ON CONFLICT DO NOTHING`, p.id, p.email, p.businessName, p.role)
		if err != nil {
			return fmt.Errorf("seed profile %s: %w", p.email, err)
		}
	}

	for i, zip := range []struct{ code, city string }{{"78701", "Austin"}, {"78702", "Austin"}, {"78704", "Austin"}} {
		var zipID string
		err := db.QueryRow(ctx, `INSERT INTO zip_codes (code, city, state) VALUES ($1, $2, 'TX')
ON CONFLICT (code) DO UPDATE SET city = EXCLUDED.city RETURNING id`, zip.code, zip.city).Scan(&zipID)
		if err != nil {
			return fmt.Errorf("seed zip code %s: %w", zip.code, err)
		}
		_, err = db.Exec(ctx, `INSERT INTO zip_code_statuses (zip_code_id, is_active, reason, created_by)
VALUES ($1, $2, 'seed', $3) ON CONFLICT DO NOTHING`, zipID, i < 2, seedAdminID)
		if err != nil {
			return fmt.Errorf("seed status of zip code %s: %w", zip.code, err)
		}
	}

	_, err := db.Exec(ctx, `INSERT INTO email_lists (id, name) VALUES ($1, 'Austin weekly') ON CONFLICT DO NOTHING`, seedListID)
	if err != nil {
		return fmt.Errorf("seed list: %w", err)
	}
	_, err = db.Exec(ctx, `INSERT INTO profile_list_subscriptions (profile_id, list_id)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, seedBusinessID, seedListID)
	if err != nil {
		return fmt.Errorf("seed subscription: %w", err)
	}
	_, err = db.Exec(ctx, `INSERT INTO email_templates (id, name, subject, type, content)
VALUES ($1, 'Weekly digest', 'This week around town', 'campaign', $2) ON CONFLICT DO NOTHING`, seedTemplateID, seedTemplate)
	if err != nil {
		return fmt.Errorf("seed template: %w", err)
	}

	_, err = db.Exec(ctx, `INSERT INTO collections (id, name) VALUES ($1, 'Week one') ON CONFLICT DO NOTHING`, seedCollectionID)
	if err != nil {
		return fmt.Errorf("seed collection: %w", err)
	}
	posts := []struct {
		id, content, finalType string
	}{
		{"00000000-0000-4000-8000-000000000101", "New patio seating is open!", "update"},
		{"00000000-0000-4000-8000-000000000102", "Half price tacos every Tuesday", "promotion"},
		{"00000000-0000-4000-8000-000000000103", "Live music Friday at 8pm", "event"},
	}
	for i, p := range posts {
		published := time.Now().UTC().AddDate(0, 0, -i)
		_, err = db.Exec(ctx, `INSERT INTO posts (id, profile_id, source, content, final_type, published_at)
VALUES ($1, $2, 'facebook', $3, $4, $5) ON CONFLICT DO NOTHING`, p.id, seedBusinessID, p.content, p.finalType, published)
		if err != nil {
			return fmt.Errorf("seed post %s: %w", p.id, err)
		}
		_, err = db.Exec(ctx, `INSERT INTO posts_collections (collection_id, post_id)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, seedCollectionID, p.id)
		if err != nil {
			return fmt.Errorf("seed collection post %s: %w", p.id, err)
		}
	}

	prompts := []struct{ name, prompt, typ string }{
		{"Default rewrite", seedContentPrompt, "content"},
		{"Default classifier", seedTypePrompt, "type_id"},
	}
	for _, p := range prompts {
		_, err = db.Exec(ctx, `INSERT INTO ai_prompts (name, prompt, prompt_type, is_default)
VALUES ($1, $2, $3, true) ON CONFLICT DO NOTHING`, p.name, p.prompt, p.typ)
		if err != nil {
			return fmt.Errorf("seed prompt %s: %w", p.name, err)
		}
	}
	return nil
}
