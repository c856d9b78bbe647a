package postgres

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"localreach/internal/config/configs"
	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/db"
)

// testPool connects to the database named by PSQL_TEST_ADDRESS and applies
// the migrations. Tests using it are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func insertProfile(t *testing.T, pool *pgxpool.Pool, role domain.Role) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(),
		`INSERT INTO profiles (email, role) VALUES ($1, $2) RETURNING id`,
		uuid.NewString()+"@example.com", string(role),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertZipCode(t *testing.T, repo *ZipCodeRepository) *domain.ZipCode {
	t.Helper()
	for range 10 {
		zc := &domain.ZipCode{Code: fmt.Sprintf("%05d", rand.IntN(100000)), City: "Austin", State: "TX"}
		err := repo.CreateZipCode(context.Background(), zc, nil)
		if err == nil {
			return zc
		}
		require.ErrorIs(t, err, port.ErrConflict)
	}
	t.Fatal("no free zip code")
	return nil
}

func TestZipCodeDuplicateCode(t *testing.T) {
	pool := testPool(t)
	repo := NewZipCodeRepository(pool)
	zc := insertZipCode(t, repo)

	err := repo.CreateZipCode(context.Background(), &domain.ZipCode{Code: zc.Code, City: "Dallas", State: "TX"}, nil)
	require.ErrorIs(t, err, port.ErrConflict)

	got, err := repo.GetZipCodeByCode(context.Background(), zc.Code)
	require.NoError(t, err)
	require.Equal(t, zc.ID, got.ID)

	missing, err := repo.GetZipCode(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestCreateZipCodeWithInitialStatus(t *testing.T) {
	pool := testPool(t)
	repo := NewZipCodeRepository(pool)
	ctx := context.Background()
	admin := insertProfile(t, pool, domain.RoleAdmin)
	reserved := insertZipCode(t, repo)
	code := reserved.Code
	_, err := pool.Exec(ctx, `DELETE FROM zip_codes WHERE id = $1`, reserved.ID)
	require.NoError(t, err)

	zc := &domain.ZipCode{Code: code, City: "Austin", State: "TX"}
	initial := &domain.ZipCodeStatus{IsActive: true, CreatedBy: admin}
	require.NoError(t, repo.CreateZipCode(ctx, zc, initial))
	require.Equal(t, zc.ID, initial.ZipCodeID)
	require.NotEmpty(t, initial.ID)

	current, err := repo.CurrentStatus(ctx, zc.ID)
	require.NoError(t, err)
	require.Equal(t, initial.ID, current.ID)
	require.True(t, current.IsActive)
}

func TestCreateZipCodeRollsBackOnStatusFailure(t *testing.T) {
	pool := testPool(t)
	repo := NewZipCodeRepository(pool)
	ctx := context.Background()
	reserved := insertZipCode(t, repo)
	code := reserved.Code
	_, err := pool.Exec(ctx, `DELETE FROM zip_codes WHERE id = $1`, reserved.ID)
	require.NoError(t, err)

	// created_by references no profile, so the status insert fails.
	err = repo.CreateZipCode(ctx,
		&domain.ZipCode{Code: code, City: "Austin", State: "TX"},
		&domain.ZipCodeStatus{IsActive: true, CreatedBy: uuid.NewString()},
	)
	require.Error(t, err)

	got, err := repo.GetZipCodeByCode(ctx, code)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestReplaceStatusKeepsOneOpenInterval(t *testing.T) {
	pool := testPool(t)
	repo := NewZipCodeRepository(pool)
	ctx := context.Background()
	admin := insertProfile(t, pool, domain.RoleAdmin)
	zc := insertZipCode(t, repo)

	first := &domain.ZipCodeStatus{ZipCodeID: zc.ID, IsActive: true, CreatedBy: admin}
	require.NoError(t, repo.ReplaceStatus(ctx, first))
	second := &domain.ZipCodeStatus{ZipCodeID: zc.ID, IsActive: false, CreatedBy: admin}
	require.NoError(t, repo.ReplaceStatus(ctx, second))

	history, err := repo.StatusHistory(ctx, zc.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, second.ID, history[0].ID)
	require.True(t, history[0].Open())
	require.Equal(t, first.ID, history[1].ID)
	require.NotNil(t, history[1].EndDate)
	require.True(t, history[1].EndDate.Equal(second.StartDate))

	current, err := repo.CurrentStatus(ctx, zc.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, current.ID)
}

func TestReplaceStatusConcurrent(t *testing.T) {
	pool := testPool(t)
	repo := NewZipCodeRepository(pool)
	ctx := context.Background()
	admin := insertProfile(t, pool, domain.RoleAdmin)
	zc := insertZipCode(t, repo)

	var g errgroup.Group
	for i := range 10 {
		g.Go(func() error {
			return repo.ReplaceStatus(ctx, &domain.ZipCodeStatus{ZipCodeID: zc.ID, IsActive: i%2 == 0, CreatedBy: admin})
		})
	}
	require.NoError(t, g.Wait())

	var open int
	err := pool.QueryRow(ctx,
		`SELECT count(*) FROM zip_code_statuses WHERE zip_code_id = $1 AND end_date IS NULL`, zc.ID,
	).Scan(&open)
	require.NoError(t, err)
	require.Equal(t, 1, open)

	history, err := repo.StatusHistory(ctx, zc.ID)
	require.NoError(t, err)
	require.Len(t, history, 10)
}

func TestReplaceStatusUnknownZipCode(t *testing.T) {
	pool := testPool(t)
	repo := NewZipCodeRepository(pool)
	admin := insertProfile(t, pool, domain.RoleAdmin)

	err := repo.ReplaceStatus(context.Background(), &domain.ZipCodeStatus{ZipCodeID: uuid.NewString(), CreatedBy: admin})
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestCampaignSendClaim(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	campaigns := NewCampaignRepository(pool)
	posts := NewPostRepository(pool)
	subs := NewSubscriptionRepository(pool)

	tpl := &domain.EmailTemplate{Name: "weekly", Subject: "News", Type: domain.TemplateCampaign, Content: "{{updates_list}}"}
	require.NoError(t, campaigns.CreateTemplate(ctx, tpl))
	col := &domain.Collection{Name: "week 1"}
	require.NoError(t, posts.CreateCollection(ctx, col))
	var listID string
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO email_lists (name) VALUES ('main') RETURNING id`).Scan(&listID))

	reader := insertProfile(t, pool, domain.RoleSubscriber)
	s := &domain.Subscription{ProfileID: reader, ListID: listID}
	require.NoError(t, subs.CreateSubscription(ctx, s))
	require.ErrorIs(t, subs.CreateSubscription(ctx, &domain.Subscription{ProfileID: reader, ListID: listID}), port.ErrConflict)

	c := &domain.Campaign{CollectionID: col.ID, TemplateID: tpl.ID, ListID: listID}
	require.NoError(t, campaigns.CreateCampaign(ctx, c))

	emails, err := campaigns.ActiveSubscriberEmails(ctx, listID)
	require.NoError(t, err)
	require.Len(t, emails, 1)

	ok, err := campaigns.ClaimSend(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = campaigns.ClaimSend(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, campaigns.ReleaseSend(ctx, c.ID))
	ok, err = campaigns.ClaimSend(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)

	sentAt := c.CreatedAt
	require.NoError(t, campaigns.MarkSent(ctx, c.ID, sentAt))
	require.ErrorIs(t, campaigns.MarkSent(ctx, c.ID, sentAt), port.ErrAlreadySent)
	require.ErrorIs(t, campaigns.MarkSent(ctx, uuid.NewString(), sentAt), port.ErrNotFound)

	got, err := campaigns.GetCampaignWithTemplate(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, got.Campaign.Sent())
	require.Equal(t, tpl.Content, got.Template.Content)

	require.NoError(t, subs.EndSubscription(ctx, s.ID))
	emails, err = campaigns.ActiveSubscriberEmails(ctx, listID)
	require.NoError(t, err)
	require.Empty(t, emails)
}
