package session

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/port/mocks"
)

const secret = "test-secret"

func sign(t *testing.T, key string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: claims}).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "p1",
		Issuer:    "https://auth.example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

type mapCache struct {
	roles map[string]domain.Role
	err   error
}

func (c *mapCache) Role(_ context.Context, id string) (domain.Role, bool, error) {
	if c.err != nil {
		return "", false, c.err
	}
	r, ok := c.roles[id]
	return r, ok, nil
}

func (c *mapCache) SetRole(_ context.Context, id string, role domain.Role) error {
	c.roles[id] = role
	return nil
}

func newResolver(t *testing.T, cache RoleCache) (*Resolver, *mocks.MockProfileRepository) {
	profiles := mocks.NewMockProfileRepository(t)
	return NewResolver(secret, "https://auth.example.com", profiles, cache, slog.New(slog.DiscardHandler)), profiles
}

func TestResolve(t *testing.T) {
	r, profiles := newResolver(t, nil)
	profiles.EXPECT().GetProfile(mock.Anything, "p1").Return(&domain.Profile{ID: "p1", Role: domain.RoleAdmin}, nil)

	actor, err := r.Resolve(context.Background(), sign(t, secret, validClaims()))
	require.NoError(t, err)
	require.Equal(t, &domain.Actor{ProfileID: "p1", Role: domain.RoleAdmin}, actor)
}

func TestResolveRejectsBadTokens(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil
	otherIssuer := validClaims()
	otherIssuer.Issuer = "https://evil.example.com"
	noSubject := validClaims()
	noSubject.Subject = ""

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"wrong key":    sign(t, "other-secret", validClaims()),
		"expired":      sign(t, secret, expired),
		"no expiry":    sign(t, secret, noExpiry),
		"other issuer": sign(t, secret, otherIssuer),
		"no subject":   sign(t, secret, noSubject),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			r, _ := newResolver(t, nil)
			_, err := r.Resolve(context.Background(), token)
			require.ErrorIs(t, err, port.ErrUnauthenticated)
		})
	}
}

func TestResolveUnknownProfile(t *testing.T) {
	r, profiles := newResolver(t, nil)
	profiles.EXPECT().GetProfile(mock.Anything, "p1").Return(nil, nil)

	_, err := r.Resolve(context.Background(), sign(t, secret, validClaims()))
	require.ErrorIs(t, err, port.ErrUnauthenticated)
}

func TestResolveUsesCache(t *testing.T) {
	cache := &mapCache{roles: map[string]domain.Role{}}
	r, profiles := newResolver(t, cache)
	profiles.EXPECT().GetProfile(mock.Anything, "p1").Return(&domain.Profile{ID: "p1", Role: domain.RoleBusiness}, nil).Once()

	token := sign(t, secret, validClaims())
	for range 2 {
		actor, err := r.Resolve(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, domain.RoleBusiness, actor.Role)
	}
	require.Equal(t, domain.RoleBusiness, cache.roles["p1"])
}

func TestResolveCacheFailureFallsBack(t *testing.T) {
	cache := &mapCache{roles: map[string]domain.Role{}, err: errors.New("redis down")}
	r, profiles := newResolver(t, cache)
	profiles.EXPECT().GetProfile(mock.Anything, "p1").Return(&domain.Profile{ID: "p1", Role: domain.RoleAdmin}, nil)

	actor, err := r.Resolve(context.Background(), sign(t, secret, validClaims()))
	require.NoError(t, err)
	require.True(t, actor.IsAdmin())
}
