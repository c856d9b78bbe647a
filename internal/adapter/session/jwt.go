// Package session verifies access tokens of the hosted auth provider and
// resolves them into actors.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

// RoleCache keeps profile roles between requests.
type RoleCache interface {
	// Role returns the cached role; ok is false on a miss.
	Role(ctx context.Context, profileID string) (role domain.Role, ok bool, err error)
	SetRole(ctx context.Context, profileID string, role domain.Role) error
}

// Claims are the access token claims read by the resolver. The subject is
// the profile id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Resolver implements port.SessionProvider for HS256 tokens.
type Resolver struct {
	secret   []byte
	parser   *jwt.Parser
	profiles port.ProfileRepository
	cache    RoleCache
	logger   *slog.Logger
}

// NewResolver creates a Resolver. Tokens must carry an expiry and, when
// issuer is not empty, that issuer. cache may be nil.
func NewResolver(secret, issuer string, profiles port.ProfileRepository, cache RoleCache, logger *slog.Logger) *Resolver {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Resolver{
		secret:   []byte(secret),
		parser:   jwt.NewParser(opts...),
		profiles: profiles,
		cache:    cache,
		logger:   logger,
	}
}

// Resolve verifies token and loads the role of its subject. Tokens of
// profiles that no longer exist are rejected.
func (r *Resolver) Resolve(ctx context.Context, token string) (*domain.Actor, error) {
	var claims Claims
	_, err := r.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	})
	if err != nil {
		return nil, errors.Join(port.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token without subject: %w", port.ErrUnauthenticated)
	}

	role, err := r.role(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	return &domain.Actor{ProfileID: claims.Subject, Role: role}, nil
}

func (r *Resolver) role(ctx context.Context, profileID string) (domain.Role, error) {
	if r.cache != nil {
		role, ok, err := r.cache.Role(ctx, profileID)
		if err != nil {
			r.logger.Warn("role cache read failed", slog.String("profile_id", profileID), slog.Any("error", err))
		} else if ok {
			return role, nil
		}
	}

	profile, err := r.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return "", fmt.Errorf("load profile %s: %w", profileID, err)
	}
	if profile == nil {
		return "", fmt.Errorf("profile %s: %w", profileID, port.ErrUnauthenticated)
	}

	if r.cache != nil {
		if err = r.cache.SetRole(ctx, profileID, profile.Role); err != nil {
			r.logger.Warn("role cache write failed", slog.String("profile_id", profileID), slog.Any("error", err))
		}
	}
	return profile.Role, nil
}
