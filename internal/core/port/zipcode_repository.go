package port

import (
	"context"

	"localreach/internal/core/domain"
)

// ZipCodeRepository persists zip codes and their activation history. Lookups
// return nil without error when nothing matches.
type ZipCodeRepository interface {
	// CreateZipCode inserts zc and fills its ID and CreatedAt. A non-nil
	// initial status is inserted in the same transaction as the first open
	// status, with its ZipCodeID, ID and StartDate filled. A duplicate code
	// returns ErrConflict and stores nothing.
	CreateZipCode(ctx context.Context, zc *domain.ZipCode, initial *domain.ZipCodeStatus) error
	// GetZipCode returns a zip code by id.
	GetZipCode(ctx context.Context, id string) (*domain.ZipCode, error)
	// GetZipCodeByCode returns a zip code by its five digit code.
	GetZipCodeByCode(ctx context.Context, code string) (*domain.ZipCode, error)
	// UpdateZipCode writes city and state corrections.
	UpdateZipCode(ctx context.Context, zc domain.ZipCode) error
	// ListZipCodes returns zip codes ordered by code.
	ListZipCodes(ctx context.Context, filter ListFilter) ([]domain.ZipCode, error)

	// ReplaceStatus closes the open status of st.ZipCodeID and inserts st as
	// the new open status in one transaction. It fills st.ID and
	// st.StartDate. An unknown zip code returns ErrNotFound.
	ReplaceStatus(ctx context.Context, st *domain.ZipCodeStatus) error
	// CurrentStatus returns the open status of a zip code.
	CurrentStatus(ctx context.Context, zipCodeID string) (*domain.ZipCodeStatus, error)
	// StatusHistory returns every status of a zip code, newest first.
	StatusHistory(ctx context.Context, zipCodeID string) ([]domain.ZipCodeStatus, error)
}

// ListFilter controls pagination of list queries.
type ListFilter struct {
	Limit  int
	Offset int
}
