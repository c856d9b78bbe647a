package port

import (
	"context"

	"localreach/internal/core/domain"
)

// ZipCodeUseCase manages zip codes and their activation state.
type ZipCodeUseCase interface {
	// Create validates and stores a zip code. When IsActive is set an
	// initial active status is recorded.
	Create(ctx context.Context, req CreateZipCodeReq, actor *domain.Actor) (*ZipCodeView, error)
	// Update applies city and state corrections and records a new status
	// when the activation or reason differ from the current status.
	Update(ctx context.Context, id string, req UpdateZipCodeReq, actor *domain.Actor) (*ZipCodeView, error)
	// Get returns a zip code by code with its current status. Admin only.
	Get(ctx context.Context, code string, actor *domain.Actor) (*ZipCodeView, error)
	List(ctx context.Context, filter ListFilter, actor *domain.Actor) ([]domain.ZipCode, error)

	// SetStatus closes the current status and opens a new one. After it
	// returns exactly one open status exists for the zip code.
	SetStatus(ctx context.Context, req SetStatusReq, actor *domain.Actor) (*domain.ZipCodeStatus, error)
	// IsActive reports whether the zip code with the given code is active,
	// optionally for a campaign. Unknown codes are inactive.
	IsActive(ctx context.Context, code string, campaignID *string) (bool, error)
	History(ctx context.Context, zipCodeID string, actor *domain.Actor) ([]domain.ZipCodeStatus, error)
}

// ZipCodeView is a zip code with its current status, nil when it never had
// one.
type ZipCodeView struct {
	ZipCode domain.ZipCode        `json:"zip_code"`
	Status  *domain.ZipCodeStatus `json:"status"`
}

type CreateZipCodeReq struct {
	Code     string  `json:"code"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	IsActive bool    `json:"is_active"`
	Reason   *string `json:"reason"`
}

type UpdateZipCodeReq struct {
	City     *string `json:"city"`
	State    *string `json:"state"`
	IsActive *bool   `json:"is_active"`
	Reason   *string `json:"reason"`
}

type SetStatusReq struct {
	ZipCodeID  string  `json:"-"`
	IsActive   bool    `json:"is_active"`
	Reason     *string `json:"reason"`
	CampaignID *string `json:"campaign_id"`
}
