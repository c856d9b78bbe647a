package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

var (
	zipCodePattern = regexp.MustCompile(`^\d{5}$`)
	statePattern   = regexp.MustCompile(`^[A-Z]{2}$`)
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ZipCodeUseCase tracks zip code activation. The repository keeps the
// history append-only: a status change closes the open interval and starts
// a new one.
type ZipCodeUseCase struct {
	repo   port.ZipCodeRepository
	logger *slog.Logger
}

// NewZipCodeUseCase creates a ZipCodeUseCase backed by repo.
func NewZipCodeUseCase(repo port.ZipCodeRepository, logger *slog.Logger) *ZipCodeUseCase {
	return &ZipCodeUseCase{repo: repo, logger: logger}
}

// Create validates and stores a zip code. Codes must have five digits and
// states two letters; states are upper-cased before validation. An active
// zip code is stored together with its first status.
func (u *ZipCodeUseCase) Create(ctx context.Context, req port.CreateZipCodeReq, actor *domain.Actor) (*port.ZipCodeView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	zc := domain.ZipCode{
		Code:  strings.TrimSpace(req.Code),
		City:  strings.TrimSpace(req.City),
		State: strings.ToUpper(strings.TrimSpace(req.State)),
	}
	if err := validateZipCode(zc); err != nil {
		return nil, err
	}
	var initial *domain.ZipCodeStatus
	if req.IsActive {
		initial = &domain.ZipCodeStatus{
			IsActive:  true,
			Reason:    trimmedOrNil(req.Reason),
			CreatedBy: actor.ProfileID,
		}
	}
	if err := u.repo.CreateZipCode(ctx, &zc, initial); err != nil {
		return nil, fmt.Errorf("create zip code %s: %w", zc.Code, err)
	}
	u.logger.Info("zip code created",
		slog.String("zip_code_id", zc.ID),
		slog.Bool("is_active", req.IsActive),
		slog.String("actor", actor.ProfileID),
	)
	return &port.ZipCodeView{ZipCode: zc, Status: initial}, nil
}

// Update applies city and state corrections. A new status is recorded only
// when the requested activation or reason differ from the current status; a
// zip code without status counts as inactive with no reason.
func (u *ZipCodeUseCase) Update(ctx context.Context, id string, req port.UpdateZipCodeReq, actor *domain.Actor) (*port.ZipCodeView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	zc, err := u.repo.GetZipCode(ctx, id)
	if err != nil {
		return nil, err
	}
	if zc == nil {
		return nil, fmt.Errorf("zip code %s: %w", id, port.ErrNotFound)
	}

	updated := *zc
	if req.City != nil {
		updated.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		updated.State = strings.ToUpper(strings.TrimSpace(*req.State))
	}
	if updated.City != zc.City || updated.State != zc.State {
		if err = validateZipCode(updated); err != nil {
			return nil, err
		}
		if err = u.repo.UpdateZipCode(ctx, updated); err != nil {
			return nil, err
		}
	}

	current, err := u.repo.CurrentStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &port.ZipCodeView{ZipCode: updated, Status: current}
	if !statusChanged(current, req) {
		return view, nil
	}

	next := port.SetStatusReq{ZipCodeID: id, Reason: req.Reason}
	if current != nil {
		next.IsActive = current.IsActive
		next.CampaignID = current.CampaignID
		if req.Reason == nil {
			next.Reason = current.Reason
		}
	}
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	}
	if view.Status, err = u.SetStatus(ctx, next, actor); err != nil {
		return nil, err
	}
	return view, nil
}

func statusChanged(current *domain.ZipCodeStatus, req port.UpdateZipCodeReq) bool {
	var (
		active bool
		reason string
	)
	if current != nil {
		active = current.IsActive
		if current.Reason != nil {
			reason = *current.Reason
		}
	}
	if req.IsActive != nil && *req.IsActive != active {
		return true
	}
	return req.Reason != nil && *req.Reason != reason
}

// Get returns the zip code with the given code and its current status.
func (u *ZipCodeUseCase) Get(ctx context.Context, code string, actor *domain.Actor) (*port.ZipCodeView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	zc, err := u.repo.GetZipCodeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if zc == nil {
		return nil, fmt.Errorf("zip code %s: %w", code, port.ErrNotFound)
	}
	st, err := u.repo.CurrentStatus(ctx, zc.ID)
	if err != nil {
		return nil, err
	}
	return &port.ZipCodeView{ZipCode: *zc, Status: st}, nil
}

// List returns a page of zip codes. The limit defaults to 50 and is capped
// at 500.
func (u *ZipCodeUseCase) List(ctx context.Context, filter port.ListFilter, actor *domain.Actor) ([]domain.ZipCode, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	filter.Limit = min(filter.Limit, maxListLimit)
	filter.Offset = max(filter.Offset, 0)
	return u.repo.ListZipCodes(ctx, filter)
}

// SetStatus records a new current status for a zip code on behalf of actor.
// Unknown zip codes are rejected with ErrNotFound; they are never created
// implicitly.
func (u *ZipCodeUseCase) SetStatus(ctx context.Context, req port.SetStatusReq, actor *domain.Actor) (*domain.ZipCodeStatus, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if req.ZipCodeID == "" {
		return nil, port.NewValidationError("zip_code_id", "is required")
	}
	st := &domain.ZipCodeStatus{
		ZipCodeID:  req.ZipCodeID,
		IsActive:   req.IsActive,
		Reason:     trimmedOrNil(req.Reason),
		CampaignID: trimmedOrNil(req.CampaignID),
		CreatedBy:  actor.ProfileID,
	}
	if err := u.repo.ReplaceStatus(ctx, st); err != nil {
		return nil, fmt.Errorf("set status of zip code %s: %w", req.ZipCodeID, err)
	}
	u.logger.Info("zip code status changed",
		slog.String("zip_code_id", st.ZipCodeID),
		slog.Bool("is_active", st.IsActive),
		slog.String("actor", actor.ProfileID),
	)
	return st, nil
}

// IsActive reports whether the zip code is currently active, for campaignID
// when given. Unknown codes and zip codes without history are inactive.
func (u *ZipCodeUseCase) IsActive(ctx context.Context, code string, campaignID *string) (bool, error) {
	zc, err := u.repo.GetZipCodeByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return false, err
	}
	if zc == nil {
		return false, nil
	}
	st, err := u.repo.CurrentStatus(ctx, zc.ID)
	if err != nil {
		return false, err
	}
	if st == nil {
		return false, nil
	}
	return st.ActiveFor(trimmedOrNil(campaignID)), nil
}

// History returns every status of a zip code, newest first.
func (u *ZipCodeUseCase) History(ctx context.Context, zipCodeID string, actor *domain.Actor) ([]domain.ZipCodeStatus, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return u.repo.StatusHistory(ctx, zipCodeID)
}

func validateZipCode(zc domain.ZipCode) error {
	if !zipCodePattern.MatchString(zc.Code) {
		return port.NewValidationError("code", "must be 5 digits")
	}
	if zc.City == "" {
		return port.NewValidationError("city", "is required")
	}
	if !statePattern.MatchString(zc.State) {
		return port.NewValidationError("state", "must be a 2-letter state code")
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
