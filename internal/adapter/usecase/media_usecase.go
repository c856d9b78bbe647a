package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

// MediaConfig tunes uploads and video polling.
type MediaConfig struct {
	// PresignTTL is how long an upload URL stays valid.
	PresignTTL time.Duration
	// PollInterval is the fixed delay between video status checks.
	PollInterval time.Duration
	// PollAttempts caps the number of status checks.
	PollAttempts int
}

// MediaUseCase issues upload URLs for profile media and waits for hosted
// videos to finish transcoding.
type MediaUseCase struct {
	storage port.ObjectStorage
	videos  port.VideoHost
	cfg     MediaConfig

	now func() time.Time
}

// NewMediaUseCase creates a MediaUseCase. Zero config fields take the
// defaults: 15 minute URLs, a 5 second poll interval and 12 attempts.
func NewMediaUseCase(storage port.ObjectStorage, videos port.VideoHost, cfg MediaConfig) *MediaUseCase {
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = 15 * time.Minute
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.PollAttempts <= 0 {
		cfg.PollAttempts = 12
	}
	return &MediaUseCase{storage: storage, videos: videos, cfg: cfg, now: time.Now}
}

// UploadURL returns a presigned PUT URL for an image or video of a profile.
// Only admins and the profile owner may upload.
func (u *MediaUseCase) UploadURL(ctx context.Context, req port.UploadURLReq, actor *domain.Actor) (*domain.UploadURL, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if req.ProfileID == "" {
		return nil, port.NewValidationError("profile_id", "is required")
	}
	if !actor.IsAdmin() && actor.ProfileID != req.ProfileID {
		return nil, port.ErrForbidden
	}
	if !strings.HasPrefix(req.ContentType, "image/") && !strings.HasPrefix(req.ContentType, "video/") {
		return nil, port.NewValidationError("content_type", "must be an image or video type")
	}

	key := fmt.Sprintf("profiles/%s/%s%s", req.ProfileID, uuid.NewString(), strings.ToLower(path.Ext(req.Filename)))
	url, err := u.storage.PresignPut(ctx, key, req.ContentType, u.cfg.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	return &domain.UploadURL{URL: url, Key: key, ExpiresAt: u.now().Add(u.cfg.PresignTTL).UTC()}, nil
}

// WaitForVideo checks the asset every PollInterval until it is ready. It
// fails with ErrVideoFailed when the host reports an error and with
// ErrVideoNotReady once PollAttempts checks saw it still processing.
func (u *MediaUseCase) WaitForVideo(ctx context.Context, assetID string, actor *domain.Actor) (*domain.VideoAsset, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if assetID == "" {
		return nil, port.NewValidationError("asset_id", "is required")
	}

	for attempt := 1; ; attempt++ {
		asset, err := u.videos.GetAsset(ctx, assetID)
		if err != nil {
			return nil, err
		}
		switch asset.Status {
		case domain.VideoReady:
			return asset, nil
		case domain.VideoErrored:
			return nil, fmt.Errorf("asset %s: %w", assetID, port.ErrVideoFailed)
		}
		if attempt >= u.cfg.PollAttempts {
			return nil, fmt.Errorf("asset %s after %d attempts: %w", assetID, attempt, port.ErrVideoNotReady)
		}

		timer := time.NewTimer(u.cfg.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
