package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/port/mocks"
)

func fastPolling() MediaConfig {
	return MediaConfig{PollInterval: time.Millisecond, PollAttempts: 3}
}

func TestUploadURL(t *testing.T) {
	storage := mocks.NewMockObjectStorage(t)
	storage.EXPECT().
		PresignPut(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "profiles/biz-1/") && strings.HasSuffix(key, ".mp4")
		}), "video/mp4", 15*time.Minute).
		Return("https://bucket.s3.amazonaws.com/signed", nil)

	svc := NewMediaUseCase(storage, mocks.NewMockVideoHost(t), MediaConfig{})
	up, err := svc.UploadURL(context.Background(), port.UploadURLReq{
		ProfileID: "biz-1", Filename: "Intro.MP4", ContentType: "video/mp4",
	}, business)
	require.NoError(t, err)
	require.Equal(t, "https://bucket.s3.amazonaws.com/signed", up.URL)
	require.True(t, up.ExpiresAt.After(time.Now()))
}

func TestUploadURLOtherProfile(t *testing.T) {
	svc := NewMediaUseCase(mocks.NewMockObjectStorage(t), mocks.NewMockVideoHost(t), MediaConfig{})
	_, err := svc.UploadURL(context.Background(), port.UploadURLReq{
		ProfileID: "biz-2", Filename: "a.png", ContentType: "image/png",
	}, business)
	require.ErrorIs(t, err, port.ErrForbidden)
}

func TestUploadURLContentType(t *testing.T) {
	svc := NewMediaUseCase(mocks.NewMockObjectStorage(t), mocks.NewMockVideoHost(t), MediaConfig{})
	_, err := svc.UploadURL(context.Background(), port.UploadURLReq{
		ProfileID: "biz-1", Filename: "run.sh", ContentType: "text/x-shellscript",
	}, admin)
	require.ErrorIs(t, err, port.ErrValidation)
}

func TestWaitForVideoReady(t *testing.T) {
	defer goleak.VerifyNone(t)

	videos := mocks.NewMockVideoHost(t)
	videos.EXPECT().GetAsset(mock.Anything, "a1").Return(&domain.VideoAsset{ID: "a1", Status: domain.VideoPreparing}, nil).Twice()
	videos.EXPECT().GetAsset(mock.Anything, "a1").Return(&domain.VideoAsset{ID: "a1", Status: domain.VideoReady, PlaybackID: "pb"}, nil).Once()

	asset, err := NewMediaUseCase(nil, videos, fastPolling()).WaitForVideo(context.Background(), "a1", business)
	require.NoError(t, err)
	require.Equal(t, "pb", asset.PlaybackID)
}

func TestWaitForVideoExhausted(t *testing.T) {
	defer goleak.VerifyNone(t)

	videos := mocks.NewMockVideoHost(t)
	videos.EXPECT().GetAsset(mock.Anything, "a1").Return(&domain.VideoAsset{ID: "a1", Status: domain.VideoPreparing}, nil).Times(3)

	_, err := NewMediaUseCase(nil, videos, fastPolling()).WaitForVideo(context.Background(), "a1", business)
	require.ErrorIs(t, err, port.ErrVideoNotReady)
}

func TestWaitForVideoErrored(t *testing.T) {
	videos := mocks.NewMockVideoHost(t)
	videos.EXPECT().GetAsset(mock.Anything, "a1").Return(&domain.VideoAsset{ID: "a1", Status: domain.VideoErrored}, nil).Once()

	_, err := NewMediaUseCase(nil, videos, fastPolling()).WaitForVideo(context.Background(), "a1", business)
	require.ErrorIs(t, err, port.ErrVideoFailed)
}

func TestWaitForVideoCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	videos := mocks.NewMockVideoHost(t)
	videos.EXPECT().GetAsset(mock.Anything, "a1").
		RunAndReturn(func(context.Context, string) (*domain.VideoAsset, error) {
			cancel()
			return &domain.VideoAsset{ID: "a1", Status: domain.VideoPreparing}, nil
		}).Once()

	svc := NewMediaUseCase(nil, videos, MediaConfig{PollInterval: time.Hour, PollAttempts: 5})
	_, err := svc.WaitForVideo(ctx, "a1", business)
	require.ErrorIs(t, err, context.Canceled)
}
