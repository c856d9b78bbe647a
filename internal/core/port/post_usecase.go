package port

import (
	"context"

	"localreach/internal/core/domain"
)

// PostUseCase curates posts into collections and rewrites them with AI.
type PostUseCase interface {
	// Rewrite classifies and rewrites a post with the default AI prompts and
	// stores the result as its final content.
	Rewrite(ctx context.Context, postID string, actor *domain.Actor) (*domain.Post, error)
	CreateCollection(ctx context.Context, name string, actor *domain.Actor) (*domain.Collection, error)
	AddToCollection(ctx context.Context, collectionID, postID string, actor *domain.Actor) error
	CollectionPosts(ctx context.Context, collectionID string, actor *domain.Actor) ([]domain.Post, error)
}

// SubscriptionUseCase lets signed-in profiles manage their newsletter
// subscriptions.
type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, listID string, actor *domain.Actor) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, listID string, actor *domain.Actor) error
}

// MediaUseCase issues media uploads and tracks hosted video processing.
type MediaUseCase interface {
	UploadURL(ctx context.Context, req UploadURLReq, actor *domain.Actor) (*domain.UploadURL, error)
	// WaitForVideo polls the video host until the asset is ready, failed, or
	// the attempts run out.
	WaitForVideo(ctx context.Context, assetID string, actor *domain.Actor) (*domain.VideoAsset, error)
}

type UploadURLReq struct {
	ProfileID   string `json:"profile_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}
