package port

import (
	"context"

	"localreach/internal/core/domain"
)

// PostRepository persists posts, collections and AI prompts.
type PostRepository interface {
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	// UpdateFinalContent stores the curated content and type of a post.
	UpdateFinalContent(ctx context.Context, id, content string, typ domain.PostType) error

	CreateCollection(ctx context.Context, c *domain.Collection) error
	GetCollection(ctx context.Context, id string) (*domain.Collection, error)
	// AddPostToCollection is a no-op when the post is already in the
	// collection.
	AddPostToCollection(ctx context.Context, collectionID, postID string) error
	// ListCollectionPosts returns the posts of a collection, most recently
	// published first.
	ListCollectionPosts(ctx context.Context, collectionID string) ([]domain.Post, error)

	// DefaultPrompt returns the active default prompt of a type.
	DefaultPrompt(ctx context.Context, typ domain.PromptType) (*domain.AIPrompt, error)
}

// ProfileRepository reads platform profiles.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
}

// SubscriptionRepository persists list subscriptions.
type SubscriptionRepository interface {
	GetList(ctx context.Context, id string) (*domain.EmailList, error)
	// ActiveSubscription returns the active subscription of a profile to a
	// list.
	ActiveSubscription(ctx context.Context, listID, profileID string) (*domain.Subscription, error)
	CreateSubscription(ctx context.Context, s *domain.Subscription) error
	// EndSubscription sets unsubscribed_at on a subscription.
	EndSubscription(ctx context.Context, id string) error
}
