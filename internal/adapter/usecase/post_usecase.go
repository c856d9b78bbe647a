package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/tagmerge"
)

// PostUseCase curates posts and rewrites them through the text generator.
type PostUseCase struct {
	posts     port.PostRepository
	profiles  port.ProfileRepository
	generator port.TextGenerator
	sanitizer *tagmerge.Sanitizer
	logger    *slog.Logger
}

// NewPostUseCase creates a PostUseCase.
func NewPostUseCase(posts port.PostRepository, profiles port.ProfileRepository, generator port.TextGenerator, sanitizer *tagmerge.Sanitizer, logger *slog.Logger) *PostUseCase {
	return &PostUseCase{posts: posts, profiles: profiles, generator: generator, sanitizer: sanitizer, logger: logger}
}

// Rewrite classifies a post with the default type_id prompt, when one is
// configured, then rewrites it with the default content prompt. Answers the
// classifier does not recognise fall back to the post's current type, or
// update.
func (u *PostUseCase) Rewrite(ctx context.Context, postID string, actor *domain.Actor) (*domain.Post, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	post, err := u.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", postID, port.ErrNotFound)
	}
	contentPrompt, err := u.posts.DefaultPrompt(ctx, domain.PromptContent)
	if err != nil {
		return nil, err
	}
	if contentPrompt == nil {
		return nil, fmt.Errorf("default content prompt: %w", port.ErrNotFound)
	}

	businessName, err := u.businessName(ctx, post.ProfileID)
	if err != nil {
		return nil, err
	}

	typ := domain.PostTypeUpdate
	if post.FinalType != nil {
		typ = *post.FinalType
	}
	typePrompt, err := u.posts.DefaultPrompt(ctx, domain.PromptTypeID)
	if err != nil {
		return nil, err
	}
	if typePrompt != nil {
		answer, err := u.generator.Generate(ctx, tagmerge.Merge(typePrompt.Prompt, tagmerge.PromptTags(*post, businessName, u.sanitizer)))
		if err != nil {
			return nil, fmt.Errorf("classify post %s: %w", postID, err)
		}
		if parsed, ok := domain.ParsePostType(answer); ok {
			typ = parsed
		} else {
			u.logger.Warn("unrecognised post type answer", slog.String("post_id", postID), slog.String("answer", answer))
		}
	}

	tags := tagmerge.PromptTags(*post, businessName, u.sanitizer)
	tags[tagmerge.TagPostType] = string(typ)
	content, err := u.generator.Generate(ctx, tagmerge.Merge(contentPrompt.Prompt, tags))
	if err != nil {
		return nil, fmt.Errorf("rewrite post %s: %w", postID, err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("rewrite post %s: empty answer from text generator", postID)
	}

	if err = u.posts.UpdateFinalContent(ctx, postID, content, typ); err != nil {
		return nil, err
	}
	post.FinalContent = &content
	post.FinalType = &typ
	return post, nil
}

func (u *PostUseCase) businessName(ctx context.Context, profileID string) (string, error) {
	profile, err := u.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile == nil || profile.BusinessName == nil {
		return "", nil
	}
	return *profile.BusinessName, nil
}

// CreateCollection stores a new, empty collection.
func (u *PostUseCase) CreateCollection(ctx context.Context, name string, actor *domain.Actor) (*domain.Collection, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, port.NewValidationError("name", "is required")
	}
	c := &domain.Collection{Name: name}
	if err := u.posts.CreateCollection(ctx, c); err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return c, nil
}

// AddToCollection adds an existing post to an existing collection.
func (u *PostUseCase) AddToCollection(ctx context.Context, collectionID, postID string, actor *domain.Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := u.requireCollection(ctx, collectionID); err != nil {
		return err
	}
	post, err := u.posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %s: %w", postID, port.ErrNotFound)
	}
	return u.posts.AddPostToCollection(ctx, collectionID, postID)
}

// CollectionPosts lists the posts of a collection.
func (u *PostUseCase) CollectionPosts(ctx context.Context, collectionID string, actor *domain.Actor) ([]domain.Post, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := u.requireCollection(ctx, collectionID); err != nil {
		return nil, err
	}
	return u.posts.ListCollectionPosts(ctx, collectionID)
}

func (u *PostUseCase) requireCollection(ctx context.Context, id string) error {
	c, err := u.posts.GetCollection(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("collection %s: %w", id, port.ErrNotFound)
	}
	return nil
}
