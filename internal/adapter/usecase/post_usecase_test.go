package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/port/mocks"
	"localreach/internal/core/tagmerge"
)

func TestRewritePost(t *testing.T) {
	posts := mocks.NewMockPostRepository(t)
	profiles := mocks.NewMockProfileRepository(t)
	gen := mocks.NewMockTextGenerator(t)

	posts.EXPECT().GetPost(mock.Anything, "p1").
		Return(&domain.Post{ID: "p1", ProfileID: "biz-1", Content: "Half price tacos tuesday"}, nil)
	posts.EXPECT().DefaultPrompt(mock.Anything, domain.PromptContent).
		Return(&domain.AIPrompt{Prompt: "Rewrite this {{post_type}} from {{business_name}}: {{content}}"}, nil)
	posts.EXPECT().DefaultPrompt(mock.Anything, domain.PromptTypeID).
		Return(&domain.AIPrompt{Prompt: "Classify: {{content}}"}, nil)
	profiles.EXPECT().GetProfile(mock.Anything, "biz-1").
		Return(&domain.Profile{ID: "biz-1", BusinessName: ptr("Casa Taco")}, nil)

	gen.EXPECT().Generate(mock.Anything, "Classify: Half price tacos tuesday").Return(" Promotion.\n", nil)
	gen.EXPECT().
		Generate(mock.Anything, "Rewrite this promotion from Casa Taco: Half price tacos tuesday").
		Return("  Tacos are half price every Tuesday!  ", nil)
	posts.EXPECT().
		UpdateFinalContent(mock.Anything, "p1", "Tacos are half price every Tuesday!", domain.PostTypePromotion).
		Return(nil)

	svc := NewPostUseCase(posts, profiles, gen, tagmerge.NewSanitizer(), discardLogger())
	post, err := svc.Rewrite(context.Background(), "p1", admin)
	require.NoError(t, err)
	require.Equal(t, "Tacos are half price every Tuesday!", *post.FinalContent)
	require.Equal(t, domain.PostTypePromotion, *post.FinalType)
}

func TestRewritePostWithoutClassifier(t *testing.T) {
	posts := mocks.NewMockPostRepository(t)
	profiles := mocks.NewMockProfileRepository(t)
	gen := mocks.NewMockTextGenerator(t)

	posts.EXPECT().GetPost(mock.Anything, "p1").
		Return(&domain.Post{ID: "p1", ProfileID: "biz-1", Content: "hi", FinalType: ptr(domain.PostTypeEvent)}, nil)
	posts.EXPECT().DefaultPrompt(mock.Anything, domain.PromptContent).
		Return(&domain.AIPrompt{Prompt: "{{business_name}}|{{post_type}}|{{content}}"}, nil)
	posts.EXPECT().DefaultPrompt(mock.Anything, domain.PromptTypeID).Return(nil, nil)
	profiles.EXPECT().GetProfile(mock.Anything, "biz-1").Return(nil, nil)

	gen.EXPECT().Generate(mock.Anything, "Unknown Business|event|hi").Return("Hello!", nil)
	posts.EXPECT().UpdateFinalContent(mock.Anything, "p1", "Hello!", domain.PostTypeEvent).Return(nil)

	svc := NewPostUseCase(posts, profiles, gen, tagmerge.NewSanitizer(), discardLogger())
	_, err := svc.Rewrite(context.Background(), "p1", admin)
	require.NoError(t, err)
}

func TestRewritePostNeedsContentPrompt(t *testing.T) {
	posts := mocks.NewMockPostRepository(t)
	posts.EXPECT().GetPost(mock.Anything, "p1").Return(&domain.Post{ID: "p1"}, nil)
	posts.EXPECT().DefaultPrompt(mock.Anything, domain.PromptContent).Return(nil, nil)

	svc := NewPostUseCase(posts, mocks.NewMockProfileRepository(t), mocks.NewMockTextGenerator(t), tagmerge.NewSanitizer(), discardLogger())
	_, err := svc.Rewrite(context.Background(), "p1", admin)
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestRewritePostForbidden(t *testing.T) {
	svc := NewPostUseCase(mocks.NewMockPostRepository(t), mocks.NewMockProfileRepository(t), mocks.NewMockTextGenerator(t), tagmerge.NewSanitizer(), discardLogger())
	_, err := svc.Rewrite(context.Background(), "p1", business)
	require.ErrorIs(t, err, port.ErrForbidden)
}

func TestAddToCollection(t *testing.T) {
	posts := mocks.NewMockPostRepository(t)
	posts.EXPECT().GetCollection(mock.Anything, "col1").Return(&domain.Collection{ID: "col1"}, nil)
	posts.EXPECT().GetPost(mock.Anything, "p1").Return(&domain.Post{ID: "p1"}, nil)
	posts.EXPECT().AddPostToCollection(mock.Anything, "col1", "p1").Return(nil)

	svc := NewPostUseCase(posts, mocks.NewMockProfileRepository(t), mocks.NewMockTextGenerator(t), tagmerge.NewSanitizer(), discardLogger())
	require.NoError(t, svc.AddToCollection(context.Background(), "col1", "p1", admin))
}

func TestAddToMissingCollection(t *testing.T) {
	posts := mocks.NewMockPostRepository(t)
	posts.EXPECT().GetCollection(mock.Anything, "col1").Return(nil, nil)

	svc := NewPostUseCase(posts, mocks.NewMockProfileRepository(t), mocks.NewMockTextGenerator(t), tagmerge.NewSanitizer(), discardLogger())
	require.ErrorIs(t, svc.AddToCollection(context.Background(), "col1", "p1", admin), port.ErrNotFound)
}

func TestCreateCollectionValidation(t *testing.T) {
	svc := NewPostUseCase(mocks.NewMockPostRepository(t), mocks.NewMockProfileRepository(t), mocks.NewMockTextGenerator(t), tagmerge.NewSanitizer(), discardLogger())
	_, err := svc.CreateCollection(context.Background(), "   ", admin)
	require.ErrorIs(t, err, port.ErrValidation)
}
