package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
	"localreach/internal/core/port/mocks"
)

var subscriber = &domain.Actor{ProfileID: "sub-1", Role: domain.RoleSubscriber}

func TestSubscribeCreates(t *testing.T) {
	repo := mocks.NewMockSubscriptionRepository(t)
	repo.EXPECT().GetList(mock.Anything, "l1").Return(&domain.EmailList{ID: "l1"}, nil)
	repo.EXPECT().ActiveSubscription(mock.Anything, "l1", "sub-1").Return(nil, nil)
	repo.EXPECT().
		CreateSubscription(mock.Anything, mock.MatchedBy(func(s *domain.Subscription) bool {
			return s.ListID == "l1" && s.ProfileID == "sub-1"
		})).
		Run(func(ctx context.Context, s *domain.Subscription) { s.ID = "s1" }).
		Return(nil)

	s, err := NewSubscriptionUseCase(repo).Subscribe(context.Background(), "l1", subscriber)
	require.NoError(t, err)
	require.Equal(t, "s1", s.ID)
	require.True(t, s.Active())
}

func TestSubscribeIsIdempotent(t *testing.T) {
	repo := mocks.NewMockSubscriptionRepository(t)
	existing := &domain.Subscription{ID: "s0", ListID: "l1", ProfileID: "sub-1"}
	repo.EXPECT().GetList(mock.Anything, "l1").Return(&domain.EmailList{ID: "l1"}, nil)
	repo.EXPECT().ActiveSubscription(mock.Anything, "l1", "sub-1").Return(existing, nil)

	s, err := NewSubscriptionUseCase(repo).Subscribe(context.Background(), "l1", subscriber)
	require.NoError(t, err)
	require.Same(t, existing, s)
}

func TestSubscribeUnknownList(t *testing.T) {
	repo := mocks.NewMockSubscriptionRepository(t)
	repo.EXPECT().GetList(mock.Anything, "l1").Return(nil, nil)

	_, err := NewSubscriptionUseCase(repo).Subscribe(context.Background(), "l1", subscriber)
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestSubscribeAnonymous(t *testing.T) {
	_, err := NewSubscriptionUseCase(mocks.NewMockSubscriptionRepository(t)).Subscribe(context.Background(), "l1", nil)
	require.ErrorIs(t, err, port.ErrUnauthenticated)
}

func TestUnsubscribe(t *testing.T) {
	repo := mocks.NewMockSubscriptionRepository(t)
	repo.EXPECT().ActiveSubscription(mock.Anything, "l1", "sub-1").Return(&domain.Subscription{ID: "s1"}, nil)
	repo.EXPECT().EndSubscription(mock.Anything, "s1").Return(nil)

	require.NoError(t, NewSubscriptionUseCase(repo).Unsubscribe(context.Background(), "l1", subscriber))
}

func TestUnsubscribeWithoutSubscription(t *testing.T) {
	repo := mocks.NewMockSubscriptionRepository(t)
	repo.EXPECT().ActiveSubscription(mock.Anything, "l1", "sub-1").Return(nil, nil)

	err := NewSubscriptionUseCase(repo).Unsubscribe(context.Background(), "l1", subscriber)
	require.ErrorIs(t, err, port.ErrNotFound)
}
