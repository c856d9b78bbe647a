package usecase

import (
	"context"
	"fmt"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

// SubscriptionUseCase subscribes the calling profile to email lists.
type SubscriptionUseCase struct {
	repo port.SubscriptionRepository
}

// NewSubscriptionUseCase creates a SubscriptionUseCase.
func NewSubscriptionUseCase(repo port.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo}
}

// Subscribe returns the caller's active subscription to the list, creating
// it when there is none.
func (u *SubscriptionUseCase) Subscribe(ctx context.Context, listID string, actor *domain.Actor) (*domain.Subscription, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	list, err := u.repo.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("list %s: %w", listID, port.ErrNotFound)
	}
	existing, err := u.repo.ActiveSubscription(ctx, listID, actor.ProfileID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	s := &domain.Subscription{ListID: listID, ProfileID: actor.ProfileID}
	if err = u.repo.CreateSubscription(ctx, s); err != nil {
		return nil, fmt.Errorf("subscribe to list %s: %w", listID, err)
	}
	return s, nil
}

// Unsubscribe ends the caller's active subscription to the list.
func (u *SubscriptionUseCase) Unsubscribe(ctx context.Context, listID string, actor *domain.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	existing, err := u.repo.ActiveSubscription(ctx, listID, actor.ProfileID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("subscription to list %s: %w", listID, port.ErrNotFound)
	}
	return u.repo.EndSubscription(ctx, existing.ID)
}
