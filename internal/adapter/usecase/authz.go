package usecase

import (
	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

// requireActor fails with ErrUnauthenticated for anonymous callers.
func requireActor(actor *domain.Actor) error {
	if actor == nil || actor.ProfileID == "" {
		return port.ErrUnauthenticated
	}
	return nil
}

// requireAdmin additionally fails with ErrForbidden for non-admin callers.
func requireAdmin(actor *domain.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return port.ErrForbidden
	}
	return nil
}
