package usecase

import (
	"log/slog"

	"localreach/internal/core/domain"
)

var (
	admin    = &domain.Actor{ProfileID: "admin-1", Role: domain.RoleAdmin}
	business = &domain.Actor{ProfileID: "biz-1", Role: domain.RoleBusiness}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T { return &v }
