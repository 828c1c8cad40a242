package usecase

import (
	"context"

	"getlife/internal/domain/entity"
)

// ProfileUsecase exposes the profile directory for admin dashboards.
type ProfileUsecase interface {
	List(ctx context.Context) ([]entity.Profile, error)
}
