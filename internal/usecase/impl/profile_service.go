package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"getlife/internal/domain/entity"
	"getlife/internal/domain/repository"
	"getlife/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	store  repository.Store
	logger *slog.Logger
}

// ProfileServiceParams holds dependencies for the profile service, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Store  repository.Store
	Logger *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *profileService) List(ctx context.Context) ([]entity.Profile, error) {
	profiles, err := srv.store.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list profiles")
	}

	return profiles, nil
}
