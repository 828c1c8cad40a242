package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"getlife/internal/domain/entity"
	domainerrors "getlife/internal/domain/errors"
	"getlife/internal/domain/repository"
	"getlife/internal/usecase"
)

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	store  repository.Store
	logger *slog.Logger
}

// PartnerServiceParams holds dependencies for the partner service, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	Store  repository.Store
	Logger *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// Apply files a pending application for admin review.
func (srv *partnerService) Apply(ctx context.Context, input usecase.ApplyInput) (*entity.PartnerApplication, error) {
	if !input.Expertise.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown service expertise")
	}

	application := entity.PartnerApplication{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		Expertise: input.Expertise,
		Reason:    input.Reason,
		IDPhoto:   input.IDPhoto,
		Status:    entity.ApplicationPending,
		CreatedAt: time.Now(),
	}

	if err := srv.store.AddApplication(ctx, application); err != nil {
		return nil, errors.Wrap(err, "add application")
	}

	srv.logger.Info("mitra application filed",
		slog.String("id", application.ID),
		slog.String("email", application.Email))

	return &application, nil
}

func (srv *partnerService) ListApplications(ctx context.Context) ([]entity.PartnerApplication, error) {
	applications, err := srv.store.ListApplications(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list applications")
	}

	return applications, nil
}

// Review decides a pending application. Approval promotes the
// applicant's profile to verified; an applicant who never registered
// has no profile yet, and the promotion is skipped silently.
func (srv *partnerService) Review(ctx context.Context, id string, approve bool) error {
	applications, err := srv.store.ListApplications(ctx)
	if err != nil {
		return errors.Wrap(err, "list applications")
	}

	application, found := findApplication(applications, id)
	if !found {
		return domainerrors.ErrApplicationNotFound
	}
	if application.Status != entity.ApplicationPending {
		return domainerrors.ErrApplicationReviewed
	}

	decision := entity.ApplicationRejected
	if approve {
		decision = entity.ApplicationApproved
	}

	if err := srv.store.UpdateApplication(ctx, id, entity.ApplicationPatch{Status: &decision}); err != nil {
		return errors.Wrap(err, "update application")
	}

	if approve {
		verified := entity.ProfileVerified
		err := srv.store.UpdateProfile(ctx, application.Email, entity.ProfilePatch{Status: &verified})
		if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
			return errors.Wrap(err, "promote applicant profile")
		}
	}

	srv.logger.Info("mitra application reviewed",
		slog.String("id", id),
		slog.String("decision", decision.String()))

	return nil
}

// Block puts the email on the denylist. The profile status is patched
// to blocked for dashboards, but the denylist alone bars login.
func (srv *partnerService) Block(ctx context.Context, email string) error {
	blocked, err := srv.store.ListBlockedAccounts(ctx)
	if err != nil {
		return errors.Wrap(err, "list blocked accounts")
	}
	if isBlocked(blocked, email) {
		return nil
	}

	if err := srv.store.AddBlockedAccount(ctx, email); err != nil {
		return errors.Wrap(err, "add blocked account")
	}

	status := entity.ProfileBlocked
	err = srv.store.UpdateProfile(ctx, email, entity.ProfilePatch{Status: &status})
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return errors.Wrap(err, "mark profile blocked")
	}

	srv.logger.Info("account blocked", slog.String("email", email))

	return nil
}

// Unblock removes the email from the denylist. A mitra profile goes
// back to verified so it can log in again; other roles go back to
// active.
func (srv *partnerService) Unblock(ctx context.Context, email string) error {
	if err := srv.store.RemoveBlockedAccount(ctx, email); err != nil {
		return errors.Wrap(err, "remove blocked account")
	}

	profiles, err := srv.store.ListProfiles(ctx)
	if err != nil {
		return errors.Wrap(err, "list profiles")
	}

	profile, found := findProfile(profiles, email)
	if !found {
		return nil
	}

	status := entity.ProfileActive
	if profile.Role == entity.RoleMitra {
		status = entity.ProfileVerified
	}

	err = srv.store.UpdateProfile(ctx, email, entity.ProfilePatch{Status: &status})
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return errors.Wrap(err, "restore profile status")
	}

	srv.logger.Info("account unblocked", slog.String("email", email))

	return nil
}

func (srv *partnerService) ListBlocked(ctx context.Context) ([]string, error) {
	blocked, err := srv.store.ListBlockedAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list blocked accounts")
	}

	return blocked, nil
}
