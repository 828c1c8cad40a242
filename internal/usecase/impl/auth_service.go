package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"getlife/config"
	"getlife/internal/domain/entity"
	domainerrors "getlife/internal/domain/errors"
	"getlife/internal/domain/repository"
	"getlife/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	store   repository.Store
	session repository.SessionStore
	seed    config.SeedConfig
	logger  *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Store   repository.Store
	Session repository.SessionStore
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		store:   params.Store,
		session: params.Session,
		seed:    params.Config.Seed,
		logger:  params.Logger,
	}
}

// Register creates the credential record and its profile. The two
// writes are not atomic; a failed profile write leaves a profile-less
// account, which the session resolution treats as logged out.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.AccountProfile, error) {
	if !input.Role.Registrable() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be user or mitra")
	}

	accounts, err := srv.store.ListAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}

	if _, taken := findAccount(accounts, input.Email); taken {
		return nil, domainerrors.ErrEmailTaken
	}

	account := entity.Account{
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	}
	if err := srv.store.AddAccount(ctx, account); err != nil {
		return nil, errors.Wrap(err, "add account")
	}

	profile := entity.Profile{
		Email:   input.Email,
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Role:    input.Role,
		Status:  entity.ProfileActive,
		Balance: 0,
	}
	if err := srv.store.AddProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "add profile")
	}

	srv.logger.Info("account registered",
		slog.String("email", account.Email),
		slog.String("role", account.Role.String()))

	return entity.Merge(account, profile), nil
}

// Login validates the credentials and, for mitra accounts, applies the
// denylist and verification gates in that order. Profile records are
// consulted only for mitra; other roles get the bare account view and
// pick up their profile through CurrentUser. A mitra without a profile
// record skips the verification gate and logs in.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.AccountProfile, error) {
	accounts, err := srv.store.ListAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}

	account, found := findAccount(accounts, input.Email)
	if !found || account.Password != input.Password {
		return nil, domainerrors.ErrInvalidCredentials
	}

	logged := &entity.AccountProfile{Email: account.Email, Role: account.Role}

	if account.Role == entity.RoleMitra {
		blocked, err := srv.store.ListBlockedAccounts(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list blocked accounts")
		}
		if isBlocked(blocked, account.Email) {
			return nil, domainerrors.ErrAccountBlocked
		}

		profiles, err := srv.store.ListProfiles(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list profiles")
		}
		if profile, hasProfile := findProfile(profiles, account.Email); hasProfile {
			if profile.Status != entity.ProfileVerified {
				return nil, domainerrors.ErrPendingVerification
			}

			logged = entity.Merge(account, profile)
		}
	}

	if err := srv.session.Set(ctx, account.Email); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	srv.logger.Info("login",
		slog.String("email", account.Email),
		slog.String("role", account.Role.String()))

	return logged, nil
}

// Logout clears the session. It is a no-op when nobody is logged in.
func (srv *authService) Logout(ctx context.Context) error {
	if err := srv.session.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear session")
	}

	return nil
}

// CurrentUser resolves the persisted identity against both record
// kinds. Either half missing yields a logged-out result rather than an
// error, so a damaged pair degrades to the landing page.
func (srv *authService) CurrentUser(ctx context.Context) (*entity.AccountProfile, error) {
	identity, err := srv.session.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read session")
	}
	if identity == "" {
		return nil, nil
	}

	accounts, err := srv.store.ListAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}
	account, accountFound := findAccount(accounts, identity)

	profiles, err := srv.store.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list profiles")
	}
	profile, profileFound := findProfile(profiles, identity)

	if !accountFound || !profileFound {
		return nil, nil
	}

	return entity.Merge(account, profile), nil
}

// EnsureAdmin seeds the configured admin account and profile when no
// account with that email exists yet.
func (srv *authService) EnsureAdmin(ctx context.Context) error {
	if srv.seed.AdminEmail == "" {
		return nil
	}

	accounts, err := srv.store.ListAccounts(ctx)
	if err != nil {
		return errors.Wrap(err, "list accounts")
	}

	if _, exists := findAccount(accounts, srv.seed.AdminEmail); exists {
		return nil
	}

	account := entity.Account{
		Email:    srv.seed.AdminEmail,
		Password: srv.seed.AdminPassword,
		Role:     entity.RoleAdmin,
	}
	if err := srv.store.AddAccount(ctx, account); err != nil {
		return errors.Wrap(err, "seed admin account")
	}

	profile := entity.Profile{
		Email:  srv.seed.AdminEmail,
		Name:   srv.seed.AdminName,
		Role:   entity.RoleAdmin,
		Status: entity.ProfileActive,
	}
	if err := srv.store.AddProfile(ctx, profile); err != nil {
		return errors.Wrap(err, "seed admin profile")
	}

	srv.logger.Info("seeded admin account", slog.String("email", srv.seed.AdminEmail))

	return nil
}
