// Package failover exposes the two storage backends as a single
// repository.Store. The remote store is preferred; the first backend
// error permanently demotes the facade to the local store for the rest
// of the process lifetime. There is no promotion back.
package failover

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"

	"getlife/internal/domain/entity"
	"getlife/internal/domain/repository"
)

// Facade routes every store operation to the active backend.
type Facade struct {
	remote repository.Store
	local  repository.Store
	logger *slog.Logger

	remoteOK atomic.Bool
}

// New builds the facade. A nil remote store pins it to the local
// backend from the start.
func New(remote repository.Store, local repository.Store, logger *slog.Logger) *Facade {
	f := &Facade{
		remote: remote,
		local:  local,
		logger: logger,
	}
	f.remoteOK.Store(remote != nil)

	return f
}

// Probe performs the startup reachability check against the remote
// backend. A failed probe demotes immediately, so the first real
// operation already runs against the local store.
func (f *Facade) Probe(ctx context.Context) {
	if !f.remoteOK.Load() {
		f.logger.Info("remote store disabled, running on local store")

		return
	}

	if _, err := f.remote.ListAccounts(ctx); err != nil {
		f.demote(err)

		return
	}

	f.logger.Info("remote store reachable")
}

// RemoteActive reports whether the facade still routes to the remote
// backend. Once false it stays false.
func (f *Facade) RemoteActive() bool {
	return f.remoteOK.Load()
}

// Backend names the active backend for health reporting.
func (f *Facade) Backend() string {
	if f.remoteOK.Load() {
		return "remote"
	}

	return "local"
}

func (f *Facade) demote(err error) {
	if f.remoteOK.CompareAndSwap(true, false) {
		f.logger.Warn("remote store unavailable, switching to local store",
			slog.Any("error", err))
	}
}

// run routes a write through the active backend. A not-found result
// from the remote store is a domain miss, not backend trouble, so it
// is returned as-is without demoting.
func (f *Facade) run(op func(repository.Store) error) error {
	if f.remoteOK.Load() {
		err := op(f.remote)
		if err == nil || errors.Is(err, repository.ErrRecordNotFound) {
			return err
		}

		f.demote(err)
	}

	return op(f.local)
}

func fetch[T any](f *Facade, op func(repository.Store) ([]T, error)) ([]T, error) {
	if f.remoteOK.Load() {
		records, err := op(f.remote)
		if err == nil {
			return records, nil
		}

		f.demote(err)
	}

	return op(f.local)
}

func (f *Facade) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	return fetch(f, func(s repository.Store) ([]entity.Account, error) {
		return s.ListAccounts(ctx)
	})
}

func (f *Facade) AddAccount(ctx context.Context, account entity.Account) error {
	return f.run(func(s repository.Store) error { return s.AddAccount(ctx, account) })
}

func (f *Facade) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	return fetch(f, func(s repository.Store) ([]entity.Profile, error) {
		return s.ListProfiles(ctx)
	})
}

func (f *Facade) AddProfile(ctx context.Context, profile entity.Profile) error {
	return f.run(func(s repository.Store) error { return s.AddProfile(ctx, profile) })
}

func (f *Facade) UpdateProfile(ctx context.Context, email string, patch entity.ProfilePatch) error {
	return f.run(func(s repository.Store) error { return s.UpdateProfile(ctx, email, patch) })
}

func (f *Facade) ListApplications(ctx context.Context) ([]entity.PartnerApplication, error) {
	return fetch(f, func(s repository.Store) ([]entity.PartnerApplication, error) {
		return s.ListApplications(ctx)
	})
}

func (f *Facade) AddApplication(ctx context.Context, application entity.PartnerApplication) error {
	return f.run(func(s repository.Store) error { return s.AddApplication(ctx, application) })
}

func (f *Facade) UpdateApplication(ctx context.Context, id string, patch entity.ApplicationPatch) error {
	return f.run(func(s repository.Store) error { return s.UpdateApplication(ctx, id, patch) })
}

func (f *Facade) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return fetch(f, func(s repository.Store) ([]entity.Order, error) {
		return s.ListOrders(ctx)
	})
}

func (f *Facade) AddOrder(ctx context.Context, order entity.Order) error {
	return f.run(func(s repository.Store) error { return s.AddOrder(ctx, order) })
}

func (f *Facade) UpdateOrder(ctx context.Context, id string, patch entity.OrderPatch) error {
	return f.run(func(s repository.Store) error { return s.UpdateOrder(ctx, id, patch) })
}

func (f *Facade) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return fetch(f, func(s repository.Store) ([]entity.Transaction, error) {
		return s.ListTransactions(ctx)
	})
}

func (f *Facade) AddTransaction(ctx context.Context, transaction entity.Transaction) error {
	return f.run(func(s repository.Store) error { return s.AddTransaction(ctx, transaction) })
}

func (f *Facade) UpdateTransaction(ctx context.Context, id string, patch entity.TransactionPatch) error {
	return f.run(func(s repository.Store) error { return s.UpdateTransaction(ctx, id, patch) })
}

func (f *Facade) ListChatMessages(ctx context.Context) ([]entity.ChatMessage, error) {
	return fetch(f, func(s repository.Store) ([]entity.ChatMessage, error) {
		return s.ListChatMessages(ctx)
	})
}

func (f *Facade) AddChatMessage(ctx context.Context, message entity.ChatMessage) error {
	return f.run(func(s repository.Store) error { return s.AddChatMessage(ctx, message) })
}

func (f *Facade) ListBlockedAccounts(ctx context.Context) ([]string, error) {
	return fetch(f, func(s repository.Store) ([]string, error) {
		return s.ListBlockedAccounts(ctx)
	})
}

func (f *Facade) AddBlockedAccount(ctx context.Context, email string) error {
	return f.run(func(s repository.Store) error { return s.AddBlockedAccount(ctx, email) })
}

func (f *Facade) RemoveBlockedAccount(ctx context.Context, email string) error {
	return f.run(func(s repository.Store) error { return s.RemoveBlockedAccount(ctx, email) })
}
