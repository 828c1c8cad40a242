// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application
// layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"getlife/internal/domain/entity"
)

// ErrRecordNotFound is returned when an update targets a record that
// does not exist in the backend.
var ErrRecordNotFound = errors.New("record not found")

// Store is the uniform CRUD capability over the six record kinds plus
// the denylist. Two implementations exist (remote document store,
// local key-value store); a failover decorator wraps them with the
// one-way demotion policy. The application layer depends on this
// interface, never on a concrete backend.
type Store interface {
	// Accounts
	ListAccounts(ctx context.Context) ([]entity.Account, error)
	AddAccount(ctx context.Context, account entity.Account) error

	// Profiles, keyed by account email.
	ListProfiles(ctx context.Context) ([]entity.Profile, error)
	AddProfile(ctx context.Context, profile entity.Profile) error
	UpdateProfile(ctx context.Context, email string, patch entity.ProfilePatch) error

	// Mitra applications, keyed by ID.
	ListApplications(ctx context.Context) ([]entity.PartnerApplication, error)
	AddApplication(ctx context.Context, application entity.PartnerApplication) error
	UpdateApplication(ctx context.Context, id string, patch entity.ApplicationPatch) error

	// Orders, keyed by ID.
	ListOrders(ctx context.Context) ([]entity.Order, error)
	AddOrder(ctx context.Context, order entity.Order) error
	UpdateOrder(ctx context.Context, id string, patch entity.OrderPatch) error

	// Transactions, keyed by ID.
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)
	AddTransaction(ctx context.Context, transaction entity.Transaction) error
	UpdateTransaction(ctx context.Context, id string, patch entity.TransactionPatch) error

	// Chat messages, append-only, listed in timestamp order.
	ListChatMessages(ctx context.Context) ([]entity.ChatMessage, error)
	AddChatMessage(ctx context.Context, message entity.ChatMessage) error

	// Denylist of account emails barred from mitra login.
	ListBlockedAccounts(ctx context.Context) ([]string, error)
	AddBlockedAccount(ctx context.Context, email string) error
	RemoveBlockedAccount(ctx context.Context, email string) error
}

// SessionStore tracks at most one logged-in identity, process-wide.
// The identity lives in local persistence only, never in the remote
// store, so it does not travel across devices.
type SessionStore interface {
	// Set persists the identity, overwriting any prior value.
	Set(ctx context.Context, identity string) error

	// Get returns the persisted identity, or "" when nobody is logged in.
	Get(ctx context.Context) (string, error)

	// Clear removes the identity.
	Clear(ctx context.Context) error
}
