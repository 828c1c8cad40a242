package failover

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"getlife/internal/domain/entity"
	"getlife/internal/domain/repository"
	"getlife/internal/infra/persistence/local"
)

// erroringStore fails every operation and counts how often it was hit.
type erroringStore struct {
	calls int
}

func (s *erroringStore) err() error {
	s.calls++

	return assert.AnError
}

func (s *erroringStore) ListAccounts(context.Context) ([]entity.Account, error) {
	return nil, s.err()
}
func (s *erroringStore) AddAccount(context.Context, entity.Account) error { return s.err() }
func (s *erroringStore) ListProfiles(context.Context) ([]entity.Profile, error) {
	return nil, s.err()
}
func (s *erroringStore) AddProfile(context.Context, entity.Profile) error { return s.err() }
func (s *erroringStore) UpdateProfile(context.Context, string, entity.ProfilePatch) error {
	return s.err()
}
func (s *erroringStore) ListApplications(context.Context) ([]entity.PartnerApplication, error) {
	return nil, s.err()
}
func (s *erroringStore) AddApplication(context.Context, entity.PartnerApplication) error {
	return s.err()
}
func (s *erroringStore) UpdateApplication(context.Context, string, entity.ApplicationPatch) error {
	return s.err()
}
func (s *erroringStore) ListOrders(context.Context) ([]entity.Order, error) { return nil, s.err() }
func (s *erroringStore) AddOrder(context.Context, entity.Order) error       { return s.err() }
func (s *erroringStore) UpdateOrder(context.Context, string, entity.OrderPatch) error {
	return s.err()
}
func (s *erroringStore) ListTransactions(context.Context) ([]entity.Transaction, error) {
	return nil, s.err()
}
func (s *erroringStore) AddTransaction(context.Context, entity.Transaction) error { return s.err() }
func (s *erroringStore) UpdateTransaction(context.Context, string, entity.TransactionPatch) error {
	return s.err()
}
func (s *erroringStore) ListChatMessages(context.Context) ([]entity.ChatMessage, error) {
	return nil, s.err()
}
func (s *erroringStore) AddChatMessage(context.Context, entity.ChatMessage) error { return s.err() }
func (s *erroringStore) ListBlockedAccounts(context.Context) ([]string, error) {
	return nil, s.err()
}
func (s *erroringStore) AddBlockedAccount(context.Context, string) error    { return s.err() }
func (s *erroringStore) RemoveBlockedAccount(context.Context, string) error { return s.err() }

func newMemStore(t *testing.T) *local.Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return local.New(bucket)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFacade_PrefersRemoteWhileHealthy(t *testing.T) {
	remoteStore := newMemStore(t)
	localStore := newMemStore(t)
	facade := New(remoteStore, localStore, discardLogger())
	ctx := context.Background()

	require.NoError(t, facade.AddAccount(ctx, entity.Account{
		Email: "budi@example.com", Password: "rahasia", Role: entity.RoleUser,
	}))

	remoteAccounts, err := remoteStore.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, remoteAccounts, 1)

	localAccounts, err := localStore.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, localAccounts)

	assert.True(t, facade.RemoteActive())
	assert.Equal(t, "remote", facade.Backend())
}

func TestFacade_DemotesOnFirstRemoteError(t *testing.T) {
	remoteStore := &erroringStore{}
	localStore := newMemStore(t)
	facade := New(remoteStore, localStore, discardLogger())
	ctx := context.Background()

	require.NoError(t, localStore.AddAccount(ctx, entity.Account{
		Email: "budi@example.com", Password: "rahasia", Role: entity.RoleUser,
	}))

	accounts, err := facade.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	assert.False(t, facade.RemoteActive())
	assert.Equal(t, "local", facade.Backend())
	assert.Equal(t, 1, remoteStore.calls)
}

func TestFacade_DemotionIsPermanent(t *testing.T) {
	remoteStore := &erroringStore{}
	localStore := newMemStore(t)
	facade := New(remoteStore, localStore, discardLogger())
	ctx := context.Background()

	facade.Probe(ctx)
	require.False(t, facade.RemoteActive())

	require.NoError(t, facade.AddOrder(ctx, entity.Order{ID: "o1", Status: entity.OrderWaiting}))
	_, err := facade.ListOrders(ctx)
	require.NoError(t, err)

	// Only the probe ever reached the remote backend.
	assert.Equal(t, 1, remoteStore.calls)
}

func TestFacade_RemoteNotFoundDoesNotDemote(t *testing.T) {
	remoteStore := newMemStore(t)
	localStore := newMemStore(t)
	facade := New(remoteStore, localStore, discardLogger())
	ctx := context.Background()

	status := entity.ProfileVerified
	err := facade.UpdateProfile(ctx, "ghost@example.com", entity.ProfilePatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	assert.True(t, facade.RemoteActive())
}

func TestFacade_NilRemoteRunsLocalOnly(t *testing.T) {
	localStore := newMemStore(t)
	facade := New(nil, localStore, discardLogger())
	ctx := context.Background()

	facade.Probe(ctx)
	assert.False(t, facade.RemoteActive())

	require.NoError(t, facade.AddBlockedAccount(ctx, "nakal@example.com"))

	blocked, err := localStore.ListBlockedAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"nakal@example.com"}, blocked)
}
