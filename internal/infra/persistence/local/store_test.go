package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"getlife/internal/domain/entity"
	"getlife/internal/domain/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return New(bucket)
}

func TestStore_EmptyKeysListAsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	blocked, err := store.ListBlockedAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, blocked)
}

func TestStore_AddAndListAccounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	account := entity.Account{Email: "budi@example.com", Password: "rahasia", Role: entity.RoleUser}
	require.NoError(t, store.AddAccount(ctx, account))

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, account, accounts[0])
}

func TestStore_UpdateProfilePatchesMatchingEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddProfile(ctx, entity.Profile{
		Email:  "mitra@example.com",
		Name:   "Mitra Satu",
		Role:   entity.RoleMitra,
		Status: entity.ProfileActive,
	}))
	require.NoError(t, store.AddProfile(ctx, entity.Profile{
		Email:  "other@example.com",
		Name:   "Lainnya",
		Role:   entity.RoleUser,
		Status: entity.ProfileActive,
	}))

	verified := entity.ProfileVerified
	balance := 50000
	require.NoError(t, store.UpdateProfile(ctx, "mitra@example.com", entity.ProfilePatch{
		Status:  &verified,
		Balance: &balance,
	}))

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, entity.ProfileVerified, profiles[0].Status)
	assert.Equal(t, 50000, profiles[0].Balance)
	assert.Equal(t, "Mitra Satu", profiles[0].Name)
	assert.Equal(t, entity.ProfileActive, profiles[1].Status)
}

func TestStore_UpdateUnknownRecordReturnsNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	status := entity.ProfileVerified
	err := store.UpdateProfile(ctx, "ghost@example.com", entity.ProfilePatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	approved := entity.TransactionApproved
	err = store.UpdateTransaction(ctx, "missing-id", entity.TransactionPatch{Status: &approved})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestStore_BlockedAccountsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddBlockedAccount(ctx, "nakal@example.com"))
	require.NoError(t, store.AddBlockedAccount(ctx, "lain@example.com"))

	blocked, err := store.ListBlockedAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"nakal@example.com", "lain@example.com"}, blocked)

	require.NoError(t, store.RemoveBlockedAccount(ctx, "nakal@example.com"))

	blocked, err = store.ListBlockedAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lain@example.com"}, blocked)
}

func TestStore_BlockedAccountsStoredAsPlainStrings(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := New(bucket)
	ctx := context.Background()

	// Denylist payloads written by earlier deployments are plain
	// string arrays, not objects.
	require.NoError(t, bucket.WriteAll(ctx, keyBlockedAccounts, []byte(`["nakal@example.com"]`), nil))

	blocked, err := store.ListBlockedAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"nakal@example.com"}, blocked)

	require.NoError(t, store.AddBlockedAccount(ctx, "lain@example.com"))

	data, err := bucket.ReadAll(ctx, keyBlockedAccounts)
	require.NoError(t, err)
	assert.JSONEq(t, `["nakal@example.com","lain@example.com"]`, string(data))
}

func TestStore_RemoveBlockedAccountMissingIsNoop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RemoveBlockedAccount(ctx, "ghost@example.com"))
}
