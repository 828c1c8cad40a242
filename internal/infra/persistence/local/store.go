// Package local persists every record kind as a JSON array inside a
// blob bucket, one object per kind. It is the always-available fallback
// backend and doubles as the in-memory store for tests.
package local

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	"getlife/internal/domain/entity"
	"getlife/internal/domain/repository"
)

// Object keys inside the bucket. These mirror the key names already
// present in deployed data, so an upgraded install keeps its records.
const (
	keyAccounts        = "users"
	keyProfiles        = "profiles"
	keyApplications    = "mitra_applications"
	keyOrders          = "orders"
	keyTransactions    = "transactions"
	keyChatMessages    = "chat_messages"
	keyBlockedAccounts = "blocked_accounts"
)

// Store implements repository.Store on top of a blob bucket. Every
// operation is a whole-array read-modify-write; the store is meant for
// a single process and small datasets.
type Store struct {
	bucket *blob.Bucket
}

// New creates a Store backed by the given bucket.
func New(bucket *blob.Bucket) *Store {
	return &Store{bucket: bucket}
}

func readAll[T any](ctx context.Context, bucket *blob.Bucket, key string) ([]T, error) {
	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []T{}, nil
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "decode %s", key)
	}

	return records, nil
}

func writeAll[T any](ctx context.Context, bucket *blob.Bucket, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func appendRecord[T any](ctx context.Context, bucket *blob.Bucket, key string, record T) error {
	records, err := readAll[T](ctx, bucket, key)
	if err != nil {
		return err
	}

	return writeAll(ctx, bucket, key, append(records, record))
}

func updateRecord[T any](
	ctx context.Context,
	bucket *blob.Bucket,
	key string,
	match func(T) bool,
	apply func(*T),
) error {
	records, err := readAll[T](ctx, bucket, key)
	if err != nil {
		return err
	}

	found := false
	for i := range records {
		if match(records[i]) {
			apply(&records[i])
			found = true
		}
	}

	if !found {
		return repository.ErrRecordNotFound
	}

	return writeAll(ctx, bucket, key, records)
}

func (s *Store) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	return readAll[entity.Account](ctx, s.bucket, keyAccounts)
}

func (s *Store) AddAccount(ctx context.Context, account entity.Account) error {
	return appendRecord(ctx, s.bucket, keyAccounts, account)
}

func (s *Store) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	return readAll[entity.Profile](ctx, s.bucket, keyProfiles)
}

func (s *Store) AddProfile(ctx context.Context, profile entity.Profile) error {
	return appendRecord(ctx, s.bucket, keyProfiles, profile)
}

func (s *Store) UpdateProfile(ctx context.Context, email string, patch entity.ProfilePatch) error {
	return updateRecord(ctx, s.bucket, keyProfiles,
		func(p entity.Profile) bool { return p.Email == email },
		func(p *entity.Profile) { patch.Apply(p) },
	)
}

func (s *Store) ListApplications(ctx context.Context) ([]entity.PartnerApplication, error) {
	return readAll[entity.PartnerApplication](ctx, s.bucket, keyApplications)
}

func (s *Store) AddApplication(ctx context.Context, application entity.PartnerApplication) error {
	return appendRecord(ctx, s.bucket, keyApplications, application)
}

func (s *Store) UpdateApplication(ctx context.Context, id string, patch entity.ApplicationPatch) error {
	return updateRecord(ctx, s.bucket, keyApplications,
		func(a entity.PartnerApplication) bool { return a.ID == id },
		func(a *entity.PartnerApplication) { patch.Apply(a) },
	)
}

func (s *Store) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return readAll[entity.Order](ctx, s.bucket, keyOrders)
}

func (s *Store) AddOrder(ctx context.Context, order entity.Order) error {
	return appendRecord(ctx, s.bucket, keyOrders, order)
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch entity.OrderPatch) error {
	return updateRecord(ctx, s.bucket, keyOrders,
		func(o entity.Order) bool { return o.ID == id },
		func(o *entity.Order) { patch.Apply(o) },
	)
}

func (s *Store) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return readAll[entity.Transaction](ctx, s.bucket, keyTransactions)
}

func (s *Store) AddTransaction(ctx context.Context, transaction entity.Transaction) error {
	return appendRecord(ctx, s.bucket, keyTransactions, transaction)
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, patch entity.TransactionPatch) error {
	return updateRecord(ctx, s.bucket, keyTransactions,
		func(t entity.Transaction) bool { return t.ID == id },
		func(t *entity.Transaction) { patch.Apply(t) },
	)
}

func (s *Store) ListChatMessages(ctx context.Context) ([]entity.ChatMessage, error) {
	return readAll[entity.ChatMessage](ctx, s.bucket, keyChatMessages)
}

func (s *Store) AddChatMessage(ctx context.Context, message entity.ChatMessage) error {
	return appendRecord(ctx, s.bucket, keyChatMessages, message)
}

// The denylist is stored as a plain string array, the shape deployed
// data already uses for this key.
func (s *Store) ListBlockedAccounts(ctx context.Context) ([]string, error) {
	return readAll[string](ctx, s.bucket, keyBlockedAccounts)
}

func (s *Store) AddBlockedAccount(ctx context.Context, email string) error {
	return appendRecord(ctx, s.bucket, keyBlockedAccounts, email)
}

func (s *Store) RemoveBlockedAccount(ctx context.Context, email string) error {
	emails, err := readAll[string](ctx, s.bucket, keyBlockedAccounts)
	if err != nil {
		return err
	}

	kept := emails[:0]
	for _, blocked := range emails {
		if blocked != email {
			kept = append(kept, blocked)
		}
	}

	return writeAll(ctx, s.bucket, keyBlockedAccounts, kept)
}
