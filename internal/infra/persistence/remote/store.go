package remote

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"getlife/internal/domain/entity"
	"getlife/internal/domain/repository"
)

// Collection names match the keys used by the local store so the two
// backends describe the same dataset.
const (
	colAccounts        = "users"
	colProfiles        = "profiles"
	colApplications    = "mitra_applications"
	colOrders          = "orders"
	colTransactions    = "transactions"
	colChatMessages    = "chat_messages"
	colBlockedAccounts = "blocked_accounts"
)

// blockedRecord is the stored shape of one denylist document.
type blockedRecord struct {
	Email string `firestore:"email"`
}

// Store implements repository.Store on Firestore. Documents carry
// auto-generated refs; record identity lives in the document fields,
// so updates locate their target with an equality query.
type Store struct {
	client *firestore.Client
}

// New creates a Store over an initialized Firestore client.
func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

func listDocs[T any](iter *firestore.DocumentIterator, what string) ([]T, error) {
	defer iter.Stop()

	var records []T
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "iterate %s", what)
		}

		var record T
		if err := doc.DataTo(&record); err != nil {
			return nil, errors.Wrapf(err, "decode %s", what)
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *Store) addDoc(ctx context.Context, col string, record any) error {
	if _, err := s.client.Collection(col).NewDoc().Create(ctx, record); err != nil {
		return errors.Wrapf(err, "create %s document", col)
	}

	return nil
}

// updateFirst patches the first document whose field equals value.
// A query with no match reports repository.ErrRecordNotFound, which the
// failover facade treats as a domain miss rather than backend trouble.
func (s *Store) updateFirst(
	ctx context.Context,
	col string,
	field string,
	value any,
	updates []firestore.Update,
) error {
	iter := s.client.Collection(col).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return repository.ErrRecordNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "find %s document", col)
	}

	if len(updates) == 0 {
		return nil
	}

	if _, err := doc.Ref.Update(ctx, updates); err != nil {
		return errors.Wrapf(err, "update %s document", col)
	}

	return nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	return listDocs[entity.Account](s.client.Collection(colAccounts).Documents(ctx), colAccounts)
}

func (s *Store) AddAccount(ctx context.Context, account entity.Account) error {
	return s.addDoc(ctx, colAccounts, account)
}

func (s *Store) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	return listDocs[entity.Profile](s.client.Collection(colProfiles).Documents(ctx), colProfiles)
}

func (s *Store) AddProfile(ctx context.Context, profile entity.Profile) error {
	return s.addDoc(ctx, colProfiles, profile)
}

func (s *Store) UpdateProfile(ctx context.Context, email string, patch entity.ProfilePatch) error {
	var updates []firestore.Update
	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *patch.Name})
	}
	if patch.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *patch.Phone})
	}
	if patch.Address != nil {
		updates = append(updates, firestore.Update{Path: "address", Value: *patch.Address})
	}
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: patch.Status.String()})
	}
	if patch.Balance != nil {
		updates = append(updates, firestore.Update{Path: "saldo", Value: *patch.Balance})
	}
	if patch.Expertise != nil {
		updates = append(updates, firestore.Update{Path: "expertise", Value: string(*patch.Expertise)})
	}

	return s.updateFirst(ctx, colProfiles, "email", email, updates)
}

func (s *Store) ListApplications(ctx context.Context) ([]entity.PartnerApplication, error) {
	return listDocs[entity.PartnerApplication](
		s.client.Collection(colApplications).Documents(ctx), colApplications)
}

func (s *Store) AddApplication(ctx context.Context, application entity.PartnerApplication) error {
	return s.addDoc(ctx, colApplications, application)
}

func (s *Store) UpdateApplication(ctx context.Context, id string, patch entity.ApplicationPatch) error {
	var updates []firestore.Update
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: patch.Status.String()})
	}

	return s.updateFirst(ctx, colApplications, "id", id, updates)
}

func (s *Store) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return listDocs[entity.Order](s.client.Collection(colOrders).Documents(ctx), colOrders)
}

func (s *Store) AddOrder(ctx context.Context, order entity.Order) error {
	return s.addDoc(ctx, colOrders, order)
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch entity.OrderPatch) error {
	var updates []firestore.Update
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: patch.Status.String()})
	}
	if patch.StartTime != nil {
		updates = append(updates, firestore.Update{Path: "startTime", Value: *patch.StartTime})
	}
	if patch.EndTime != nil {
		updates = append(updates, firestore.Update{Path: "endTime", Value: *patch.EndTime})
	}
	if patch.TotalCost != nil {
		updates = append(updates, firestore.Update{Path: "totalCost", Value: *patch.TotalCost})
	}

	return s.updateFirst(ctx, colOrders, "id", id, updates)
}

func (s *Store) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return listDocs[entity.Transaction](
		s.client.Collection(colTransactions).Documents(ctx), colTransactions)
}

func (s *Store) AddTransaction(ctx context.Context, transaction entity.Transaction) error {
	return s.addDoc(ctx, colTransactions, transaction)
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, patch entity.TransactionPatch) error {
	var updates []firestore.Update
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: patch.Status.String()})
	}

	return s.updateFirst(ctx, colTransactions, "id", id, updates)
}

func (s *Store) ListChatMessages(ctx context.Context) ([]entity.ChatMessage, error) {
	iter := s.client.Collection(colChatMessages).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)

	return listDocs[entity.ChatMessage](iter, colChatMessages)
}

func (s *Store) AddChatMessage(ctx context.Context, message entity.ChatMessage) error {
	return s.addDoc(ctx, colChatMessages, message)
}

func (s *Store) ListBlockedAccounts(ctx context.Context) ([]string, error) {
	records, err := listDocs[blockedRecord](
		s.client.Collection(colBlockedAccounts).Documents(ctx), colBlockedAccounts)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(records))
	for _, record := range records {
		emails = append(emails, record.Email)
	}

	return emails, nil
}

func (s *Store) AddBlockedAccount(ctx context.Context, email string) error {
	return s.addDoc(ctx, colBlockedAccounts, blockedRecord{Email: email})
}

func (s *Store) RemoveBlockedAccount(ctx context.Context, email string) error {
	iter := s.client.Collection(colBlockedAccounts).Where("email", "==", email).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "find blocked account document")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Wrap(err, "delete blocked account document")
		}
	}

	return nil
}
