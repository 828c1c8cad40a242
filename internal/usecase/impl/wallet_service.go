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

// walletService implements the WalletUsecase interface.
type walletService struct {
	store  repository.Store
	logger *slog.Logger
}

// WalletServiceParams holds dependencies for the wallet service, injected by Fx.
type WalletServiceParams struct {
	fx.In

	Store  repository.Store
	Logger *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *walletService) RequestTopup(ctx context.Context, email string, input usecase.TopupInput) (*entity.Transaction, error) {
	return srv.request(ctx, email, entity.TransactionTopup, input.Amount, input.TransferProof)
}

func (srv *walletService) RequestPayment(ctx context.Context, email string, input usecase.PaymentInput) (*entity.Transaction, error) {
	return srv.request(ctx, email, entity.TransactionPayment, input.Amount, "")
}

func (srv *walletService) request(
	ctx context.Context,
	email string,
	kind entity.TransactionType,
	amount int,
	transferProof string,
) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	profiles, err := srv.store.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list profiles")
	}

	profile, found := findProfile(profiles, email)
	if !found {
		return nil, domainerrors.ErrAccountNotFound
	}

	transaction := entity.Transaction{
		ID:            uuid.NewString(),
		UserID:        email,
		UserName:      profile.Name,
		Type:          kind,
		Amount:        amount,
		Status:        entity.TransactionPending,
		TransferProof: transferProof,
		CreatedAt:     time.Now(),
	}

	if err := srv.store.AddTransaction(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "add transaction")
	}

	srv.logger.Info("wallet transaction filed",
		slog.String("id", transaction.ID),
		slog.String("type", string(kind)),
		slog.Int("amount", amount))

	return &transaction, nil
}

func (srv *walletService) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	transactions, err := srv.store.ListTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}

	return transactions, nil
}

func (srv *walletService) ListTransactionsByUser(ctx context.Context, email string) ([]entity.Transaction, error) {
	transactions, err := srv.store.ListTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}

	owned := make([]entity.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.UserID == email {
			owned = append(owned, transaction)
		}
	}

	return owned, nil
}

// Review decides a pending transaction. An approved top-up credits the
// balance, an approved payment debits it. A payment the balance cannot
// cover is refused and stays pending for a later retry.
func (srv *walletService) Review(ctx context.Context, id string, approve bool) error {
	transactions, err := srv.store.ListTransactions(ctx)
	if err != nil {
		return errors.Wrap(err, "list transactions")
	}

	transaction, found := findTransaction(transactions, id)
	if !found {
		return domainerrors.ErrTransactionNotFound
	}
	if transaction.Status != entity.TransactionPending {
		return domainerrors.ErrTransactionReviewed
	}

	if !approve {
		rejected := entity.TransactionRejected
		if err := srv.store.UpdateTransaction(ctx, id, entity.TransactionPatch{Status: &rejected}); err != nil {
			return errors.Wrap(err, "update transaction")
		}

		srv.logger.Info("wallet transaction rejected", slog.String("id", id))

		return nil
	}

	profiles, err := srv.store.ListProfiles(ctx)
	if err != nil {
		return errors.Wrap(err, "list profiles")
	}

	profile, found := findProfile(profiles, transaction.UserID)
	if !found {
		return domainerrors.ErrAccountNotFound
	}

	balance := profile.Balance
	switch transaction.Type {
	case entity.TransactionTopup:
		balance += transaction.Amount
	case entity.TransactionPayment:
		if balance < transaction.Amount {
			return domainerrors.ErrInsufficientBalance
		}
		balance -= transaction.Amount
	}

	// Balance first, then the status flip. A crash in between leaves a
	// pending transaction with an applied balance, matching the weaker
	// of the two orderings already present in deployed data.
	if err := srv.store.UpdateProfile(ctx, transaction.UserID, entity.ProfilePatch{Balance: &balance}); err != nil {
		return errors.Wrap(err, "update balance")
	}

	approved := entity.TransactionApproved
	if err := srv.store.UpdateTransaction(ctx, id, entity.TransactionPatch{Status: &approved}); err != nil {
		return errors.Wrap(err, "update transaction")
	}

	srv.logger.Info("wallet transaction approved",
		slog.String("id", id),
		slog.String("type", string(transaction.Type)),
		slog.Int("amount", transaction.Amount))

	return nil
}
