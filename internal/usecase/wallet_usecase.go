package usecase

import (
	"context"

	"getlife/internal/domain/entity"
)

// TopupInput defines a wallet top-up request.
type TopupInput struct {
	Amount        int
	TransferProof string
}

// PaymentInput defines a wallet payment request.
type PaymentInput struct {
	Amount int
}

// WalletUsecase covers wallet movements. Every movement starts as a
// pending transaction; balances only change when an admin approves.
type WalletUsecase interface {
	// RequestTopup files a pending top-up for the given account.
	RequestTopup(ctx context.Context, email string, input TopupInput) (*entity.Transaction, error)

	// RequestPayment files a pending payment for the given account.
	RequestPayment(ctx context.Context, email string, input PaymentInput) (*entity.Transaction, error)

	// ListTransactions returns every transaction for admin review.
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)

	// ListTransactionsByUser returns the transactions of one account.
	ListTransactionsByUser(ctx context.Context, email string) ([]entity.Transaction, error)

	// Review decides a pending transaction. Approving a top-up credits
	// the balance; approving a payment debits it, and is refused when
	// the balance cannot cover the amount.
	Review(ctx context.Context, id string, approve bool) error
}
