package entity

import "time"

// TransactionType distinguishes wallet top-ups from service payments.
type TransactionType string

const (
	TransactionTopup   TransactionType = "topup"
	TransactionPayment TransactionType = "payment"
)

// TransactionStatus is the admin review state of a wallet transaction.
type TransactionStatus string

// String returns the string representation of the TransactionStatus.
func (s TransactionStatus) String() string {
	return string(s)
}

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionRejected TransactionStatus = "rejected"
)

// Transaction is a pending or reviewed wallet movement. The profile
// balance is only touched when an admin approves the transaction.
type Transaction struct {
	ID            string            `json:"id" firestore:"id"`
	UserID        string            `json:"userId" firestore:"userId"`
	UserName      string            `json:"userName,omitempty" firestore:"userName,omitempty"`
	Type          TransactionType   `json:"type" firestore:"type"`
	Amount        int               `json:"amount" firestore:"amount"`
	Status        TransactionStatus `json:"status" firestore:"status"`
	TransferProof string            `json:"transferProof,omitempty" firestore:"transferProof,omitempty"`
	CreatedAt     time.Time         `json:"createdAt" firestore:"createdAt"`
}

// TransactionPatch lists the mutable transaction fields.
type TransactionPatch struct {
	Status *TransactionStatus
}

// Apply overwrites the transaction's fields with the patch's non-nil values.
func (p TransactionPatch) Apply(transaction *Transaction) {
	if p.Status != nil {
		transaction.Status = *p.Status
	}
}
