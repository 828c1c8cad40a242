package usecase

import (
	"context"

	"getlife/internal/domain/entity"
)

// SendMessageInput defines one outgoing chat message.
type SendMessageInput struct {
	SenderID   string
	ReceiverID string
	SenderName string
	Message    string
}

// ChatUsecase covers the append-only message log between identities.
type ChatUsecase interface {
	// Send appends a message, stamping it with the server time.
	Send(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error)

	// History returns every message in timestamp order.
	History(ctx context.Context) ([]entity.ChatMessage, error)

	// Conversation returns the messages exchanged between two
	// identities, in timestamp order.
	Conversation(ctx context.Context, first string, second string) ([]entity.ChatMessage, error)
}
