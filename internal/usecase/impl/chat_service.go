package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"getlife/internal/domain/entity"
	domainerrors "getlife/internal/domain/errors"
	"getlife/internal/domain/repository"
	"getlife/internal/usecase"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	store  repository.Store
	logger *slog.Logger
}

// ChatServiceParams holds dependencies for the chat service, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Store  repository.Store
	Logger *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// Send appends a message stamped with the server time.
func (srv *chatService) Send(ctx context.Context, input usecase.SendMessageInput) (*entity.ChatMessage, error) {
	if input.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message must not be empty")
	}

	message := entity.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		SenderName: input.SenderName,
		Message:    input.Message,
		Timestamp:  time.Now(),
	}

	if err := srv.store.AddChatMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "add chat message")
	}

	srv.logger.Debug("chat message sent",
		slog.String("sender", message.SenderID),
		slog.String("receiver", message.ReceiverID))

	return &message, nil
}

// History returns every message in timestamp order. Sorting happens
// here so both backends present the same ordering.
func (srv *chatService) History(ctx context.Context) ([]entity.ChatMessage, error) {
	messages, err := srv.store.ListChatMessages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list chat messages")
	}

	sortByTimestamp(messages)

	return messages, nil
}

// Conversation returns the messages exchanged between two identities,
// in timestamp order.
func (srv *chatService) Conversation(ctx context.Context, first string, second string) ([]entity.ChatMessage, error) {
	messages, err := srv.store.ListChatMessages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list chat messages")
	}

	conversation := make([]entity.ChatMessage, 0, len(messages))
	for _, message := range messages {
		between := (message.SenderID == first && message.ReceiverID == second) ||
			(message.SenderID == second && message.ReceiverID == first)
		if between {
			conversation = append(conversation, message)
		}
	}

	sortByTimestamp(conversation)

	return conversation, nil
}

func sortByTimestamp(messages []entity.ChatMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
}
