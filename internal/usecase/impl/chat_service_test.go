package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "getlife/internal/domain/errors"
	"getlife/internal/domain/repository"
	"getlife/internal/usecase"
)

func newTestChatService(t *testing.T, store repository.Store) usecase.ChatUsecase {
	t.Helper()

	return NewChatService(ChatServiceParams{
		Store:  store,
		Logger: testLogger(),
	})
}

func TestChatService_SendStampsMessage(t *testing.T) {
	chat := newTestChatService(t, newTestStore(t))

	message, err := chat.Send(context.Background(), usecase.SendMessageInput{
		SenderID:   "budi@example.com",
		ReceiverID: "admin@example.com",
		SenderName: "Budi",
		Message:    "Halo admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
	assert.False(t, message.Timestamp.IsZero())
}

func TestChatService_SendRejectsEmptyMessage(t *testing.T) {
	chat := newTestChatService(t, newTestStore(t))

	_, err := chat.Send(context.Background(), usecase.SendMessageInput{
		SenderID:   "budi@example.com",
		ReceiverID: "admin@example.com",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestChatService_ConversationFiltersBothDirections(t *testing.T) {
	chat := newTestChatService(t, newTestStore(t))
	ctx := context.Background()

	send := func(from, to, text string) {
		t.Helper()
		_, err := chat.Send(ctx, usecase.SendMessageInput{
			SenderID: from, ReceiverID: to, Message: text,
		})
		require.NoError(t, err)
	}

	send("budi@example.com", "admin@example.com", "Halo admin")
	send("admin@example.com", "budi@example.com", "Halo Budi")
	send("siti@example.com", "admin@example.com", "Permisi")

	conversation, err := chat.Conversation(ctx, "budi@example.com", "admin@example.com")
	require.NoError(t, err)
	require.Len(t, conversation, 2)
	assert.Equal(t, "Halo admin", conversation[0].Message)
	assert.Equal(t, "Halo Budi", conversation[1].Message)

	history, err := chat.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.Before(history[i-1].Timestamp))
	}
}
