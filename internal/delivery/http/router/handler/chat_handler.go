package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"getlife/internal/delivery/http/middleware"
	"getlife/internal/delivery/http/response"
	"getlife/internal/domain/entity"
	domainerrors "getlife/internal/domain/errors"
	"getlife/internal/usecase"
)

// ChatHandler holds dependencies for chat handlers.
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required,email"`
	Message    string `json:"message" validate:"required"`
}

// Send appends a message from the logged-in identity.
func (h *ChatHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	current := middleware.CurrentUser(c)
	message, err := h.uc.Send(c.Request().Context(), usecase.SendMessageInput{
		SenderID:   current.Email,
		ReceiverID: req.ReceiverID,
		SenderName: current.Name,
		Message:    req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Pesan terkirim")
}

// List returns messages. With a "with" query parameter it returns the
// conversation with that identity; without one, admins get the full
// history and everyone else must name a peer.
func (h *ChatHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	current := middleware.CurrentUser(c)
	peer := c.QueryParam("with")

	if peer != "" {
		conversation, err := h.uc.Conversation(ctx, current.Email, peer)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, conversation, "")
	}

	if current.Role != entity.RoleAdmin {
		return domainerrors.ErrValidationFailed.WithDetails("with query parameter is required")
	}

	history, err := h.uc.History(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "")
}
