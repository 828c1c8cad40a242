package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"getlife/internal/delivery/http/middleware"
	"getlife/internal/delivery/http/response"
	"getlife/internal/domain/entity"
	"getlife/internal/usecase"
)

// WalletHandler holds dependencies for wallet handlers.
type WalletHandler struct {
	uc usecase.WalletUsecase
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

type topupRequest struct {
	Amount        int    `json:"amount" validate:"required,gt=0"`
	TransferProof string `json:"transferProof"`
}

type paymentRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// Topup files a pending top-up for the logged-in account.
func (h *WalletHandler) Topup(c echo.Context) error {
	var req topupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid topup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	current := middleware.CurrentUser(c)
	transaction, err := h.uc.RequestTopup(c.Request().Context(), current.Email, usecase.TopupInput{
		Amount:        req.Amount,
		TransferProof: req.TransferProof,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, transaction, "Permintaan topup terkirim")
}

// Payment files a pending payment for the logged-in account.
func (h *WalletHandler) Payment(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	current := middleware.CurrentUser(c)
	transaction, err := h.uc.RequestPayment(c.Request().Context(), current.Email, usecase.PaymentInput{
		Amount: req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, transaction, "Permintaan pembayaran terkirim")
}

// ListTransactions returns all transactions for admins and the own
// transactions for everyone else.
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	ctx := c.Request().Context()
	current := middleware.CurrentUser(c)

	var (
		transactions []entity.Transaction
		err          error
	)
	if current.Role == entity.RoleAdmin {
		transactions, err = h.uc.ListTransactions(ctx)
	} else {
		transactions, err = h.uc.ListTransactionsByUser(ctx, current.Email)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions, "")
}

// Review decides a pending transaction.
func (h *WalletHandler) Review(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Review(c.Request().Context(), c.Param("id"), *req.Approve); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Transaksi diproses")
}
