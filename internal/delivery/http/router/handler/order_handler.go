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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type placeOrderRequest struct {
	MitraID string `json:"mitraId" validate:"required,email"`
	Service string `json:"service" validate:"required"`
}

type completeOrderRequest struct {
	TotalCost int `json:"totalCost" validate:"required,gt=0"`
}

// Place books a service for the logged-in account.
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	current := middleware.CurrentUser(c)
	order, err := h.uc.Place(c.Request().Context(), usecase.PlaceOrderInput{
		UserID:  current.Email,
		MitraID: req.MitraID,
		Service: entity.ServiceKind(req.Service),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Pesanan dibuat")
}

// Start moves an order to in-progress.
func (h *OrderHandler) Start(c echo.Context) error {
	if err := h.uc.Start(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pesanan dimulai")
}

// Complete finishes an order with its final cost.
func (h *OrderHandler) Complete(c echo.Context) error {
	var req completeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid completion input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Complete(c.Request().Context(), c.Param("id"), req.TotalCost); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pesanan selesai")
}

// Cancel aborts an order that has not started.
func (h *OrderHandler) Cancel(c echo.Context) error {
	if err := h.uc.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pesanan dibatalkan")
}

// List returns the orders visible to the logged-in role: everything
// for admins, the own side of the marketplace for users and mitra.
func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	current := middleware.CurrentUser(c)

	var (
		orders []entity.Order
		err    error
	)
	switch current.Role {
	case entity.RoleAdmin:
		orders, err = h.uc.List(ctx)
	case entity.RoleMitra:
		orders, err = h.uc.ListByMitra(ctx, current.Email)
	default:
		orders, err = h.uc.ListByUser(ctx, current.Email)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
