package usecase

import (
	"context"

	"getlife/internal/domain/entity"
)

// PlaceOrderInput defines a new service booking.
type PlaceOrderInput struct {
	UserID  string
	MitraID string
	Service entity.ServiceKind
}

// OrderUsecase covers the order lifecycle:
// waiting -> in-progress -> done, with cancellation from waiting.
type OrderUsecase interface {
	Place(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)
	Start(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, totalCost int) error
	Cancel(ctx context.Context, id string) error

	List(ctx context.Context) ([]entity.Order, error)
	ListByUser(ctx context.Context, email string) ([]entity.Order, error)
	ListByMitra(ctx context.Context, email string) ([]entity.Order, error)
}
