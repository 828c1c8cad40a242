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

// orderService implements the OrderUsecase interface.
type orderService struct {
	store  repository.Store
	logger *slog.Logger
}

// OrderServiceParams holds dependencies for the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Store  repository.Store
	Logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *orderService) Place(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if !input.Service.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown service kind")
	}

	order := entity.Order{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		MitraID:   input.MitraID,
		Service:   input.Service,
		Status:    entity.OrderWaiting,
		CreatedAt: time.Now(),
	}

	if err := srv.store.AddOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "add order")
	}

	srv.logger.Info("order placed",
		slog.String("id", order.ID),
		slog.String("service", order.Service.String()))

	return &order, nil
}

// Start moves a waiting order to in-progress and stamps the start time.
func (srv *orderService) Start(ctx context.Context, id string) error {
	now := time.Now()
	status := entity.OrderInProgress

	return srv.transition(ctx, id, entity.OrderWaiting, entity.OrderPatch{
		Status:    &status,
		StartTime: &now,
	})
}

// Complete moves an in-progress order to done, stamping the end time
// and the final cost.
func (srv *orderService) Complete(ctx context.Context, id string, totalCost int) error {
	now := time.Now()
	status := entity.OrderDone

	return srv.transition(ctx, id, entity.OrderInProgress, entity.OrderPatch{
		Status:    &status,
		EndTime:   &now,
		TotalCost: &totalCost,
	})
}

// Cancel aborts an order that has not been started yet.
func (srv *orderService) Cancel(ctx context.Context, id string) error {
	status := entity.OrderCancelled

	return srv.transition(ctx, id, entity.OrderWaiting, entity.OrderPatch{
		Status: &status,
	})
}

func (srv *orderService) transition(
	ctx context.Context,
	id string,
	from entity.OrderStatus,
	patch entity.OrderPatch,
) error {
	orders, err := srv.store.ListOrders(ctx)
	if err != nil {
		return errors.Wrap(err, "list orders")
	}

	order, found := findOrder(orders, id)
	if !found {
		return domainerrors.ErrOrderNotFound
	}
	if order.Status != from {
		return domainerrors.ErrOrderTransition
	}

	if err := srv.store.UpdateOrder(ctx, id, patch); err != nil {
		return errors.Wrap(err, "update order")
	}

	srv.logger.Info("order transitioned",
		slog.String("id", id),
		slog.String("from", from.String()),
		slog.String("to", patch.Status.String()))

	return nil
}

func (srv *orderService) List(ctx context.Context) ([]entity.Order, error) {
	orders, err := srv.store.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	return orders, nil
}

func (srv *orderService) ListByUser(ctx context.Context, email string) ([]entity.Order, error) {
	return srv.listFiltered(ctx, func(order entity.Order) bool { return order.UserID == email })
}

func (srv *orderService) ListByMitra(ctx context.Context, email string) ([]entity.Order, error) {
	return srv.listFiltered(ctx, func(order entity.Order) bool { return order.MitraID == email })
}

func (srv *orderService) listFiltered(ctx context.Context, keep func(entity.Order) bool) ([]entity.Order, error) {
	orders, err := srv.store.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	filtered := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if keep(order) {
			filtered = append(filtered, order)
		}
	}

	return filtered, nil
}
