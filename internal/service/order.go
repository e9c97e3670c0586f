package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/Shantanu039/hotel-menu-order-app/pkg/trm"

	"github.com/google/uuid"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	UpdateOrderState(ctx context.Context, o entities.Order) error
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
}

// OrderService owns every order state transition: placement, the
// cancellation window and administrative status updates.
type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
	}
}

// PlaceOrder creates a Pending order owned by ownerID. The total is computed
// from the submitted line items and frozen; later catalog price changes never
// touch it. The cancellation deadline is fixed at placement.
func (s *OrderService) PlaceOrder(ctx context.Context, ownerID string, items []entities.OrderItem, tableNumber string) (entities.Order, error) {
	if len(items) == 0 {
		return entities.Order{}, entities.ErrEmptyOrder
	}

	var total float64
	for _, item := range items {
		if item.Quantity < 1 {
			return entities.Order{}, fmt.Errorf("%w: quantity must be at least 1", entities.ErrInvalidItem)
		}
		if item.UnitPrice < 0 {
			return entities.Order{}, fmt.Errorf("%w: unit price cannot be negative", entities.ErrInvalidItem)
		}
		if item.ItemID == "" || item.Name == "" {
			return entities.Order{}, fmt.Errorf("%w: item id and name are required", entities.ErrInvalidItem)
		}
		total += item.UnitPrice * float64(item.Quantity)
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:                   uuid.NewString(),
		OwnerID:              ownerID,
		TableNumber:          tableNumber,
		Items:                items,
		Total:                total,
		PlacedAt:             now,
		CancellationDeadline: now.Add(entities.CancellationWindow),
		Cancellable:          true,
		Status:               entities.StatusPending,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.SaveOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Debug("order placed",
		slog.String("order_id", order.ID),
		slog.String("owner_id", ownerID),
		slog.Float64("total", total),
	)
	return order, nil
}

// CancelOrder cancels the order if the requester owns it and the window is
// still open. The row is locked for the duration of the check-and-write, so a
// concurrent admin update cannot race it. A repeated cancel fails with
// ErrWindowClosed.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, requesterID string) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		if order.OwnerID != requesterID {
			return entities.ErrNotOrderOwner
		}

		if !order.CancellableAt(time.Now().UTC()) {
			return entities.ErrWindowClosed
		}

		order.Status = entities.StatusCancelled
		order.Cancellable = false
		return s.repo.UpdateOrderState(ctx, order)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("order cancelled", slog.String("order_id", orderID))
	return nil
}

// UpdateOrderStatus applies an administrative status change. Leaving Pending
// permanently clears cancellability, even when the window is still open.
// prepMinutes overwrites the estimate only when supplied.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, newStatus entities.OrderStatus, prepMinutes *int) (entities.Order, error) {
	if !newStatus.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}
	if prepMinutes != nil && *prepMinutes < 0 {
		return entities.Order{}, entities.ErrNegativePrep
	}

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		// Off-table transitions (e.g. Completed -> Preparing) are applied
		// anyway: the original product behavior only checks membership.
		if order.Status != newStatus && !order.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("unusual status transition",
				slog.String("order_id", orderID),
				slog.String("from", order.Status.String()),
				slog.String("to", newStatus.String()),
			)
		}

		order.Status = newStatus
		if newStatus != entities.StatusPending {
			order.Cancellable = false
		}
		if prepMinutes != nil {
			order.EstimatedPrepMinutes = *prepMinutes
		}

		if err := s.repo.UpdateOrderState(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order status updated",
		slog.String("order_id", orderID),
		slog.String("status", newStatus.String()),
	)
	return updated, nil
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID string) ([]entities.Order, error) {
	orders, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
