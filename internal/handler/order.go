package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/auth"
	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/Shantanu039/hotel-menu-order-app/internal/middleware"
	"github.com/Shantanu039/hotel-menu-order-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderLifecycle interface {
	PlaceOrder(ctx context.Context, ownerID string, items []entities.OrderItem, tableNumber string) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, requesterID string) error
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus entities.OrderStatus, prepMinutes *int) (entities.Order, error)
	ListOrdersForUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListAllOrders(ctx context.Context) ([]entities.Order, error)
}

type OrderHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          OrderLifecycle
	authenticate func(http.Handler) http.Handler
}

func NewOrderHandler(logger *slog.Logger, svc OrderLifecycle, authenticate func(http.Handler) http.Handler) *OrderHandler {
	return &OrderHandler{
		logger:       logger.With(slog.String("handler", "orders")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/", h.PlaceOrder)
		r.Get("/user", h.ListUserOrders)
		r.Post("/{order_id}/cancel", h.CancelOrder)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", h.ListAllOrders)
			r.Put("/{order_id}/status", h.UpdateStatus)
		})
	})
}

// PlaceOrder creates a new order for the authenticated user.
// @Summary      Place an order
// @Description  Creates a Pending order with a 60 second cancellation window
// @Tags         orders
// @Accept       json
// @Param        request body PlaceOrderRequest true "Order contents"
// @Success      201  {object}  PlaceOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := auth.ExtractIdentity(ctx)
	if !ok {
		utils.WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]entities.OrderItem, 0, len(req.LineItems))
	for _, it := range req.LineItems {
		items = append(items, OrderItemJSONToEntity(it))
	}

	order, err := h.svc.PlaceOrder(ctx, identity.UserID, items, req.TableNumber)
	if errors.Is(err, entities.ErrEmptyOrder) || errors.Is(err, entities.ErrInvalidItem) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, PlaceOrderResponse{OrderID: order.ID}, http.StatusCreated)
}

// ListUserOrders returns the authenticated user's orders, newest first.
// @Summary      List own orders
// @Description  Returns the caller's orders with the derived cancellation countdown
// @Tags         orders
// @Success      200  {array}   ClientOrder
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/user [get]
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := auth.ExtractIdentity(ctx)
	if !ok {
		utils.WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	orders, err := h.svc.ListOrdersForUser(ctx, identity.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list user orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	views := make([]ClientOrder, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderToClientView(order, now))
	}
	utils.WriteJSON(w, views, http.StatusOK)
}

// CancelOrder cancels the caller's order while the window is open.
// @Summary      Cancel an order
// @Tags         orders
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  utils.MessageResponse
// @Failure      400  {object}  utils.ErrorResponse "Cancellation window closed"
// @Failure      403  {object}  utils.ErrorResponse "Not the order owner"
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{order_id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := auth.ExtractIdentity(ctx)
	if !ok {
		utils.WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	err := h.svc.CancelOrder(ctx, orderID, identity.UserID)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		cancelRejected.WithLabelValues("not_found").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNotOrderOwner):
		cancelRejected.WithLabelValues("forbidden").Inc()
		utils.WriteError(w, "you can only cancel your own orders", http.StatusForbidden)
	case errors.Is(err, entities.ErrWindowClosed):
		cancelRejected.WithLabelValues("window_closed").Inc()
		utils.WriteError(w, "order can no longer be cancelled", http.StatusBadRequest)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to cancel order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		ordersCancelled.Inc()
		utils.WriteMessage(w, "order cancelled successfully", http.StatusOK)
	}
}

// ListAllOrders returns every order. Administrator only.
// @Summary      List all orders
// @Tags         orders
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListAllOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderEntityToJSON(order))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// UpdateStatus applies an administrative status or prep time change.
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string               true  "Order id"
// @Param        request   body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  UpdateStatusResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid status"
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{order_id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, orderID, entities.OrderStatus(req.Status), req.EstimatedPrepMinutes)
	switch {
	case errors.Is(err, entities.ErrInvalidStatus), errors.Is(err, entities.ErrNegativePrep):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		statusUpdates.WithLabelValues(req.Status).Inc()
		utils.WriteJSON(w, UpdateStatusResponse{
			Message: "order status updated successfully",
			Order:   OrderEntityToJSON(order),
		}, http.StatusOK)
	}
}
