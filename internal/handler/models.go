package handler

import (
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
)

// OrderItem is a line item as submitted by the client. Prices are
// client-quoted at submission time and frozen into the order total.
type OrderItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

type PlaceOrderRequest struct {
	LineItems   []OrderItem `json:"lineItems" validate:"required,min=1,dive"`
	TableNumber string      `json:"tableNumber,omitempty"`
	// Accepted for wire compatibility with the web client; the stored total
	// is always recomputed from the line items.
	Total float64 `json:"total,omitempty"`
}

type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

// Order is the administrator-facing representation.
type Order struct {
	ID                   string      `json:"id"`
	OwnerID              string      `json:"ownerId"`
	TableNumber          string      `json:"tableNumber,omitempty"`
	LineItems            []OrderItem `json:"lineItems"`
	Total                float64     `json:"total"`
	PlacedAt             time.Time   `json:"placedAt"`
	CancellationDeadline time.Time   `json:"cancellationDeadline"`
	Cancellable          bool        `json:"cancellable"`
	Status               string      `json:"status"`
	EstimatedPrepMinutes int         `json:"estimatedPrepMinutes"`
}

// ClientOrder is the owner-facing projection: it adds the derived countdown
// and re-derives cancellable so a stale stored flag never reaches the client.
type ClientOrder struct {
	Order
	TimeRemaining int `json:"timeRemaining"`
}

type UpdateStatusRequest struct {
	Status               string `json:"status" validate:"required"`
	EstimatedPrepMinutes *int   `json:"estimatedPrepMinutes,omitempty"`
}

type UpdateStatusResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ID:       i.ItemID,
		Name:     i.Name,
		Price:    i.UnitPrice,
		Quantity: i.Quantity,
	}
}

func OrderItemJSONToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ItemID:    i.ID,
		Name:      i.Name,
		UnitPrice: i.Price,
		Quantity:  i.Quantity,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		ID:                   o.ID,
		OwnerID:              o.OwnerID,
		TableNumber:          o.TableNumber,
		LineItems:            items,
		Total:                o.Total,
		PlacedAt:             o.PlacedAt,
		CancellationDeadline: o.CancellationDeadline,
		Cancellable:          o.Cancellable,
		Status:               o.Status.String(),
		EstimatedPrepMinutes: o.EstimatedPrepMinutes,
	}
}

// OrderToClientView projects a stored order for the owning client at the
// given instant. Read-only: the countdown and the reported cancellable flag
// are derived here on every call, never persisted.
func OrderToClientView(o entities.Order, now time.Time) ClientOrder {
	view := ClientOrder{Order: OrderEntityToJSON(o)}
	view.TimeRemaining = o.TimeRemaining(now)
	if view.TimeRemaining == 0 {
		view.Cancellable = false
	}
	return view
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type MenuItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Img   string  `json:"img,omitempty"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type MenuItemRequest struct {
	Name  string  `json:"name" validate:"required"`
	Img   string  `json:"img,omitempty"`
	Price float64 `json:"price" validate:"gte=0"`
	Type  string  `json:"type" validate:"required"`
}

func MenuItemEntityToJSON(m entities.MenuItem) MenuItem {
	return MenuItem{
		ID:    m.ID,
		Name:  m.Name,
		Img:   m.Img,
		Price: m.Price,
		Type:  m.Type,
	}
}
