package repo

import (
	"database/sql"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
)

type Order struct {
	ID                   string         `db:"id"`
	OwnerID              string         `db:"owner_id"`
	TableNumber          sql.NullString `db:"table_number"`
	Total                float64        `db:"total"`
	PlacedAt             time.Time      `db:"placed_at"`
	CancellationDeadline time.Time      `db:"cancellation_deadline"`
	Cancellable          bool           `db:"cancellable"`
	Status               string         `db:"status"`
	EstimatedPrepMinutes int            `db:"estimated_prep_minutes"`
}

type OrderItem struct {
	OrderID   string  `db:"order_id"`
	Position  int     `db:"position"`
	ItemID    string  `db:"item_id"`
	Name      string  `db:"name"`
	UnitPrice float64 `db:"unit_price"`
	Quantity  int     `db:"quantity"`
}

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	RegisteredAt time.Time `db:"registered_at"`
}

type MenuItem struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Img   string  `db:"img"`
	Price float64 `db:"price"`
	Type  string  `db:"type"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:                   o.ID,
		OwnerID:              o.OwnerID,
		TableNumber:          nullStringToString(o.TableNumber),
		Total:                o.Total,
		PlacedAt:             o.PlacedAt,
		CancellationDeadline: o.CancellationDeadline,
		Cancellable:          o.Cancellable,
		Status:               entities.OrderStatus(o.Status),
		EstimatedPrepMinutes: o.EstimatedPrepMinutes,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, entities.OrderItem{
				ItemID:    it.ItemID,
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			})
		}
	}

	return order
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entities.Role(u.Role),
		RegisteredAt: u.RegisteredAt,
	}
}

func MenuItemToEntity(m MenuItem) entities.MenuItem {
	return entities.MenuItem{
		ID:    m.ID,
		Name:  m.Name,
		Img:   m.Img,
		Price: m.Price,
		Type:  m.Type,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
