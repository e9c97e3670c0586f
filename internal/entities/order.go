package entities

import (
	"errors"
	"time"
)

// CancellationWindow is how long after placement the owner may cancel.
// Fixed product decision, not configuration.
const CancellationWindow = time.Minute

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// statusTransitions is the expected flow. Admin updates are not rejected on
// off-table transitions (kept from the original behavior), only logged.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCompleted, StatusCancelled},
	StatusPreparing: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Quantity  int
}

type Order struct {
	ID                   string
	OwnerID              string
	TableNumber          string
	Items                []OrderItem
	Total                float64
	PlacedAt             time.Time
	CancellationDeadline time.Time
	Cancellable          bool
	Status               OrderStatus
	EstimatedPrepMinutes int
}

// CancellableAt reports whether the owner may still cancel at the given time.
// The stored flag may lag real time, so the deadline is always rechecked.
func (o Order) CancellableAt(now time.Time) bool {
	return o.Cancellable && o.Status == StatusPending && !now.After(o.CancellationDeadline)
}

// TimeRemaining is the whole number of seconds left in the cancellation
// window, floored at zero. Zero for orders that are no longer cancellable.
func (o Order) TimeRemaining(now time.Time) int {
	if !o.Cancellable {
		return 0
	}
	remaining := o.CancellationDeadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / time.Second)
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNotOrderOwner = errors.New("order belongs to another user")
	ErrWindowClosed  = errors.New("cancellation window closed")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrEmptyOrder    = errors.New("order must contain at least one item")
	ErrInvalidItem   = errors.New("invalid order item")
	ErrNegativePrep  = errors.New("estimated prep time cannot be negative")
)
