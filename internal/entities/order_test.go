package entities_test

import (
	"testing"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []entities.OrderStatus{
		entities.StatusPending,
		entities.StatusPreparing,
		entities.StatusCompleted,
		entities.StatusCancelled,
	} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}

	assert.False(t, entities.OrderStatus("Delivered").Valid())
	assert.False(t, entities.OrderStatus("").Valid())
	assert.False(t, entities.OrderStatus("pending").Valid())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from entities.OrderStatus
		to   entities.OrderStatus
		want bool
	}{
		{entities.StatusPending, entities.StatusPreparing, true},
		{entities.StatusPending, entities.StatusCompleted, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusPreparing, entities.StatusCompleted, true},
		{entities.StatusPreparing, entities.StatusCancelled, true},
		{entities.StatusPreparing, entities.StatusPending, false},
		{entities.StatusCompleted, entities.StatusPreparing, false},
		{entities.StatusCancelled, entities.StatusPending, false},
		{entities.StatusCompleted, entities.StatusCancelled, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrder_CancellableAt(t *testing.T) {
	placed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		PlacedAt:             placed,
		CancellationDeadline: placed.Add(entities.CancellationWindow),
		Cancellable:          true,
		Status:               entities.StatusPending,
	}

	assert.True(t, order.CancellableAt(placed))
	assert.True(t, order.CancellableAt(placed.Add(30*time.Second)))
	// The deadline itself is still inside the window.
	assert.True(t, order.CancellableAt(order.CancellationDeadline))
	assert.False(t, order.CancellableAt(order.CancellationDeadline.Add(time.Second)))

	preparing := order
	preparing.Status = entities.StatusPreparing
	preparing.Cancellable = false
	assert.False(t, preparing.CancellableAt(placed))

	// A stale stored flag never resurrects cancellability.
	stale := order
	stale.Status = entities.StatusCancelled
	assert.False(t, stale.CancellableAt(placed))
}

func TestOrder_TimeRemaining(t *testing.T) {
	placed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		PlacedAt:             placed,
		CancellationDeadline: placed.Add(entities.CancellationWindow),
		Cancellable:          true,
		Status:               entities.StatusPending,
	}

	assert.Equal(t, 60, order.TimeRemaining(placed))
	assert.Equal(t, 30, order.TimeRemaining(placed.Add(30*time.Second)))
	// Partial seconds floor down.
	assert.Equal(t, 29, order.TimeRemaining(placed.Add(30*time.Second+500*time.Millisecond)))
	assert.Equal(t, 0, order.TimeRemaining(placed.Add(time.Minute)))
	assert.Equal(t, 0, order.TimeRemaining(placed.Add(time.Hour)))

	cancelled := order
	cancelled.Cancellable = false
	assert.Equal(t, 0, cancelled.TimeRemaining(placed))
}

func TestOrder_TimeRemaining_Monotonic(t *testing.T) {
	placed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		PlacedAt:             placed,
		CancellationDeadline: placed.Add(entities.CancellationWindow),
		Cancellable:          true,
		Status:               entities.StatusPending,
	}

	prev := order.TimeRemaining(placed)
	for i := 1; i <= 90; i++ {
		now := placed.Add(time.Duration(i) * time.Second)
		cur := order.TimeRemaining(now)
		assert.LessOrEqual(t, cur, prev, "countdown went up at t+%ds", i)
		assert.GreaterOrEqual(t, cur, 0)
		prev = cur
	}
	assert.Equal(t, 0, prev)
}
