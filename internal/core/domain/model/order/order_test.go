package order_test

import (
	"testing"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() order.Customer {
	return order.Customer{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Address: "12 Analytical Lane, London",
		Phone:   "+44 20 7946 0000",
	}
}

func newTestLine(t *testing.T, quantity int, unitPrice kernel.Cents) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), quantity, "HARDCOVER", unitPrice)
	require.NoError(t, err)
	return line
}

func newTestOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []order.Line{newTestLine(t, 2, 1999)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), validCustomer(),
		"standard", 500, 300, lines, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start pending with computed amount", func(t *testing.T) {
		lines := []order.Line{
			newTestLine(t, 2, 1999), // 3998
			newTestLine(t, 1, 2500), // 2500
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(),
			"express", 500, 300, lines, time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, kernel.Cents(3998+2500+500+300), o.OrderAmount())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(),
			"standard", 0, 0, nil, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject invalid customer snapshot", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*order.Customer)
		}{
			{"empty name", func(c *order.Customer) { c.Name = "" }},
			{"empty email", func(c *order.Customer) { c.Email = "" }},
			{"malformed email", func(c *order.Customer) { c.Email = "not-an-email" }},
			{"empty address", func(c *order.Customer) { c.Address = "" }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				customer := validCustomer()
				tc.mutate(&customer)

				_, err := order.NewOrder(
					kernel.NewUUID(), kernel.NewUUID(), customer,
					"standard", 0, 0, []order.Line{newTestLine(t, 1, 100)}, time.Now(),
				)
				require.Error(t, err)
			})
		}
	})

	t.Run("should reject missing shipping method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(),
			"", 0, 0, []order.Line{newTestLine(t, 1, 100)}, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted status", func(t *testing.T) {
		lines := []order.Line{newTestLine(t, 1, 1000)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(),
			"standard", 200, 100, 1300, order.Shipped, lines, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should reject amount that does not match lines", func(t *testing.T) {
		lines := []order.Line{newTestLine(t, 1, 1000)}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(),
			"standard", 200, 100, 9999, order.Pending, lines, time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		lines := []order.Line{newTestLine(t, 1, 1000)}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(),
			"standard", 200, 100, 1300, order.Unknown, lines, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the happy path", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(order.Confirmed))
		require.NoError(t, o.TransitionTo(order.Shipped))
		require.NoError(t, o.TransitionTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should cancel from pending and confirmed", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())

		o = newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Confirmed))
		require.NoError(t, o.TransitionTo(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject cancelling a shipped order and leave status unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Confirmed))
		require.NoError(t, o.TransitionTo(order.Shipped))

		err := o.TransitionTo(order.Cancelled)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should reject leaving a terminal state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.TransitionTo(order.Cancelled))

		err := o.TransitionTo(order.Pending)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Lines(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		original := newTestLine(t, 2, 1999)
		o := newTestOrder(t, original)

		lines := o.Lines()
		lines[0] = newTestLine(t, 9, 1)

		assert.Equal(t, 2, o.Lines()[0].Quantity())
	})
}

func TestLine(t *testing.T) {
	t.Run("should compute subtotal", func(t *testing.T) {
		line := newTestLine(t, 3, 1500)
		assert.Equal(t, kernel.Cents(4500), line.Subtotal())
	})

	t.Run("should reject invalid construction", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), 0, "HARDCOVER", 100)
		require.Error(t, err)

		_, err = order.NewLine(kernel.NewUUID(), 1, "", 100)
		require.Error(t, err)

		_, err = order.NewLine(kernel.NewUUID(), 1, "HARDCOVER", -1)
		require.Error(t, err)

		var zero order.Line
		require.ErrorIs(t, zero.Validate(), order.ErrLineIsNotConstructed)
	})
}
