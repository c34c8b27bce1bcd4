package order_test

import (
	"fmt"
	"testing"

	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate the five legal statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(100)} {
			err := status.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "PENDING"},
		{order.Confirmed, "CONFIRMED"},
		{order.Shipped, "SHIPPED"},
		{order.Delivered, "DELIVERED"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every legal label", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized labels", func(t *testing.T) {
		for _, label := range []string{"", "UNKNOWN", "pending", "REFUNDED"} {
			_, err := order.StatusFromString(label)
			require.Error(t, err, label)
		}
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	legal := map[order.Status][]order.Status{
		order.Pending:   {order.Confirmed, order.Cancelled},
		order.Confirmed: {order.Shipped, order.Cancelled},
		order.Shipped:   {order.Delivered},
		order.Delivered: {},
		order.Cancelled: {},
	}
	all := []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled}

	isLegal := func(from, to order.Status) bool {
		for _, next := range legal[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			name := fmt.Sprintf("%s to %s", from, to)
			t.Run(name, func(t *testing.T) {
				got, err := from.TransitionTo(to)

				if isLegal(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					assert.True(t, from.CanTransitionTo(to))
				} else {
					require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
					assert.Equal(t, order.Unknown, got)
					assert.False(t, from.CanTransitionTo(to))

					var transitionErr *order.InvalidStatusTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, from, transitionErr.From)
					assert.Equal(t, to.String(), transitionErr.Requested)
				}
			})
		}
	}
}

func TestStatus_TransitionToUnknownTarget(t *testing.T) {
	_, err := order.Pending.TransitionTo(order.Unknown)

	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)

	var transitionErr *order.InvalidStatusTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Pending, transitionErr.From)
	assert.Equal(t, "UNKNOWN", transitionErr.Requested)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}
