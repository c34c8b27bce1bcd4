package checkout_test

import (
	"testing"
	"time"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/checkout"
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
	}
}

func TestNewCheckoutOrder(t *testing.T) {
	t.Run("should stage valid items", func(t *testing.T) {
		items := []checkout.Item{
			{BookID: kernel.NewUUID(), Quantity: 2, Format: book.Hardcover},
			{BookID: kernel.NewUUID(), Quantity: 1, Format: book.Ebook},
		}

		co, err := checkout.NewCheckoutOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(), "standard", items, time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, co.Validate())
		assert.Len(t, co.Items(), 2)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := checkout.NewCheckoutOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(), "standard", nil, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject duplicate books", func(t *testing.T) {
		bookID := kernel.NewUUID()
		items := []checkout.Item{
			{BookID: bookID, Quantity: 1, Format: book.Hardcover},
			{BookID: bookID, Quantity: 2, Format: book.Paperback},
		}

		_, err := checkout.NewCheckoutOrder(
			kernel.NewUUID(), kernel.NewUUID(), validCustomer(), "standard", items, time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject invalid item", func(t *testing.T) {
		testCases := []struct {
			name string
			item checkout.Item
		}{
			{"zero quantity", checkout.Item{BookID: kernel.NewUUID(), Quantity: 0, Format: book.Hardcover}},
			{"unknown format", checkout.Item{BookID: kernel.NewUUID(), Quantity: 1, Format: book.UnknownFormat}},
			{"zero book id", checkout.Item{Quantity: 1, Format: book.Hardcover}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := checkout.NewCheckoutOrder(
					kernel.NewUUID(), kernel.NewUUID(), validCustomer(), "standard",
					[]checkout.Item{tc.item}, time.Now(),
				)
				require.Error(t, err)
			})
		}
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var co checkout.CheckoutOrder
		require.ErrorIs(t, co.Validate(), checkout.ErrCheckoutOrderIsNotConstructed)
	})
}

func TestCheckoutOrder_IsAbandonedAt(t *testing.T) {
	created := time.Now()
	co, err := checkout.NewCheckoutOrder(
		kernel.NewUUID(), kernel.NewUUID(), validCustomer(), "standard",
		[]checkout.Item{{BookID: kernel.NewUUID(), Quantity: 1, Format: book.Hardcover}},
		created,
	)
	require.NoError(t, err)

	ttl := 30 * time.Minute
	assert.False(t, co.IsAbandonedAt(created.Add(10*time.Minute), ttl))
	assert.True(t, co.IsAbandonedAt(created.Add(31*time.Minute), ttl))
}
