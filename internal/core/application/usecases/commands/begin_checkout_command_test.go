package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutCustomer() order.Customer {
	return order.Customer{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Address: "12 Analytical Lane, London",
	}
}

func TestNewBeginCheckoutCommand(t *testing.T) {
	t.Run("should parse format labels", func(t *testing.T) {
		cmd, err := commands.NewBeginCheckoutCommand(
			kernel.NewUUID(), kernel.NewUUID(), checkoutCustomer(), "standard",
			[]commands.BeginCheckoutItem{
				{BookID: kernel.NewUUID(), Quantity: 1, Format: "HARDCOVER"},
				{BookID: kernel.NewUUID(), Quantity: 2, Format: "EBOOK"},
			},
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 2)
	})

	t.Run("should reject bad input", func(t *testing.T) {
		testCases := []struct {
			name  string
			items []commands.BeginCheckoutItem
		}{
			{"no items", nil},
			{"unknown format", []commands.BeginCheckoutItem{
				{BookID: kernel.NewUUID(), Quantity: 1, Format: "PAPYRUS"},
			}},
			{"zero quantity", []commands.BeginCheckoutItem{
				{BookID: kernel.NewUUID(), Quantity: 0, Format: "HARDCOVER"},
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewBeginCheckoutCommand(
					kernel.NewUUID(), kernel.NewUUID(), checkoutCustomer(), "standard", tc.items,
				)
				require.Error(t, err)
			})
		}
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var cmd commands.BeginCheckoutCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrBeginCheckoutCommandIsNotConstructed)
	})
}
