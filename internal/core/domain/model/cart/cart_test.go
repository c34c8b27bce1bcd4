package cart_test

import (
	"testing"
	"time"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("should create empty cart", func(t *testing.T) {
		c := newTestCart(t)

		require.NoError(t, c.Validate())
		assert.True(t, c.IsEmpty())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var c cart.Cart
		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestCart_AddBook(t *testing.T) {
	t.Run("should hold at most one line per book", func(t *testing.T) {
		c := newTestCart(t)
		bookID := kernel.NewUUID()

		require.NoError(t, c.AddBook(bookID))
		err := c.AddBook(bookID)

		require.ErrorIs(t, err, cart.ErrBookAlreadyInCart)
		assert.Len(t, c.BookIDs(), 1)
	})

	t.Run("should accept distinct books", func(t *testing.T) {
		c := newTestCart(t)

		require.NoError(t, c.AddBook(kernel.NewUUID()))
		require.NoError(t, c.AddBook(kernel.NewUUID()))
		assert.Len(t, c.BookIDs(), 2)
	})
}

func TestCart_RemoveBook(t *testing.T) {
	t.Run("should remove existing line", func(t *testing.T) {
		c := newTestCart(t)
		bookID := kernel.NewUUID()
		require.NoError(t, c.AddBook(bookID))

		require.NoError(t, c.RemoveBook(bookID))
		assert.False(t, c.Contains(bookID))
	})

	t.Run("should fail for absent book", func(t *testing.T) {
		c := newTestCart(t)

		err := c.RemoveBook(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRestoreCart(t *testing.T) {
	t.Run("should restore lines", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		c, err := cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), ids, time.Now())

		require.NoError(t, err)
		assert.Len(t, c.BookIDs(), 2)
	})

	t.Run("should reject duplicate lines", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{id, id}, time.Now())

		require.ErrorIs(t, err, cart.ErrBookAlreadyInCart)
	})
}
