package queries_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("should scope to a user", func(t *testing.T) {
		userID := kernel.NewUUID()
		query, err := queries.NewGetOrdersQuery(userID, order.Pending)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, userID, query.UserID())
		assert.Equal(t, order.Pending, query.Status())
	})

	t.Run("should reject invalid user id", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(kernel.UUID{}, order.Unknown)
		require.Error(t, err)
	})

	t.Run("all-users query has unscoped user id", func(t *testing.T) {
		query := queries.NewGetAllOrdersQuery(order.Unknown)

		require.NoError(t, query.Validate())
		require.Error(t, query.UserID().Validate())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var query queries.GetOrdersQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	})
}
