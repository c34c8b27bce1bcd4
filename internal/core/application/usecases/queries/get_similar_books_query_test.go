package queries_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSimilarBooksQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		bookID := kernel.NewUUID()
		query, err := queries.NewGetSimilarBooksQuery(bookID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.BookID().IsEqual(bookID))
	})

	t.Run("should reject empty book id", func(t *testing.T) {
		_, err := queries.NewGetSimilarBooksQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var query queries.GetSimilarBooksQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetSimilarBooksQueryIsNotConstructed)
	})
}
