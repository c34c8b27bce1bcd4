package queries_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPopularAuthorsQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		query, err := queries.NewGetPopularAuthorsQuery("Fantasy")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "Fantasy", query.GenreName())
	})

	t.Run("should reject empty genre", func(t *testing.T) {
		_, err := queries.NewGetPopularAuthorsQuery("")
		require.Error(t, err)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var query queries.GetPopularAuthorsQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetPopularAuthorsQueryIsNotConstructed)
	})
}
