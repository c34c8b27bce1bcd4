package book_test

import (
	"testing"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAttributes() book.Attributes {
	return book.Attributes{
		Title:     "The Go Programming Language",
		Publisher: "Addison-Wesley",
		Type:      "Non-fiction",
		PageCount: 380,
		ISBN13:    "9780134190440",
		Flags:     book.Flags{Ebook: true, Audiobook: true, OnDisplay: true},
	}
}

func validPrices() book.Prices {
	return book.Prices{Hardcover: 3999, Paperback: 2999, Ebook: 1999, Audiobook: 2499}
}

func newTestBook(t *testing.T, stock int) *book.Book {
	t.Helper()
	b, err := book.NewBook(kernel.NewUUID(), validAttributes(), validPrices(), stock)
	require.NoError(t, err)
	return b
}

func TestNewBook(t *testing.T) {
	t.Run("should create valid book", func(t *testing.T) {
		id := kernel.NewUUID()
		b, err := book.NewBook(id, validAttributes(), validPrices(), 5)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(id))
		assert.Equal(t, 5, b.Stock())
		assert.Equal(t, book.Rating{}, b.Rating())
	})

	t.Run("should reject missing required attributes", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*book.Attributes)
		}{
			{"empty title", func(a *book.Attributes) { a.Title = "" }},
			{"empty publisher", func(a *book.Attributes) { a.Publisher = "" }},
			{"empty type", func(a *book.Attributes) { a.Type = "" }},
			{"zero page count", func(a *book.Attributes) { a.PageCount = 0 }},
			{"short isbn", func(a *book.Attributes) { a.ISBN13 = "123" }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				attrs := validAttributes()
				tc.mutate(&attrs)

				_, err := book.NewBook(kernel.NewUUID(), attrs, validPrices(), 1)
				require.Error(t, err)
			})
		}
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := book.NewBook(kernel.NewUUID(), validAttributes(), validPrices(), -1)
		require.Error(t, err)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		prices := validPrices()
		prices.Paperback = -1

		_, err := book.NewBook(kernel.NewUUID(), validAttributes(), prices, 1)
		require.Error(t, err)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var b book.Book
		require.ErrorIs(t, b.Validate(), book.ErrBookIsNotConstructed)
	})
}

func TestBook_Reserve(t *testing.T) {
	t.Run("should decrement stock", func(t *testing.T) {
		b := newTestBook(t, 5)

		require.NoError(t, b.Reserve(3))
		assert.Equal(t, 2, b.Stock())

		require.NoError(t, b.Reserve(2))
		assert.Equal(t, 0, b.Stock())
	})

	t.Run("should reject insufficient stock and leave it untouched", func(t *testing.T) {
		b := newTestBook(t, 2)

		err := b.Reserve(3)

		require.ErrorIs(t, err, book.ErrOutOfStock)
		assert.Equal(t, 2, b.Stock())

		var oosErr *book.OutOfStockError
		require.ErrorAs(t, err, &oosErr)
		require.Len(t, oosErr.Shortages, 1)
		assert.Equal(t, 3, oosErr.Shortages[0].Requested)
		assert.Equal(t, 2, oosErr.Shortages[0].Available)
		assert.True(t, oosErr.Shortages[0].BookID.IsEqual(b.ID()))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		b := newTestBook(t, 5)

		require.Error(t, b.Reserve(0))
		require.Error(t, b.Reserve(-1))
		assert.Equal(t, 5, b.Stock())
	})
}

func TestBook_Release(t *testing.T) {
	t.Run("should return copies to stock", func(t *testing.T) {
		b := newTestBook(t, 0)

		require.NoError(t, b.Release(2))
		assert.Equal(t, 2, b.Stock())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		b := newTestBook(t, 1)

		require.Error(t, b.Release(0))
		assert.Equal(t, 1, b.Stock())
	})
}

func TestBook_ShortageFor(t *testing.T) {
	b := newTestBook(t, 2)

	assert.Nil(t, b.ShortageFor(2))
	require.NotNil(t, b.ShortageFor(3))
	assert.Equal(t, 2, b.ShortageFor(3).Available)
	assert.Equal(t, 2, b.Stock(), "checking must not mutate stock")
}

func TestBook_PriceFor(t *testing.T) {
	t.Run("should price every available format", func(t *testing.T) {
		b := newTestBook(t, 1)

		testCases := []struct {
			format   book.Format
			expected kernel.Cents
		}{
			{book.Hardcover, 3999},
			{book.Paperback, 2999},
			{book.Ebook, 1999},
			{book.Audiobook, 2499},
		}

		for _, tc := range testCases {
			price, err := b.PriceFor(tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price)
		}
	})

	t.Run("should reject formats the title does not offer", func(t *testing.T) {
		attrs := validAttributes()
		attrs.Flags.Ebook = false
		b, err := book.NewBook(kernel.NewUUID(), attrs, validPrices(), 1)
		require.NoError(t, err)

		_, err = b.PriceFor(book.Ebook)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown format", func(t *testing.T) {
		b := newTestBook(t, 1)

		_, err := b.PriceFor(book.UnknownFormat)
		require.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	t.Run("should round trip labels", func(t *testing.T) {
		for _, f := range []book.Format{book.Hardcover, book.Paperback, book.Ebook, book.Audiobook} {
			parsed, err := book.FormatFromString(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
	})

	t.Run("should reject unknown labels", func(t *testing.T) {
		_, err := book.FormatFromString("VINYL")
		require.Error(t, err)
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		require.Error(t, book.UnknownFormat.Validate())
		require.Error(t, book.Format(42).Validate())
		assert.Equal(t, "UNKNOWN", book.Format(42).String())
	})
}

func TestAuthorAndGenre(t *testing.T) {
	t.Run("should create author", func(t *testing.T) {
		a, err := book.NewAuthor(kernel.NewUUID(), "Ursula K. Le Guin", "American author")
		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Ursula K. Le Guin", a.Name())
	})

	t.Run("should require author name", func(t *testing.T) {
		_, err := book.NewAuthor(kernel.NewUUID(), "", "")
		require.Error(t, err)
	})

	t.Run("should create genre and require name", func(t *testing.T) {
		g, err := book.NewGenre(kernel.NewUUID(), "Science Fiction")
		require.NoError(t, err)
		require.NoError(t, g.Validate())

		_, err = book.NewGenre(kernel.NewUUID(), "")
		require.Error(t, err)
	})
}
