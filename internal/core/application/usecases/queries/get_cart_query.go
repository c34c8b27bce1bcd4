package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a user's cart with each book priced at its
// current hardcover price. Carts carry no price snapshots; whatever the
// catalog says right now is what the cart shows.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a user's cart.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q GetCartQuery) UserID() kernel.UUID { return q.userID }

// GetCartQueryLine is one book in the cart read model.
type GetCartQueryLine struct {
	BookID kernel.UUID
	Title  string
	Cover  string
	Price  kernel.Cents
	Stock  int
}

// GetCartQueryResponse is the cart read model. A user with no cart gets
// an empty response, not an error.
type GetCartQueryResponse struct {
	Lines []GetCartQueryLine
	Total kernel.Cents
}
