package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type cartLine struct {
	BookID string `json:"book_id"`
	Title  string `json:"title"`
	Cover  string `json:"cover"`
	Price  int64  `json:"price"`
	Stock  int    `json:"stock"`
}

type cartResponse struct {
	Lines []cartLine `json:"lines"`
	Total int64      `json:"total"`
}

type addCartItemRequest struct {
	BookID string `json:"book_id"`
}

// GetCart handles GET /api/v1/cart - the caller's cart with current prices.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(callerID(ctx))
	if err != nil {
		return respond(ctx, err)
	}

	cart, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	lines := make([]cartLine, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = cartLine{
			BookID: line.BookID.String(),
			Title:  line.Title,
			Cover:  line.Cover,
			Price:  int64(line.Price),
			Stock:  line.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, cartResponse{
		Lines: lines,
		Total: int64(cart.Total),
	})
}

// AddCartItem handles POST /api/v1/cart/items - puts a book in the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var request addCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	bookID, err := kernel.UUIDFromString(request.BookID)
	if err != nil {
		return respond(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(callerID(ctx), bookID)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:bookID.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	bookID, err := kernel.UUIDFromString(ctx.Param("bookID"))
	if err != nil {
		return respond(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(callerID(ctx), bookID)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
