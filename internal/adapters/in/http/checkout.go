package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type beginCheckoutRequest struct {
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Address        string              `json:"address"`
	Phone          string              `json:"phone"`
	ShippingMethod string              `json:"shipping_method"`
	Items          []checkoutItemInput `json:"items"`
}

type checkoutItemInput struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
	Format   string `json:"format"`
}

type commitCheckoutRequest struct {
	CheckoutID string `json:"checkout_id"`
}

// BeginCheckout handles POST /api/v1/checkout - stages the caller's cart
// for commit. Staging reserves no stock.
func (s *Server) BeginCheckout(ctx echo.Context) error {
	var request beginCheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	items := make([]commands.BeginCheckoutItem, 0, len(request.Items))
	for _, item := range request.Items {
		bookID, err := kernel.UUIDFromString(item.BookID)
		if err != nil {
			return respond(ctx, err)
		}
		items = append(items, commands.BeginCheckoutItem{
			BookID:   bookID,
			Quantity: item.Quantity,
			Format:   item.Format,
		})
	}

	checkoutID := kernel.NewUUID()
	cmd, err := commands.NewBeginCheckoutCommand(checkoutID, callerID(ctx),
		order.Customer{
			Name:    request.Name,
			Email:   request.Email,
			Address: request.Address,
			Phone:   request.Phone,
		},
		request.ShippingMethod,
		items,
	)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.BeginCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"checkout_id": checkoutID.String()})
}

// CommitCheckout handles POST /api/v1/checkout/commit - converts the staged
// checkout into an order, decrementing stock atomically.
func (s *Server) CommitCheckout(ctx echo.Context) error {
	var request commitCheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	checkoutID, err := kernel.UUIDFromString(request.CheckoutID)
	if err != nil {
		return respond(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCommitCheckoutCommand(orderID, checkoutID, callerID(ctx))
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.CommitCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"order_id": orderID.String()})
}
