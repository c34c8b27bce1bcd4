package http

import (
	"errors"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/user"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type"`

	// Shortages is set only for out_of_stock errors and lists every
	// line the commit could not cover.
	Shortages []ShortageResponse `json:"shortages,omitempty"`

	// CurrentStatus and RequestedStatus are set only for
	// invalid_status_transition errors.
	CurrentStatus   string `json:"current_status,omitempty"`
	RequestedStatus string `json:"requested_status,omitempty"`
}

// ShortageResponse reports one book whose stock cannot cover the order.
type ShortageResponse struct {
	BookID    string `json:"book_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// respond maps an application error onto the HTTP surface. The mapping is
// the only place transport codes are decided; handlers just forward errors.
func respond(ctx echo.Context, err error) error {
	var outOfStock *book.OutOfStockError
	if errors.As(err, &outOfStock) {
		shortages := make([]ShortageResponse, 0, len(outOfStock.Shortages))
		for _, s := range outOfStock.Shortages {
			shortages = append(shortages, ShortageResponse{
				BookID:    s.BookID.String(),
				Requested: s.Requested,
				Available: s.Available,
			})
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:      http.StatusBadRequest,
			Message:   err.Error(),
			ErrorType: "out_of_stock",
			Shortages: shortages,
		})
	}

	var invalidTransition *order.InvalidStatusTransitionError
	if errors.As(err, &invalidTransition) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:            http.StatusBadRequest,
			Message:         err.Error(),
			ErrorType:       "invalid_status_transition",
			CurrentStatus:   invalidTransition.From.String(),
			RequestedStatus: invalidTransition.Requested,
		})
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return respondError(ctx, http.StatusUnauthorized, "invalid_credentials",
			"Invalid email or password")
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, cart.ErrBookAlreadyInCart):
		return respondError(ctx, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, commands.ErrBookIsNotInCart):
		return respondError(ctx, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, "validation_error", err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, "internal_error",
			"Internal server error")
	}
}

// respondError writes a bare error body with no extra fields.
func respondError(ctx echo.Context, code int, errorType, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:      code,
		Message:   message,
		ErrorType: errorType,
	})
}
