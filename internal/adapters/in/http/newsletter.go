package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

type subscribeNewsletterRequest struct {
	Email string `json:"email"`
}

// SubscribeNewsletter handles POST /api/v1/newsletter/subscriptions.
func (s *Server) SubscribeNewsletter(ctx echo.Context) error {
	var request subscribeNewsletterRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	cmd, err := commands.NewSubscribeNewsletterCommand(request.Email)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.SubscribeNewsletter.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UnsubscribeNewsletter handles DELETE /api/v1/newsletter/subscriptions/:email.
func (s *Server) UnsubscribeNewsletter(ctx echo.Context) error {
	cmd, err := commands.NewUnsubscribeNewsletterCommand(ctx.Param("email"))
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.UnsubscribeNewsletter.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
