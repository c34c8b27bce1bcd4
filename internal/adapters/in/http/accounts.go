package http

import (
	"net/http"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type registerUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterUser handles POST /api/v1/users - creates an account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request registerUserRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, request.Email, request.Name, request.Password)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"user_id": userID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and mints
// a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	cmd, err := commands.NewLoginUserCommand(request.Email, request.Password)
	if err != nil {
		return respond(ctx, err)
	}

	account, err := s.commands.LoginUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respond(ctx, err)
	}

	token, err := s.auth.IssueToken(account)
	if err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"token": token})
}

// ToggleUserActive handles POST /api/v1/users/:userID/active - flips an
// account between active and suspended (staff only).
func (s *Server) ToggleUserActive(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userID"))
	if err != nil {
		return respond(ctx, err)
	}

	cmd, err := commands.NewToggleUserActiveCommand(userID)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.ToggleUserActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMe handles GET /api/v1/users/me - the caller's own profile.
func (s *Server) GetMe(ctx echo.Context) error {
	query, err := queries.NewGetUserQuery(callerID(ctx))
	if err != nil {
		return respond(ctx, err)
	}

	profile, err := s.queries.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profileResponse{
		ID:        profile.ID.String(),
		Email:     profile.Email,
		Name:      profile.Name,
		Role:      profile.Role,
		Active:    profile.Active,
		CreatedAt: profile.CreatedAt,
	})
}
