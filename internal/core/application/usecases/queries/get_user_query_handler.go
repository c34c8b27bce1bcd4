package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserQueryHandler retrieves one account profile.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for profile queries.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the profile query.
// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	var resp GetUserQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			email,
			name,
			role,
			active,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(
		&resp.Email,
		&resp.Name,
		&resp.Role,
		&resp.Active,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUserQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}
	if err != nil {
		return GetUserQueryResponse{}, err
	}
	resp.ID = query.UserID()

	return resp, nil
}
