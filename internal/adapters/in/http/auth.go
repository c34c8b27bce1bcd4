package http

import (
	"net/http"
	"strings"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "auth.user_id"
	contextKeyRole   = "auth.role"
)

// Auth issues and verifies the bearer tokens that protect the API.
// Tokens carry the account id and role so request handling never needs a
// user lookup.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

// NewAuth creates an Auth with the signing secret and token lifetime.
func NewAuth(secret string, ttl time.Duration) *Auth {
	return &Auth{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// IssueToken mints a signed token for an authenticated account.
func (a *Auth) IssueToken(account *user.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  account.ID().String(),
		"role": account.Role().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(a.ttl).Unix(),
	})

	return token.SignedString(a.secret)
}

// Middleware verifies the Authorization header and stores the caller's id
// and role on the request context.
func (a *Auth) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return respondError(ctx, http.StatusUnauthorized, "unauthorized",
					"Missing bearer token")
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return a.secret, nil
			})
			if err != nil || !token.Valid {
				return respondError(ctx, http.StatusUnauthorized, "unauthorized",
					"Invalid or expired token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return respondError(ctx, http.StatusUnauthorized, "unauthorized",
					"Invalid token claims")
			}

			subject, _ := claims["sub"].(string)
			userID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return respondError(ctx, http.StatusUnauthorized, "unauthorized",
					"Invalid token subject")
			}

			roleLabel, _ := claims["role"].(string)
			role, err := user.RoleFromString(roleLabel)
			if err != nil {
				return respondError(ctx, http.StatusUnauthorized, "unauthorized",
					"Invalid token role")
			}

			ctx.Set(contextKeyUserID, userID)
			ctx.Set(contextKeyRole, role)

			return next(ctx)
		}
	}
}

// RequireStaff rejects callers whose role carries no staff rights.
// Must run after Auth.Middleware.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !callerRole(ctx).IsStaff() {
			return respondError(ctx, http.StatusForbidden, "forbidden",
				"Staff access required")
		}
		return next(ctx)
	}
}

// callerID returns the authenticated account id from the request context.
func callerID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(contextKeyUserID).(kernel.UUID)
	return id
}

// callerRole returns the authenticated account role from the request context.
func callerRole(ctx echo.Context) user.Role {
	role, _ := ctx.Get(contextKeyRole).(user.Role)
	return role
}
