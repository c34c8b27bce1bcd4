// Package http exposes the bookstore over a JSON API. Handlers translate
// requests into commands and queries; all business rules stay in the
// application and domain layers.
package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	AddCartItem           commands.AddCartItemCommandHandler
	RemoveCartItem        commands.RemoveCartItemCommandHandler
	BeginCheckout         commands.BeginCheckoutCommandHandler
	CommitCheckout        commands.CommitCheckoutCommandHandler
	UpdateOrderStatus     commands.UpdateOrderStatusCommandHandler
	CreateBook            commands.CreateBookCommandHandler
	SubscribeNewsletter   commands.SubscribeNewsletterCommandHandler
	UnsubscribeNewsletter commands.UnsubscribeNewsletterCommandHandler
	RegisterUser          commands.RegisterUserCommandHandler
	LoginUser             commands.LoginUserCommandHandler
	ToggleUserActive      commands.ToggleUserActiveCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetBooks            queries.GetBooksQueryHandler
	GetBook             queries.GetBookQueryHandler
	GetSimilarBooks     queries.GetSimilarBooksQueryHandler
	GetAuthorStatistics queries.GetAuthorStatisticsQueryHandler
	GetPopularAuthors   queries.GetPopularAuthorsQueryHandler
	GetCart             queries.GetCartQueryHandler
	GetOrders           queries.GetOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetOrderDashboard   queries.GetOrderDashboardQueryHandler
	GetUser             queries.GetUserQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	auth     *Auth
	schema   []byte
}

// NewServer creates a new HTTP server with the required command and query
// handlers. schema is the raw OpenAPI document served at /schema.
func NewServer(cmds Commands, qrys Queries, auth *Auth, schema []byte) *Server {
	return &Server{
		commands: cmds,
		queries:  qrys,
		auth:     auth,
		schema:   schema,
	}
}

// RegisterRoutes wires every endpoint into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(MetricsMiddleware())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/schema", s.Schema)

	v1 := e.Group("/api/v1")

	// public catalog and account endpoints
	v1.GET("/books", s.GetBooks)
	v1.GET("/books/:bookID", s.GetBook)
	v1.GET("/books/:bookID/similar", s.GetSimilarBooks)
	v1.GET("/authors/:name/statistics", s.GetAuthorStatistics)
	v1.GET("/genres/:name/popular-authors", s.GetPopularAuthors)
	v1.POST("/newsletter/subscriptions", s.SubscribeNewsletter)
	v1.DELETE("/newsletter/subscriptions/:email", s.UnsubscribeNewsletter)
	v1.POST("/users", s.RegisterUser)
	v1.POST("/auth/login", s.Login)

	// endpoints that act on the caller's own data
	authed := v1.Group("", s.auth.Middleware())
	authed.GET("/users/me", s.GetMe)
	authed.GET("/cart", s.GetCart)
	authed.POST("/cart/items", s.AddCartItem)
	authed.DELETE("/cart/items/:bookID", s.RemoveCartItem)
	authed.POST("/checkout", s.BeginCheckout)
	authed.POST("/checkout/commit", s.CommitCheckout)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/:orderID", s.GetOrder)

	// staff endpoints
	staff := v1.Group("", s.auth.Middleware(), RequireStaff)
	staff.POST("/books", s.CreateBook)
	staff.POST("/orders/:orderID/status", s.UpdateOrderStatus)
	staff.POST("/users/:userID/active", s.ToggleUserActive)
	staff.GET("/dashboard/orders", s.GetOrderDashboard)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Schema handles GET /schema - serves the OpenAPI document.
func (s *Server) Schema(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", s.schema)
}
