package http

import (
	"net/http"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type orderListItem struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	OrderAmount  int64     `json:"order_amount"`
	LineCount    int       `json:"line_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type orderLine struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Version   string `json:"version"`
	UnitPrice int64  `json:"unit_price"`
}

type orderDetail struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `json:"customer_address"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	ShippingMethod  string      `json:"shipping_method"`
	ShippingAmount  int64       `json:"shipping_amount"`
	TaxesAmount     int64       `json:"taxes_amount"`
	OrderAmount     int64       `json:"order_amount"`
	Status          string      `json:"status"`
	Lines           []orderLine `json:"lines"`
	CreatedAt       time.Time   `json:"created_at"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// GetOrders handles GET /api/v1/orders - the caller's orders, newest first.
// Staff callers may pass ?all=true to list every account's orders. An
// optional ?status= filters by status label.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.Unknown
	if label := ctx.QueryParam("status"); label != "" {
		parsed, err := order.StatusFromString(label)
		if err != nil {
			return respond(ctx, err)
		}
		status = parsed
	}

	var query queries.GetOrdersQuery
	if ctx.QueryParam("all") == "true" && callerRole(ctx).IsStaff() {
		query = queries.NewGetAllOrdersQuery(status)
	} else {
		var err error
		query, err = queries.NewGetOrdersQuery(callerID(ctx), status)
		if err != nil {
			return respond(ctx, err)
		}
	}

	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	response := make([]orderListItem, len(orders))
	for i, item := range orders {
		response[i] = orderListItem{
			ID:           item.ID.String(),
			CustomerName: item.CustomerName,
			Status:       item.Status,
			OrderAmount:  int64(item.OrderAmount),
			LineCount:    item.LineCount,
			CreatedAt:    item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID - one order with its lines.
// A caller may read their own orders; staff may read any. Foreign orders
// answer 404 rather than 403 so ids cannot be probed.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respond(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respond(ctx, err)
	}

	item, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respond(ctx, err)
	}

	if !item.UserID.IsEqual(callerID(ctx)) && !callerRole(ctx).IsStaff() {
		return respondError(ctx, http.StatusNotFound, "not_found", "order not found")
	}

	lines := make([]orderLine, len(item.Lines))
	for i, line := range item.Lines {
		lines[i] = orderLine{
			BookID:    line.BookID.String(),
			Title:     line.Title,
			Quantity:  line.Quantity,
			Version:   line.Version,
			UnitPrice: int64(line.UnitPrice),
		}
	}

	return ctx.JSON(http.StatusOK, orderDetail{
		ID:              item.ID.String(),
		CustomerName:    item.CustomerName,
		CustomerEmail:   item.CustomerEmail,
		CustomerAddress: item.CustomerAddress,
		CustomerPhone:   item.CustomerPhone,
		ShippingMethod:  item.ShippingMethod,
		ShippingAmount:  int64(item.ShippingAmount),
		TaxesAmount:     int64(item.TaxesAmount),
		OrderAmount:     int64(item.OrderAmount),
		Status:          item.Status,
		Lines:           lines,
		CreatedAt:       item.CreatedAt,
	})
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderID/status (staff only).
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respond(ctx, err)
	}

	var request updateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "validation_error",
			"Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, request.Status)
	if err != nil {
		return respond(ctx, err)
	}

	if err = s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respond(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderDashboard handles GET /api/v1/dashboard/orders (staff only).
func (s *Server) GetOrderDashboard(ctx echo.Context) error {
	dashboard, err := s.queries.GetOrderDashboard.Handle(
		ctx.Request().Context(), queries.NewGetOrderDashboardQuery())
	if err != nil {
		return respond(ctx, err)
	}

	daily := make([]echo.Map, len(dashboard.Daily))
	for i, day := range dashboard.Daily {
		daily[i] = echo.Map{
			"day":    day.Day.Format("2006-01-02"),
			"orders": day.Orders,
		}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"total_orders":    dashboard.TotalOrders,
		"total_revenue":   int64(dashboard.TotalRevenue),
		"orders_30_days":  dashboard.Orders30Days,
		"revenue_30_days": int64(dashboard.Revenue30Days),
		"by_status":       dashboard.ByStatus,
		"daily":           daily,
	})
}
