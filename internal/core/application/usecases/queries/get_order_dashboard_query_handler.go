package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetOrderDashboardQueryHandler aggregates order figures for the staff
// dashboard. Cancelled orders count toward order totals but not revenue.
type GetOrderDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDashboardQueryHandler creates a handler for dashboard queries.
func NewGetOrderDashboardQueryHandler(db *gorm.DB) GetOrderDashboardQueryHandler {
	return GetOrderDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query.
func (h GetOrderDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDashboardQuery,
) (GetOrderDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDashboardQueryResponse{}, err
	}

	resp := GetOrderDashboardQueryResponse{
		ByStatus: make(map[string]int),
		Daily:    make([]DailyOrderCount, 0),
	}
	since := time.Now().AddDate(0, 0, -30)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(order_amount) FILTER (WHERE status != 'CANCELLED'), 0),
			COUNT(*) FILTER (WHERE created_at >= ?),
			COALESCE(SUM(order_amount) FILTER (WHERE status != 'CANCELLED' AND created_at >= ?), 0)
		FROM orders
	`, since, since).Row()
	if err := row.Scan(
		&resp.TotalOrders,
		&resp.TotalRevenue,
		&resp.Orders30Days,
		&resp.Revenue30Days,
	); err != nil {
		return GetOrderDashboardQueryResponse{}, err
	}

	statusRows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderDashboardQueryResponse{}, err
	}
	defer statusRows.Close()

	for statusRows.Next() {
		var status string
		var count int
		if err = statusRows.Scan(&status, &count); err != nil {
			return GetOrderDashboardQueryResponse{}, err
		}
		resp.ByStatus[status] = count
	}
	if err = statusRows.Err(); err != nil {
		return GetOrderDashboardQueryResponse{}, err
	}

	dailyRows, err := h.db.WithContext(ctx).Raw(`
		SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*)
		FROM orders
		WHERE created_at >= ?
		GROUP BY day
		ORDER BY day
	`, since).Rows()
	if err != nil {
		return GetOrderDashboardQueryResponse{}, err
	}
	defer dailyRows.Close()

	for dailyRows.Next() {
		var daily DailyOrderCount
		if err = dailyRows.Scan(&daily.Day, &daily.Orders); err != nil {
			return GetOrderDashboardQueryResponse{}, err
		}
		resp.Daily = append(resp.Daily, daily)
	}
	if err = dailyRows.Err(); err != nil {
		return GetOrderDashboardQueryResponse{}, err
	}

	return resp, nil
}
