package queries

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetOrderDashboardQueryIsNotConstructed = errors.New(
	"GetOrderDashboardQuery must be created via NewGetOrderDashboardQuery constructor",
)

// GetOrderDashboardQuery retrieves the staff order dashboard: totals,
// a 30-day window, the per-status breakdown and daily order counts.
type GetOrderDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderDashboardQuery creates a dashboard query.
func NewGetOrderDashboardQuery() GetOrderDashboardQuery {
	return GetOrderDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDashboardQueryIsNotConstructed)
}

// DailyOrderCount is one day's worth of orders in the dashboard.
type DailyOrderCount struct {
	Day    time.Time
	Orders int
}

// GetOrderDashboardQueryResponse is the dashboard read model.
type GetOrderDashboardQueryResponse struct {
	TotalOrders   int
	TotalRevenue  kernel.Cents
	Orders30Days  int
	Revenue30Days kernel.Cents
	ByStatus      map[string]int
	Daily         []DailyOrderCount
}
