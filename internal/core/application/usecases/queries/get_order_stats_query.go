package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves per-status order counts and revenue totals.
// Reserved to staff; used by the periodic stats job and the back office.
type GetOrderStatsQuery struct { //nolint:recvcheck //using for validation
	actor user.Snapshot

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for order statistics.
func NewGetOrderStatsQuery(actor user.Snapshot) (GetOrderStatsQuery, error) {
	q := GetOrderStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Actor returns the authenticated reader.
func (q GetOrderStatsQuery) Actor() user.Snapshot {
	return q.actor
}

// GetOrderStatsQueryResponse is one row of the per-status rollup.
type GetOrderStatsQueryResponse struct {
	Status     order.Status
	Count      int64
	TotalPrice float64
}
