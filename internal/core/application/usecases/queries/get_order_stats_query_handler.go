package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes the per-status rollup straight from
// the database, bypassing the aggregate.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the rollup. Only staff may read statistics.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) ([]GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().Role().IsStaff() {
		return nil, errs.NewForbiddenError(query.Actor().ID().String(), "read order statistics")
	}

	stats := make([]GetOrderStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(price), 0)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOrderStatsQueryResponse
		var statusName string

		if err = rows.Scan(&statusName, &row.Count, &row.TotalPrice); err != nil {
			return nil, err
		}

		status, statusErr := order.StatusFromString(statusName)
		if statusErr != nil {
			return nil, statusErr
		}
		row.Status = status
		stats = append(stats, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
