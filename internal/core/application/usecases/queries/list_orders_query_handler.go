package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// ListOrdersQueryHandler retrieves the page of orders visible to the actor.
// The repository evaluates the scope predicate, so a reader never receives
// a record outside their role's visibility.
type ListOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo}
}

// Handle returns the matching page plus the total count before pagination.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResult, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResult{}, err
	}

	scope := query.Scope()
	filter := query.Filter()

	total, err := h.repo.Count(ctx, scope, filter)
	if err != nil {
		return ListOrdersResult{}, err
	}

	orders, err := h.repo.Find(ctx, scope, filter)
	if err != nil {
		return ListOrdersResult{}, err
	}

	return ListOrdersResult{Orders: orders, Total: total}, nil
}
