package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order and enforces the same ownership
// predicate as listing, evaluated against the single record.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle fetches the order. An unknown id yields not-found; a record
// outside the reader's scope yields forbidden.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.VisibleTo(query.Actor()) {
		return nil, errs.NewForbiddenError(query.Actor().ID().String(), "read order "+query.OrderID().String())
	}

	return aggregate, nil
}
