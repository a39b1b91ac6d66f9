package queries

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of orders visible to the actor,
// optionally narrowed by status and, for deliverers, by pool slice.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, statuses, order.PoolUnassigned, skip, size)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(repo)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor    user.Snapshot
	statuses []order.Status
	pool     order.PoolFilter
	skip     int
	size     int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of visible orders.
// Offsets come pre-computed from the pagination collaborator; size must be
// positive.
func NewListOrdersQuery(
	actor user.Snapshot,
	statuses []order.Status,
	pool order.PoolFilter,
	skip, size int,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if skip < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("skip", fmt.Errorf("%d is negative", skip))
	}
	if size <= 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not positive", size))
	}

	q.actor = actor
	q.statuses = statuses
	q.pool = pool
	q.skip = skip
	q.size = size
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated reader.
func (q ListOrdersQuery) Actor() user.Snapshot {
	return q.actor
}

// Scope derives the reader's visibility scope, applying the pool slice for
// deliverers.
func (q ListOrdersQuery) Scope() order.Scope {
	scope := order.ScopeFor(q.actor)
	if delivererScope, ok := scope.(order.DelivererScope); ok {
		delivererScope.Pool = q.pool
		return delivererScope
	}
	return scope
}

// Filter returns the status narrowing and page offsets.
func (q ListOrdersQuery) Filter() order.Filter {
	return order.Filter{
		Statuses: q.statuses,
		Skip:     q.skip,
		Size:     q.size,
	}
}

// ListOrdersResult is a page of visible orders plus the total match count
// before pagination.
type ListOrdersResult struct {
	Orders []*order.Order
	Total  int64
}
