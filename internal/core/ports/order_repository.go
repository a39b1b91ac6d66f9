package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lifecycle transitions go through ApplyTransition, a single conditional
// write carrying both the expected state and the delta, so concurrent
// transitions on the same order resolve to exactly one winner.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has this id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ApplyTransition atomically applies a lifecycle transition: the change
	// is written only if the stored record still matches the transition's
	// expectation. Returns the post-write record on success and
	// errs.ConflictError when the expectation no longer holds.
	ApplyTransition(ctx context.Context, id kernel.UUID, transition order.Transition) (*order.Order, error)

	// UpdateFields overwrites the patched fields of an existing order
	// without any state expectation. Administrative use only.
	UpdateFields(ctx context.Context, id kernel.UUID, patch order.Patch) (*order.Order, error)

	// Find returns the page of orders matching the scope and filter,
	// ordered by creation time, newest first.
	Find(ctx context.Context, scope order.Scope, filter order.Filter) ([]*order.Order, error)

	// Count returns the total number of orders matching the scope and
	// filter, ignoring pagination.
	Count(ctx context.Context, scope order.Scope, filter order.Filter) (int64, error)
}
