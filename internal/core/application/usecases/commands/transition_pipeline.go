package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// transitionFunc computes a lifecycle transition against an in-memory
// order. The aggregate's own methods (Accept, Decline, ...) have this
// shape.
type transitionFunc func(o *order.Order) (order.Transition, error)

// applyTransition runs the fixed guard pipeline shared by every lifecycle
// handler: fetch the order (existence), compute the transition against it
// (authorization, then status precondition), and apply the conditional
// store write (which re-checks the precondition against the stored record).
// Returns the post-write order.
func applyTransition(
	ctx context.Context,
	repo ports.OrderRepository,
	orderID kernel.UUID,
	apply transitionFunc,
) (*order.Order, order.Transition, error) {
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, order.Transition{}, err
	}

	transition, err := apply(aggregate)
	if err != nil {
		return nil, order.Transition{}, err
	}

	updated, err := repo.ApplyTransition(ctx, orderID, transition)
	if err != nil {
		return nil, order.Transition{}, err
	}

	return updated, transition, nil
}

// dispatchNotifications publishes the transition's fan-out. Best effort:
// failures are logged and never propagated, the transition already
// succeeded.
func dispatchNotifications(
	ctx context.Context,
	notifier ports.Notifier,
	logger *slog.Logger,
	notifications []order.Notification,
) {
	for _, n := range notifications {
		if err := notifier.Publish(ctx, n); err != nil {
			logger.ErrorContext(ctx, "Notification publish failed",
				"topic", n.Topic,
				"target", n.TargetUserID.String(),
				"error", err)
		}
	}
}
