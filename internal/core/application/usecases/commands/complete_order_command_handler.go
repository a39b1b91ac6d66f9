package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CompleteOrderCommandHandler marks a delivering order as handed over and
// notifies the client.
type CompleteOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "complete_order_command_handler"),
	}
}

// Handle completes the order and returns the post-transition record.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, transition, err := applyTransition(ctx, h.repo, cmd.OrderID(),
		func(o *order.Order) (order.Transition, error) {
			return o.Complete(cmd.Actor())
		})
	if err != nil {
		return nil, err
	}

	dispatchNotifications(ctx, h.notifier, h.logger, transition.Notifications)
	return updated, nil
}
