package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ReadyOrderCommandHandler marks a preparating order as waiting for
// delivery and notifies the client, plus the deliverer if one has already
// claimed the order.
type ReadyOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewReadyOrderCommandHandler creates a handler for the ready transition.
func NewReadyOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) ReadyOrderCommandHandler {
	return ReadyOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "ready_order_command_handler"),
	}
}

// Handle marks the order ready and returns the post-transition record.
func (h *ReadyOrderCommandHandler) Handle(ctx context.Context, cmd ReadyOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, transition, err := applyTransition(ctx, h.repo, cmd.OrderID(),
		func(o *order.Order) (order.Transition, error) {
			return o.Ready(cmd.Actor())
		})
	if err != nil {
		return nil, err
	}

	dispatchNotifications(ctx, h.notifier, h.logger, transition.Notifications)
	return updated, nil
}
