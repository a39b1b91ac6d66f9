package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// DeclineOrderCommandHandler cancels a validating order on behalf of the
// restaurant owner and notifies the client.
type DeclineOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewDeclineOrderCommandHandler creates a handler for order refusal.
func NewDeclineOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "decline_order_command_handler"),
	}
}

// Handle declines the order and returns the post-transition record.
func (h *DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, transition, err := applyTransition(ctx, h.repo, cmd.OrderID(),
		func(o *order.Order) (order.Transition, error) {
			return o.Decline(cmd.Actor())
		})
	if err != nil {
		return nil, err
	}

	dispatchNotifications(ctx, h.notifier, h.logger, transition.Notifications)
	return updated, nil
}
