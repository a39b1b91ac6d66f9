package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// AcceptOrderCommandHandler moves a validating order into preparation on
// behalf of the restaurant owner and notifies the client.
type AcceptOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "accept_order_command_handler"),
	}
}

// Handle accepts the order and returns the post-transition record.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, transition, err := applyTransition(ctx, h.repo, cmd.OrderID(),
		func(o *order.Order) (order.Transition, error) {
			return o.Accept(cmd.Actor())
		})
	if err != nil {
		return nil, err
	}

	dispatchNotifications(ctx, h.notifier, h.logger, transition.Notifications)
	return updated, nil
}
