package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// AssignDelivererCommandHandler claims an order for the acting deliverer.
// The store write requires the deliverer to still be unset, so two racing
// claims resolve to exactly one winner; the loser receives a conflict.
type AssignDelivererCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewAssignDelivererCommandHandler creates a handler for order claims.
func NewAssignDelivererCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignDelivererCommandHandler {
	return AssignDelivererCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "assign_deliverer_command_handler"),
	}
}

// Handle claims the order and returns the post-transition record.
func (h *AssignDelivererCommandHandler) Handle(ctx context.Context, cmd AssignDelivererCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, transition, err := applyTransition(ctx, h.repo, cmd.OrderID(),
		func(o *order.Order) (order.Transition, error) {
			return o.AssignDeliverer(cmd.Actor())
		})
	if err != nil {
		return nil, err
	}

	dispatchNotifications(ctx, h.notifier, h.logger, transition.Notifications)
	return updated, nil
}
