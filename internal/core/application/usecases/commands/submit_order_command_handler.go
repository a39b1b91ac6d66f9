package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// SubmitOrderCommandHandler handles the business logic for placing orders.
// Generates the order id, persists the aggregate in validating status, and
// notifies the restaurant owner.
type SubmitOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order placement.
func NewSubmitOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "submit_order_command_handler"),
	}
}

// Handle places the order. Only clients may submit; the actor's snapshot is
// denormalized into the order so the record keeps saying who placed it.
// Returns the persisted order.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Actor().Role() != user.Client {
		return nil, errs.NewForbiddenError(cmd.Actor().ID().String(), "submit an order")
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), cmd.Actor(), cmd.Draft())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	dispatchNotifications(ctx, h.notifier, h.logger, aggregate.SubmittedNotifications())
	return aggregate, nil
}
