package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// BeginDeliveryCommandHandler moves a waitingDelivery order into delivering
// and notifies the client with the generated hand-off code.
type BeginDeliveryCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewBeginDeliveryCommandHandler creates a handler for delivery starts.
func NewBeginDeliveryCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) BeginDeliveryCommandHandler {
	return BeginDeliveryCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "begin_delivery_command_handler"),
	}
}

// Handle starts the delivery and returns the post-transition record,
// validation code included.
func (h *BeginDeliveryCommandHandler) Handle(ctx context.Context, cmd BeginDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, transition, err := applyTransition(ctx, h.repo, cmd.OrderID(),
		func(o *order.Order) (order.Transition, error) {
			return o.BeginDelivery(cmd.Actor())
		})
	if err != nil {
		return nil, err
	}

	dispatchNotifications(ctx, h.notifier, h.logger, transition.Notifications)
	return updated, nil
}
