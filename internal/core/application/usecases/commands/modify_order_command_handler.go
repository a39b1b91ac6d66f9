package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ModifyOrderCommandHandler applies an administrative patch to an order.
// No notification is dispatched: patches are operator interventions, not
// lifecycle events the order's participants acted on.
type ModifyOrderCommandHandler struct {
	repo   ports.OrderRepository
	logger *slog.Logger
}

// NewModifyOrderCommandHandler creates a handler for administrative
// patches.
func NewModifyOrderCommandHandler(repo ports.OrderRepository, logger *slog.Logger) ModifyOrderCommandHandler {
	return ModifyOrderCommandHandler{
		repo:   repo,
		logger: logger.With("component", "modify_order_command_handler"),
	}
}

// Handle patches the order and returns the updated record.
func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	patch, err := aggregate.Modify(cmd.Actor(), cmd.Patch())
	if err != nil {
		return nil, err
	}

	updated, err := h.repo.UpdateFields(ctx, cmd.OrderID(), patch)
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order patched by staff",
		"order_id", cmd.OrderID().String(),
		"actor_id", cmd.Actor().ID().String())
	return updated, nil
}
