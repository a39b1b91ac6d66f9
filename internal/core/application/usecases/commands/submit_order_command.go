package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to place a new order. The actor
// becomes the order's client snapshot; the draft carries the restaurant,
// line items, prices, and destination.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(actor, draft)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(repo, notifier, logger)
//	placed, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	actor user.Snapshot
	draft order.Draft

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to place a new order.
// The actor must be a constructed snapshot; the draft itself is validated
// later, when the aggregate is built.
func NewSubmitOrderCommand(actor user.Snapshot, draft order.Draft) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return SubmitOrderCommand{}, err
	}

	cmd.draft = draft
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Actor returns the authenticated user placing the order.
func (c SubmitOrderCommand) Actor() user.Snapshot {
	return c.actor
}

// Draft returns the caller-supplied order fields.
func (c SubmitOrderCommand) Draft() order.Draft {
	return c.draft
}

func (c *SubmitOrderCommand) setActor(actor user.Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
