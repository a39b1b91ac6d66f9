package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents the restaurant owner's decision to take a
// validating order into preparation.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(orderID, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//
//	handler := NewAcceptOrderCommandHandler(repo, notifier, logger)
//	updated, err := handler.Handle(ctx, cmd)
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Snapshot

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order.
// Validates that the order ID and the actor snapshot are constructed.
func NewAcceptOrderCommand(orderID kernel.UUID, actor user.Snapshot) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user accepting the order.
func (c AcceptOrderCommand) Actor() user.Snapshot {
	return c.actor
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setActor(actor user.Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
