package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand represents the restaurant owner's refusal of a
// validating order, cancelling it permanently.
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Snapshot

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand creates a command to decline an order.
func NewDeclineOrderCommand(orderID kernel.UUID, actor user.Snapshot) (DeclineOrderCommand, error) {
	cmd := DeclineOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return DeclineOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to decline.
func (c DeclineOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user declining the order.
func (c DeclineOrderCommand) Actor() user.Snapshot {
	return c.actor
}

func (c *DeclineOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeclineOrderCommand) setActor(actor user.Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
