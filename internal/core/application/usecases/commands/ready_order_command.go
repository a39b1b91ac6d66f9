package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrReadyOrderCommandIsNotConstructed = errors.New(
	"ReadyOrderCommand must be created via NewReadyOrderCommand constructor",
)

// ReadyOrderCommand represents the restaurant owner marking a preparating
// order as ready for pickup.
type ReadyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Snapshot

	guard guard.ConstructorGuard
}

// NewReadyOrderCommand creates a command to mark an order ready.
func NewReadyOrderCommand(orderID kernel.UUID, actor user.Snapshot) (ReadyOrderCommand, error) {
	cmd := ReadyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ReadyOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReadyOrderCommand) Validate() error {
	return c.guard.Validate(ErrReadyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark ready.
func (c ReadyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user marking the order ready.
func (c ReadyOrderCommand) Actor() user.Snapshot {
	return c.actor
}

func (c *ReadyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReadyOrderCommand) setActor(actor user.Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
