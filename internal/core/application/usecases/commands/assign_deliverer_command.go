package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrAssignDelivererCommandIsNotConstructed = errors.New(
	"AssignDelivererCommand must be created via NewAssignDelivererCommand constructor",
)

// AssignDelivererCommand represents a deliverer claiming an unassigned
// order. The actor's snapshot is denormalized into the order; the
// conditional write guarantees at most one deliverer ever wins the claim.
type AssignDelivererCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Snapshot

	guard guard.ConstructorGuard
}

// NewAssignDelivererCommand creates a command to claim an order.
func NewAssignDelivererCommand(orderID kernel.UUID, actor user.Snapshot) (AssignDelivererCommand, error) {
	cmd := AssignDelivererCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return AssignDelivererCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDelivererCommand) Validate() error {
	return c.guard.Validate(ErrAssignDelivererCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c AssignDelivererCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the deliverer claiming the order.
func (c AssignDelivererCommand) Actor() user.Snapshot {
	return c.actor
}

func (c *AssignDelivererCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDelivererCommand) setActor(actor user.Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
