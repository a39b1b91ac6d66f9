package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrBeginDeliveryCommandIsNotConstructed = errors.New(
	"BeginDeliveryCommand must be created via NewBeginDeliveryCommand constructor",
)

// BeginDeliveryCommand represents a deliverer picking up a ready order and
// starting the delivery.
type BeginDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Snapshot

	guard guard.ConstructorGuard
}

// NewBeginDeliveryCommand creates a command to start delivering an order.
func NewBeginDeliveryCommand(orderID kernel.UUID, actor user.Snapshot) (BeginDeliveryCommand, error) {
	cmd := BeginDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return BeginDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrBeginDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c BeginDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the deliverer starting the delivery.
func (c BeginDeliveryCommand) Actor() user.Snapshot {
	return c.actor
}

func (c *BeginDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *BeginDeliveryCommand) setActor(actor user.Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
