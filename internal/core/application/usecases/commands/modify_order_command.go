package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrModifyOrderCommandIsNotConstructed = errors.New(
	"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
)

// ModifyOrderCommand represents an administrative partial update of an
// order. It bypasses the lifecycle state machine and is reserved to staff.
type ModifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Snapshot
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand creates a command to patch an order.
// The patch content is validated against the aggregate later.
func NewModifyOrderCommand(orderID kernel.UUID, actor user.Snapshot, patch order.Patch) (ModifyOrderCommand, error) {
	cmd := ModifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ModifyOrderCommand{}, err
	}

	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to patch.
func (c ModifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the staff member patching the order.
func (c ModifyOrderCommand) Actor() user.Snapshot {
	return c.actor
}

// Patch returns the fields to overwrite.
func (c ModifyOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *ModifyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ModifyOrderCommand) setActor(actor user.Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
