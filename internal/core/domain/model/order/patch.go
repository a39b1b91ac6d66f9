package order

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
)

// Patch carries the fields an administrative modification may overwrite.
// Nil fields are untouched. A patch bypasses the lifecycle state machine:
// it is an operator override, not a transition.
type Patch struct {
	Address         *string
	Comment         *string
	Position        *kernel.GeoPoint
	Price           *float64
	DeliveryPrice   *float64
	CommissionPrice *float64
	Status          *Status
}

// IsEmpty reports whether the patch sets nothing.
func (p Patch) IsEmpty() bool {
	return p.Address == nil && p.Comment == nil && p.Position == nil &&
		p.Price == nil && p.DeliveryPrice == nil && p.CommissionPrice == nil &&
		p.Status == nil
}

// Modify authorizes and validates an administrative patch against this
// order. Only staff may modify; any field combination is allowed, including
// overriding the status outside the lifecycle graph.
func (o *Order) Modify(actor user.Snapshot, patch Patch) (Patch, error) {
	if !actor.Role().IsStaff() {
		return Patch{}, errs.NewForbiddenError(actor.ID().String(), "modify order "+o.id.String())
	}

	if patch.IsEmpty() {
		return Patch{}, errs.NewValueIsRequiredError("patch")
	}
	if patch.Address != nil && *patch.Address == "" {
		return Patch{}, errs.NewValueIsRequiredError("address")
	}
	if patch.Position != nil {
		if err := patch.Position.Validate(); err != nil {
			return Patch{}, err
		}
	}
	for name, price := range map[string]*float64{
		"price":           patch.Price,
		"deliveryPrice":   patch.DeliveryPrice,
		"commissionPrice": patch.CommissionPrice,
	} {
		if price != nil && *price < 0 {
			return Patch{}, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative", *price))
		}
	}
	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return Patch{}, err
		}
	}

	return patch, nil
}
