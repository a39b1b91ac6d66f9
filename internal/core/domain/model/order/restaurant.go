package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant constructor.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a denormalized copy of the fulfilling business, including a
// snapshot of its owner. The owner snapshot is the sole basis for
// restaurant-side authorization over the order's whole lifecycle.
type Restaurant struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	owner       user.Snapshot
	name        string
	description string
	address     string
	position    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant snapshot with validation. The id,
// owner, and position must be valid; name and address are required.
func NewRestaurant(
	id kernel.UUID,
	owner user.Snapshot,
	name, description, address string,
	position kernel.GeoPoint,
) (Restaurant, error) {
	r := Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwner(owner),
		r.setName(name),
		r.setAddress(address),
		r.setPosition(position),
	); err != nil {
		return Restaurant{}, err
	}

	r.description = description
	return r, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r Restaurant) ID() kernel.UUID {
	return r.id
}

// Owner returns the snapshot of the restaurant owner.
func (r Restaurant) Owner() user.Snapshot {
	return r.owner
}

// Name returns the restaurant's display name.
func (r Restaurant) Name() string {
	return r.name
}

// Description returns the restaurant's description, possibly empty.
func (r Restaurant) Description() string {
	return r.description
}

// Address returns the restaurant's street address.
func (r Restaurant) Address() string {
	return r.address
}

// Position returns the restaurant's geographic position.
func (r Restaurant) Position() kernel.GeoPoint {
	return r.position
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwner(owner user.Snapshot) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	r.owner = owner
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("restaurant address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	r.position = position
	return nil
}
