package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Draft carries the caller-supplied fields of a new order. The client
// snapshot is deliberately absent: it is taken from the authenticated actor
// so the denormalized identity cannot be forged.
type Draft struct {
	Restaurant      Restaurant
	Products        []Product
	Menus           []Menu
	Price           float64
	DeliveryPrice   float64
	CommissionPrice float64
	Address         string
	Position        kernel.GeoPoint
	Comment         string
}

// Order represents a customer purchase moving through preparation and
// delivery. It is the aggregate root owning the lifecycle state machine.
//
// Order follows these invariants:
//   - status only moves along the edges of the lifecycle graph; terminal
//     states are never left
//   - the client, restaurant, and line-item snapshots are immutable after
//     creation
//   - the deliverer snapshot is set at most once, and only while the order
//     is preparating or waitingDelivery
//   - monetary amounts are non-negative
//
// The transition methods (Accept, Decline, Ready, AssignDeliverer,
// BeginDelivery, Complete) are pure: they check authorization and the
// current-state precondition against this in-memory record and return a
// Transition describing the conditional write and notification fan-out.
// They never mutate the aggregate; the store's conditional update is the
// single authority on whether the transition actually happens.
type Order struct {
	id              kernel.UUID
	client          user.Snapshot
	restaurant      Restaurant
	deliverer       *user.Snapshot
	products        []Product
	menus           []Menu
	price           float64
	deliveryPrice   float64
	commissionPrice float64
	address         string
	position        kernel.GeoPoint
	comment         string
	status          Status
	validationCode  *int

	isConstructed bool
}

// NewOrder creates a new Order in the validating status from a draft.
// The client snapshot comes from the authenticated identity that submitted
// the draft. All snapshots and amounts are validated; the draft must carry
// at least one line item.
func NewOrder(id kernel.UUID, client user.Snapshot, draft Draft) (*Order, error) {
	o := &Order{
		status:        Validating,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClient(client),
		o.setRestaurant(draft.Restaurant),
		o.setLines(draft.Products, draft.Menus),
		o.setPrices(draft.Price, draft.DeliveryPrice, draft.CommissionPrice),
		o.setAddress(draft.Address),
		o.setPosition(draft.Position),
	); err != nil {
		return nil, err
	}

	o.comment = draft.Comment
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any lifecycle status, an optional deliverer snapshot, and an
// optional validation code, and checks their mutual consistency.
func RestoreOrder(
	id kernel.UUID,
	client user.Snapshot,
	draft Draft,
	status Status,
	deliverer *user.Snapshot,
	validationCode *int,
) (*Order, error) {
	o, err := NewOrder(id, client, draft)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = o.setDeliverer(status, deliverer); err != nil {
		return nil, err
	}

	o.status = status
	o.validationCode = validationCode
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Client returns the snapshot of the ordering user.
func (o *Order) Client() user.Snapshot {
	return o.client
}

// Restaurant returns the snapshot of the fulfilling business.
func (o *Order) Restaurant() Restaurant {
	return o.restaurant
}

// Deliverer returns the snapshot of the assigned deliverer.
// Returns nil while no deliverer has claimed the order.
func (o *Order) Deliverer() *user.Snapshot {
	return o.deliverer
}

// Products returns the product line items.
func (o *Order) Products() []Product {
	return o.products
}

// Menus returns the menu line items.
func (o *Order) Menus() []Menu {
	return o.menus
}

// Price returns the total price of the line items.
func (o *Order) Price() float64 {
	return o.price
}

// DeliveryPrice returns the delivery fee.
func (o *Order) DeliveryPrice() float64 {
	return o.deliveryPrice
}

// CommissionPrice returns the platform commission.
func (o *Order) CommissionPrice() float64 {
	return o.commissionPrice
}

// Address returns the delivery destination address.
func (o *Order) Address() string {
	return o.address
}

// Position returns the delivery destination position.
func (o *Order) Position() kernel.GeoPoint {
	return o.position
}

// Comment returns the client's delivery comment, possibly empty.
func (o *Order) Comment() string {
	return o.comment
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ValidationCode returns the hand-off confirmation code generated when
// delivery began, or nil before that.
func (o *Order) ValidationCode() *int {
	return o.validationCode
}

// Accept moves a validating order into preparation. Only the restaurant
// owner may accept. The client is notified.
func (o *Order) Accept(actor user.Snapshot) (Transition, error) {
	if !actor.ID().IsEqual(o.restaurant.Owner().ID()) {
		return Transition{}, errs.NewForbiddenError(actor.ID().String(), "accept order "+o.id.String())
	}

	next, err := o.status.Accept()
	if err != nil {
		return Transition{}, err
	}

	return Transition{
		Expect: Expectation{Statuses: []Status{o.status}},
		Change: Change{Status: &next},
		Notifications: []Notification{
			o.notifyClient("order.accepted",
				fmt.Sprintf("Your order at %s has been accepted and is being prepared.", o.restaurant.Name())),
		},
	}, nil
}

// Decline cancels a validating order. Only the restaurant owner may
// decline. The client is notified.
func (o *Order) Decline(actor user.Snapshot) (Transition, error) {
	if !actor.ID().IsEqual(o.restaurant.Owner().ID()) {
		return Transition{}, errs.NewForbiddenError(actor.ID().String(), "decline order "+o.id.String())
	}

	next, err := o.status.Decline()
	if err != nil {
		return Transition{}, err
	}

	return Transition{
		Expect: Expectation{Statuses: []Status{o.status}},
		Change: Change{Status: &next},
		Notifications: []Notification{
			o.notifyClient("order.declined",
				fmt.Sprintf("Your order at %s has been declined.", o.restaurant.Name())),
		},
	}, nil
}

// Ready marks a preparating order as waiting for delivery. Only the
// restaurant owner may do so. The client is notified, and the deliverer too
// if one already claimed the order.
func (o *Order) Ready(actor user.Snapshot) (Transition, error) {
	if !actor.ID().IsEqual(o.restaurant.Owner().ID()) {
		return Transition{}, errs.NewForbiddenError(actor.ID().String(), "ready order "+o.id.String())
	}

	next, err := o.status.Ready()
	if err != nil {
		return Transition{}, err
	}

	notifications := []Notification{
		o.notifyClient("order.ready",
			fmt.Sprintf("Your order at %s is ready and waiting for a deliverer.", o.restaurant.Name())),
	}
	if o.deliverer != nil {
		notifications = append(notifications,
			o.notify(o.deliverer.ID(), "order.ready",
				fmt.Sprintf("Order at %s is ready for pickup.", o.restaurant.Name())))
	}

	return Transition{
		Expect:        Expectation{Statuses: []Status{o.status}},
		Change:        Change{Status: &next},
		Notifications: notifications,
	}, nil
}

// AssignDeliverer claims the order for the acting deliverer. Any
// authenticated deliverer may claim an unassigned order in preparating or
// waitingDelivery; the status itself does not change. The restaurant owner
// and the client are notified. The conditional write additionally requires
// the stored deliverer to still be unset, so two racing deliverers resolve
// to exactly one winner.
func (o *Order) AssignDeliverer(actor user.Snapshot) (Transition, error) {
	if actor.Role() != user.Deliverer {
		return Transition{}, errs.NewForbiddenError(actor.ID().String(), "claim order "+o.id.String())
	}

	if err := o.status.ValidateAssignDeliverer(); err != nil {
		return Transition{}, err
	}
	if o.deliverer != nil {
		return Transition{}, errs.NewInvalidTransitionError("reassign", o.status.String())
	}

	deliverer := actor
	return Transition{
		Expect: Expectation{
			Statuses:       []Status{Preparating, WaitingDelivery},
			DelivererUnset: true,
		},
		Change: Change{Deliverer: &deliverer},
		Notifications: []Notification{
			o.notify(o.restaurant.Owner().ID(), "order.delivererAssigned",
				fmt.Sprintf("%s will pick up order %s.", actor.FullName(), o.id)),
			o.notifyClient("order.delivererAssigned",
				fmt.Sprintf("%s will deliver your order.", actor.FullName())),
		},
	}, nil
}

// BeginDelivery moves a waitingDelivery order into delivering and generates
// the hand-off validation code. Any authenticated deliverer may begin the
// delivery, assigned or not. The client is notified with the code.
func (o *Order) BeginDelivery(actor user.Snapshot) (Transition, error) {
	if actor.Role() != user.Deliverer {
		return Transition{}, errs.NewForbiddenError(actor.ID().String(), "deliver order "+o.id.String())
	}

	next, err := o.status.BeginDelivery()
	if err != nil {
		return Transition{}, err
	}

	code := newValidationCode()
	return Transition{
		Expect: Expectation{Statuses: []Status{o.status}},
		Change: Change{Status: &next, ValidationCode: &code},
		Notifications: []Notification{
			o.notifyClient("order.delivering",
				fmt.Sprintf("Your order is on its way. Hand-off code: %d.", code)),
		},
	}, nil
}

// Complete marks a delivering order as handed over. Only the assigned
// deliverer may complete. The client is notified.
func (o *Order) Complete(actor user.Snapshot) (Transition, error) {
	if o.deliverer == nil || !actor.ID().IsEqual(o.deliverer.ID()) {
		return Transition{}, errs.NewForbiddenError(actor.ID().String(), "complete order "+o.id.String())
	}

	next, err := o.status.Complete()
	if err != nil {
		return Transition{}, err
	}

	return Transition{
		Expect: Expectation{Statuses: []Status{o.status}},
		Change: Change{Status: &next},
		Notifications: []Notification{
			o.notifyClient("order.completed", "Your order has been delivered. Enjoy!"),
		},
	}, nil
}

// SubmittedNotifications returns the fan-out for a freshly created order:
// the restaurant owner learns about the new order.
func (o *Order) SubmittedNotifications() []Notification {
	return []Notification{
		o.notify(o.restaurant.Owner().ID(), "order.submitted",
			fmt.Sprintf("New order from %s.", o.client.FullName())),
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(client user.Snapshot) error {
	if err := client.Validate(); err != nil {
		return err
	}
	o.client = client
	return nil
}

func (o *Order) setRestaurant(restaurant Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}
	o.restaurant = restaurant
	return nil
}

func (o *Order) setLines(products []Product, menus []Menu) error {
	if len(products) == 0 && len(menus) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, m := range menus {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	o.products = products
	o.menus = menus
	return nil
}

func (o *Order) setPrices(price, deliveryPrice, commissionPrice float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	if deliveryPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPrice", fmt.Errorf("%v is negative", deliveryPrice))
	}
	if commissionPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("commissionPrice", fmt.Errorf("%v is negative", commissionPrice))
	}
	o.price = price
	o.deliveryPrice = deliveryPrice
	o.commissionPrice = commissionPrice
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	o.position = position
	return nil
}

func (o *Order) setDeliverer(status Status, deliverer *user.Snapshot) error {
	if deliverer == nil {
		return nil
	}
	if err := deliverer.Validate(); err != nil {
		return err
	}
	if !status.AllowsDeliverer() {
		return errs.NewValueIsInvalidErrorWithCause("deliverer",
			fmt.Errorf("an order in status %s cannot have a deliverer", status))
	}
	o.deliverer = deliverer
	return nil
}
