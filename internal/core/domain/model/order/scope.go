package order

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// PoolFilter narrows a deliverer's view to a slice of their scope.
type PoolFilter int

const (
	// PoolAll selects both claimed orders and the open pool.
	PoolAll PoolFilter = iota
	// PoolMine selects only orders the deliverer already claimed.
	PoolMine
	// PoolUnassigned selects only the open pool of claimable orders.
	PoolUnassigned
)

// PoolStatuses lists the statuses in which an unassigned order is visible
// to every deliverer as claimable work.
func PoolStatuses() []Status {
	return []Status{Preparating, WaitingDelivery}
}

// Scope describes which orders a reader may see. Exactly one concrete
// scope applies per actor, derived from their role.
type Scope interface {
	isScope()
}

// AllScope grants staff roles unrestricted visibility.
type AllScope struct{}

// ClientScope restricts visibility to orders placed by the client.
type ClientScope struct {
	ClientID kernel.UUID
}

// RestaurateurScope restricts visibility to orders addressed to the
// owner's restaurants.
type RestaurateurScope struct {
	OwnerID kernel.UUID
}

// DelivererScope restricts visibility to orders claimed by the deliverer
// plus, depending on Pool, the open pool of unassigned orders in
// PoolStatuses.
type DelivererScope struct {
	DelivererID kernel.UUID
	Pool        PoolFilter
}

func (AllScope) isScope()          {}
func (ClientScope) isScope()       {}
func (RestaurateurScope) isScope() {}
func (DelivererScope) isScope()    {}

// ScopeFor derives the visibility scope of an actor from their role.
func ScopeFor(actor user.Snapshot) Scope {
	switch actor.Role() {
	case user.Client:
		return ClientScope{ClientID: actor.ID()}
	case user.Restaurateur:
		return RestaurateurScope{OwnerID: actor.ID()}
	case user.Deliverer:
		return DelivererScope{DelivererID: actor.ID(), Pool: PoolAll}
	default:
		return AllScope{}
	}
}

// Filter carries the optional narrowing applied on top of a scope.
type Filter struct {
	Statuses []Status
	Skip     int
	Size     int
}

// VisibleTo reports whether the actor's scope covers this order.
func (o *Order) VisibleTo(actor user.Snapshot) bool {
	switch scope := ScopeFor(actor).(type) {
	case AllScope:
		return true
	case ClientScope:
		return o.client.ID().IsEqual(scope.ClientID)
	case RestaurateurScope:
		return o.restaurant.Owner().ID().IsEqual(scope.OwnerID)
	case DelivererScope:
		if o.deliverer != nil {
			return o.deliverer.ID().IsEqual(scope.DelivererID)
		}
		for _, s := range PoolStatuses() {
			if o.status == s {
				return true
			}
		}
		return false
	default:
		return false
	}
}
