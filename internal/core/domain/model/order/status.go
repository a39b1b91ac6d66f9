package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	validating ──┬──> preparating ──> waitingDelivery ──> delivering ──> completed
//	             │
//	             └──> cancelled
//
// completed and cancelled are terminal. Deliverer assignment is an
// orthogonal side-transition allowed in preparating and waitingDelivery; it
// does not change the status itself.
//
// Status is a value object that validates state transitions and provides
// the wire names used in persistence and over HTTP.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Validating is the initial status of a freshly submitted order,
	// awaiting the restaurant owner's decision.
	Validating

	// Preparating indicates the restaurant accepted the order and is
	// preparing it.
	Preparating

	// WaitingDelivery indicates the order is ready and waiting for a
	// deliverer to pick it up.
	WaitingDelivery

	// Delivering indicates a deliverer is transporting the order.
	Delivering

	// Completed indicates the order was handed over to the client.
	// Terminal.
	Completed

	// Cancelled indicates the restaurant declined the order. Terminal.
	Cancelled
)

func getStatusNames() map[Status]string {
	return map[Status]string{
		UnknownStatus:   "unknown",
		Validating:      "validating",
		Preparating:     "preparating",
		WaitingDelivery: "waitingDelivery",
		Delivering:      "delivering",
		Completed:       "completed",
		Cancelled:       "cancelled",
	}
}

func getValidStatusNames() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Validating:      "validating",
		Preparating:     "preparating",
		WaitingDelivery: "waitingDelivery",
		Delivering:      "delivering",
		Completed:       "completed",
		Cancelled:       "cancelled",
	}
}

// StatusFromString parses a status from its wire name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusNames() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("validating", "preparating",
// "waitingDelivery", "delivering", "completed", "cancelled"). This is the
// form stored in the database and serialized over HTTP. Implements
// fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AllowsDeliverer reports whether an order in this status may carry a
// deliverer snapshot. An order never reaches delivering or completed
// without one having been possible, and a cancelled order was declined
// before any courier could claim it.
func (s Status) AllowsDeliverer() bool {
	switch s {
	case Preparating, WaitingDelivery, Delivering, Completed:
		return true
	case UnknownStatus, Validating, Cancelled:
		return false
	default:
		return false
	}
}

// Accept transitions validating -> preparating.
func (s Status) Accept() (Status, error) {
	if s != Validating {
		return 0, errs.NewInvalidTransitionError("accept", s.String())
	}
	return Preparating, nil
}

// Decline transitions validating -> cancelled.
func (s Status) Decline() (Status, error) {
	if s != Validating {
		return 0, errs.NewInvalidTransitionError("decline", s.String())
	}
	return Cancelled, nil
}

// Ready transitions preparating -> waitingDelivery.
func (s Status) Ready() (Status, error) {
	if s != Preparating {
		return 0, errs.NewInvalidTransitionError("ready", s.String())
	}
	return WaitingDelivery, nil
}

// ValidateAssignDeliverer checks that the status admits deliverer
// assignment. Assignment is a side-transition: it never changes the status,
// so no next status is returned.
func (s Status) ValidateAssignDeliverer() error {
	if s != Preparating && s != WaitingDelivery {
		return errs.NewInvalidTransitionError("assign a deliverer to", s.String())
	}
	return nil
}

// BeginDelivery transitions waitingDelivery -> delivering.
func (s Status) BeginDelivery() (Status, error) {
	if s != WaitingDelivery {
		return 0, errs.NewInvalidTransitionError("begin delivering", s.String())
	}
	return Delivering, nil
}

// Complete transitions delivering -> completed.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Completed, nil
}
