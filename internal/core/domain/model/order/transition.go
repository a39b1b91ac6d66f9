package order

import (
	"math/rand/v2"

	"ordering/internal/core/domain/model/user"
)

// Hand-off validation codes are six decimal digits.
const (
	ValidationCodeMin = 100000
	ValidationCodeMax = 999999
)

// Expectation lists the stored state a conditional write requires. The
// store applies the change only while the persisted status is one of
// Statuses and, when DelivererUnset is set, while no deliverer is recorded.
type Expectation struct {
	Statuses       []Status
	DelivererUnset bool
}

// Change lists the fields a transition writes. Nil fields are untouched.
type Change struct {
	Status         *Status
	Deliverer      *user.Snapshot
	ValidationCode *int
}

// Transition is the outcome of a lifecycle operation computed against an
// in-memory order: the conditional write to attempt and the notifications
// to fan out once the write sticks.
type Transition struct {
	Expect        Expectation
	Change        Change
	Notifications []Notification
}

func newValidationCode() int {
	return rand.IntN(ValidationCodeMax-ValidationCodeMin+1) + ValidationCodeMin
}
