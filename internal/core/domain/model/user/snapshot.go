package user

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrSnapshotIsNotConstructed is returned when a Snapshot instance was not
// created through the NewSnapshot constructor.
var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot constructor")

// Snapshot is a denormalized copy of a user as they were at a fixed point in
// time. Orders embed snapshots of the client, the restaurant owner, and the
// deliverer instead of live references: authorization checks and notification
// addressing run against the copied identity, preserving who actually took
// part in an order even if the user record changes later.
//
// Snapshot also serves as the authenticated actor of a request: the identity
// layer reconstructs the caller's snapshot from the verified principal.
type Snapshot struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	role      Role

	guard guard.ConstructorGuard
}

// NewSnapshot creates a user snapshot with validation. The id and role must
// be valid; first name, last name, and email are required. Phone may be
// empty.
func NewSnapshot(id kernel.UUID, firstName, lastName, email, phone string, role Role) (Snapshot, error) {
	s := Snapshot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(firstName, lastName),
		s.setEmail(email),
		s.setRole(role),
	); err != nil {
		return Snapshot{}, err
	}

	s.phone = phone
	return s, nil
}

// Validate ensures the Snapshot was created through NewSnapshot.
func (s Snapshot) Validate() error {
	return s.guard.Validate(ErrSnapshotIsNotConstructed)
}

// ID returns the user's unique identifier.
func (s Snapshot) ID() kernel.UUID {
	return s.id
}

// FirstName returns the user's first name.
func (s Snapshot) FirstName() string {
	return s.firstName
}

// LastName returns the user's last name.
func (s Snapshot) LastName() string {
	return s.lastName
}

// FullName returns "FirstName LastName", used when composing notifications.
func (s Snapshot) FullName() string {
	return strings.TrimSpace(s.firstName + " " + s.lastName)
}

// Email returns the user's contact email.
func (s Snapshot) Email() string {
	return s.email
}

// Phone returns the user's contact phone, possibly empty.
func (s Snapshot) Phone() string {
	return s.phone
}

// Role returns the role the user held when the snapshot was taken.
func (s Snapshot) Role() Role {
	return s.role
}

// IsEqual compares two snapshots by user identity.
func (s Snapshot) IsEqual(other Snapshot) bool {
	return s.id.IsEqual(other.id)
}

func (s *Snapshot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Snapshot) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	s.firstName = firstName
	s.lastName = lastName
	return nil
}

func (s *Snapshot) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	s.email = email
	return nil
}

func (s *Snapshot) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
