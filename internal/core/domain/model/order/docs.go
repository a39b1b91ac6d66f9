// Package order contains the Order aggregate and its lifecycle state
// machine.
//
// An order moves along a fixed graph of statuses (see Status); each
// lifecycle operation checks the actor's authorization first and the
// current status second, then yields a Transition describing a conditional
// store write plus the notification fan-out. Statuses completed and
// cancelled are terminal.
//
// User and restaurant data is denormalized into the order as immutable
// snapshots taken at creation and assignment time, so the record keeps
// saying who placed, prepared, and delivered it even after profiles change.
package order
