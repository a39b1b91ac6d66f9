// Package queries contains read-only operations for retrieving order data.
// Implements the Query side of the CQRS architecture.
//
// Every query is evaluated under the caller's visibility scope: clients see
// their own orders, restaurateurs the orders addressed to them, deliverers
// their claimed orders plus the unassigned pool, and staff everything.
package queries
