// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// a single conditional store write, and best-effort notification dispatch.
//
// Lifecycle handlers evaluate guards in a fixed order: existence first,
// then authorization, then the current-status precondition. The store
// write re-checks the precondition, so a transition lost to a concurrent
// writer fails with a conflict instead of silently overwriting.
package commands
