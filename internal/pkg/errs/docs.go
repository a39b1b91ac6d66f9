// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy covers the deterministic business outcomes of the order
// lifecycle as well as transient infrastructure failures:
//   - ObjectNotFoundError: unknown object (e.g. order id)
//   - ForbiddenError: authenticated actor not entitled to act or view
//   - InvalidTransitionError: entitled actor acting on a wrong-state order
//   - ConflictError: conditional write lost a race against a concurrent update
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed drafts, patches, or value objects
//   - UnavailableError: transient store failure, retryable by the caller
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Business outcomes (not found, forbidden, invalid transition, conflict,
// validation) are returned to callers as-is and never retried internally.
// Unavailable wraps transient store errors and is safe to retry because every
// state change is a conditional write.
package errs
