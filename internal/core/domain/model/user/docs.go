// Package user provides the user-facing value objects of the ordering
// domain: the closed Role set and the denormalized Snapshot that orders
// embed for their client, restaurant owner, and deliverer.
package user
