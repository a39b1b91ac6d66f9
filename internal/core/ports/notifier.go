package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// Notifier publishes order notifications to their target users.
// Publishing is best effort: implementations report transport errors, but
// callers never fail a transition over them.
type Notifier interface {
	// Publish sends a single notification to its target user.
	Publish(ctx context.Context, notification order.Notification) error
}
