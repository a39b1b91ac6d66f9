package order

import (
	"ordering/internal/core/domain/model/kernel"
)

// Notification is a message addressed to one user about an order event.
// Delivery is best effort: a failed publish never affects the transition
// that produced it.
type Notification struct {
	TargetUserID kernel.UUID
	Topic        string
	Message      string
	URL          string
}

func (o *Order) notify(target kernel.UUID, topic, message string) Notification {
	return Notification{
		TargetUserID: target,
		Topic:        topic,
		Message:      message,
		URL:          "/orders/" + o.id.String(),
	}
}

func (o *Order) notifyClient(topic, message string) Notification {
	return o.notify(o.client.ID(), topic, message)
}
