// Package kafkabus publishes order notifications to a Kafka topic.
// The downstream notification service consumes the topic and fans the
// messages out to user devices.
package kafkabus

import (
	"context"
	"encoding/json"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// notificationMessage is the wire format consumed by the notification
// service.
type notificationMessage struct {
	Topic string           `json:"topic"`
	Users []string         `json:"users"`
	Body  notificationBody `json:"body"`
}

type notificationBody struct {
	Msg string `json:"msg"`
	URL string `json:"url"`
}

// KafkaNotifier implements the Notifier port on a Kafka producer.
// The writer runs in async mode: WriteMessages only enqueues, delivery
// outcomes surface through the completion callback. This matches the
// best-effort contract, a slow or down broker never blocks a transition.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaNotifier creates a notifier producing to the given topic.
func NewKafkaNotifier(brokers []string, topic string, logger *slog.Logger) *KafkaNotifier {
	componentLogger := logger.With("component", "kafka_notifier")

	return &KafkaNotifier{
		logger: componentLogger,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			Async:                  true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					componentLogger.Error("Notification delivery failed",
						"messages", len(messages), "error", err)
				}
			},
		},
	}
}

// Publish enqueues one notification, keyed by target user so per-user
// ordering is preserved across partitions.
func (n *KafkaNotifier) Publish(ctx context.Context, notification order.Notification) error {
	payload, err := json.Marshal(notificationMessage{
		Topic: notification.Topic,
		Users: []string{notification.TargetUserID.String()},
		Body: notificationBody{
			Msg: notification.Message,
			URL: notification.URL,
		},
	})
	if err != nil {
		return err
	}

	if err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.TargetUserID.String()),
		Value: payload,
	}); err != nil {
		return errs.NewUnavailableError("notification publish", err)
	}

	return nil
}

// Close flushes pending messages and releases the producer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
