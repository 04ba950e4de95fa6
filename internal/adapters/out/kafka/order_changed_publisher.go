// Package kafka publishes order-changed events to a Kafka topic.
// Publishing is best effort: command handlers fire events after commit, so a
// broker outage never fails a business operation.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"ordertrack/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// orderChangedMessage is the wire format of one order-changed event.
type orderChangedMessage struct {
	EventID        string    `json:"event_id"`
	OrderID        int64     `json:"order_id"`
	OrderStatus    string    `json:"order_status,omitempty"`
	DeliveryStatus string    `json:"delivery_status,omitempty"`
	Description    string    `json:"description,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// OrderChangedPublisher implements ports.OrderEventPublisher over a Kafka
// writer. Messages are keyed by order ID so all events of one order land on
// the same partition in order.
type OrderChangedPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewOrderChangedPublisher creates a publisher writing to topic on brokers.
func NewOrderChangedPublisher(brokers []string, topic string, logger *zap.Logger) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
		logger: logger,
	}
}

// PublishOrderChanged serializes the event and writes it to the topic.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	msg := orderChangedMessage{
		EventID:        uuid.NewString(),
		OrderID:        event.OrderID,
		OrderStatus:    event.OrderStatus,
		DeliveryStatus: event.DeliveryStatus,
		Description:    event.Description,
		OccurredAt:     event.OccurredAt,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: data,
		Time:  event.OccurredAt,
	})
	if err != nil {
		p.logger.Warn("failed to publish order-changed event",
			zap.Int64("order_id", event.OrderID),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("published order-changed event",
		zap.String("event_id", msg.EventID),
		zap.Int64("order_id", event.OrderID),
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
