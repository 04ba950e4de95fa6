package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// publishOrderChanged derives one order-changed event from the aggregates
// modified in the committed unit of work and hands it to the publisher.
// Called after Commit only; a nil publisher disables publishing. Publish
// failures are the adapter's concern and never surface here.
func publishOrderChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	tracked AggregateTracking,
	description string,
) {
	if publisher == nil {
		return
	}

	event := ports.OrderChangedEvent{
		Description: description,
		OccurredAt:  time.Now(),
	}

	for _, ta := range tracked.TrackedAggregates() {
		switch aggregate := ta.Aggregate.(type) {
		case *order.Order:
			event.OrderID = aggregate.ID()
			event.OrderStatus = aggregate.Status().String()
		case *delivery.Delivery:
			if event.OrderID == 0 {
				event.OrderID = aggregate.OrderID()
			}
			event.DeliveryStatus = aggregate.Status().String()
		}
	}

	if event.OrderID == 0 {
		return
	}

	_ = publisher.PublishOrderChanged(ctx, event)
}
