// Package trackingrepo persists the append-only tracking history. Rows are
// inserted once per accepted transition and never updated or deleted; at most
// one of the two status columns is set per row.
package trackingrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"
)

// TrackingEventDTO represents one tracking history row.
type TrackingEventDTO struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	OrderID        int64   `gorm:"index;not null"`
	OrderStatus    *string `gorm:"type:varchar(32)"`
	DeliveryStatus *string `gorm:"type:varchar(32)"`
	Timestamp      time.Time
	Description    string
}

// TableName overrides GORM's default naming convention.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) TrackingEventDTO {
	var orderStatus, deliveryStatus *string
	if s := event.OrderStatus(); s != nil {
		str := s.String()
		orderStatus = &str
	}
	if s := event.DeliveryStatus(); s != nil {
		str := s.String()
		deliveryStatus = &str
	}

	return TrackingEventDTO{
		ID:             event.ID(),
		OrderID:        event.OrderID(),
		OrderStatus:    orderStatus,
		DeliveryStatus: deliveryStatus,
		Timestamp:      event.Timestamp(),
		Description:    event.Description(),
	}
}

// toDomain converts a database DTO to a tracking event using RestoreEvent.
func toDomain(dto TrackingEventDTO) (*tracking.Event, error) {
	var orderStatus *order.Status
	if dto.OrderStatus != nil {
		s, err := order.StatusFromString(*dto.OrderStatus)
		if err != nil {
			return nil, err
		}
		orderStatus = &s
	}

	var deliveryStatus *delivery.Status
	if dto.DeliveryStatus != nil {
		s, err := delivery.StatusFromString(*dto.DeliveryStatus)
		if err != nil {
			return nil, err
		}
		deliveryStatus = &s
	}

	return tracking.RestoreEvent(dto.ID, dto.OrderID, orderStatus, deliveryStatus, dto.Timestamp, dto.Description)
}
