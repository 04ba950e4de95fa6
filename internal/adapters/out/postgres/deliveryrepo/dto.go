// Package deliveryrepo persists delivery aggregates. Status is stored as its
// wire string; carrier_id stays NULL until a carrier is assigned.
package deliveryrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	OrderID      int64  `gorm:"uniqueIndex;not null"`
	CarrierID    *int64 `gorm:"index"`
	DeliveryDate time.Time
	Cost         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status       string          `gorm:"type:varchar(32);index"`
}

// TableName overrides GORM's default naming convention.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           aggregate.ID(),
		OrderID:      aggregate.OrderID(),
		CarrierID:    aggregate.CarrierID(),
		DeliveryDate: aggregate.DeliveryDate(),
		Cost:         aggregate.Cost(),
		Status:       aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(dto.ID, dto.OrderID, dto.CarrierID, dto.DeliveryDate, dto.Cost, status)
}
