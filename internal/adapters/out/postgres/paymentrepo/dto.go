// Package paymentrepo persists payment records.
package paymentrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payments.
type PaymentDTO struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	OrderID int64 `gorm:"index;not null"`
	Date    time.Time
	Status  string `gorm:"type:varchar(32)"`
	Method  string `gorm:"type:varchar(64)"`
}

// TableName overrides GORM's default naming convention.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(record *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:      record.ID(),
		OrderID: record.OrderID(),
		Date:    record.Date(),
		Status:  record.Status(),
		Method:  record.Method(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	return payment.RestorePayment(dto.ID, dto.OrderID, dto.Date, dto.Status, dto.Method)
}
