// Package carrierrepo persists carrier records.
package carrierrepo

import (
	"ordertrack/internal/core/domain/model/carrier"
)

// CarrierDTO represents the database structure for persisting carriers.
type CarrierDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(64)"`
	Note  string
}

// TableName overrides GORM's default naming convention.
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(record *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:    record.ID(),
		Name:  record.Name(),
		Phone: record.Phone(),
		Note:  record.Note(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	return carrier.RestoreCarrier(dto.ID, dto.Name, dto.Phone, dto.Note)
}
