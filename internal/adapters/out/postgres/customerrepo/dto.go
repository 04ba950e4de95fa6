// Package customerrepo persists customer records.
package customerrepo

import (
	"ordertrack/internal/core/domain/model/customer"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(255);not null"`
	Email   string `gorm:"type:varchar(255)"`
	Address string
}

// TableName overrides GORM's default naming convention.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(record *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      record.ID(),
		Name:    record.Name(),
		Email:   record.Email(),
		Address: record.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(dto.ID, dto.Name, dto.Email, dto.Address)
}
