// Package productrepo persists product aggregates.
package productrepo

import (
	"ordertrack/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock       int             `gorm:"not null"`
	Category    string          `gorm:"type:varchar(128);index"`
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Stock:       aggregate.Stock(),
		Category:    aggregate.Category(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Description, dto.Price, dto.Stock, dto.Category)
}
