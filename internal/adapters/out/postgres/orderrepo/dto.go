// Package orderrepo persists order aggregates and their line sets.
// An order maps to one row in "orders" plus one row per line in
// "order_lines"; status is stored as its wire string so the rows stay
// readable and queryable without the status table.
package orderrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64 `gorm:"index;not null"`
	Date        time.Time
	Status      string          `gorm:"type:varchar(32);index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index;not null"`
	ProductID int64 `gorm:"index;not null"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming convention.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make([]OrderLineDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID(),
			OrderID:   aggregate.ID(),
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		CustomerID:  aggregate.CustomerID(),
		Date:        aggregate.Date(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.RestoreLine(lineDTO.ID, lineDTO.ProductID, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, dto.CustomerID, dto.Date, status, dto.TotalAmount, lines)
}
