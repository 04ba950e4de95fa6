package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/carrier"
	"ordertrack/internal/core/domain/model/customer"
	"ordertrack/internal/core/domain/model/payment"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id int64) (*customer.Customer, error)
	GetAll(ctx context.Context) ([]*customer.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CarrierRepository defines the persistence contract for carrier records.
type CarrierRepository interface {
	Add(ctx context.Context, aggregate *carrier.Carrier) error
	Get(ctx context.Context, id int64) (*carrier.Carrier, error)
	GetAll(ctx context.Context) ([]*carrier.Carrier, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error
	Get(ctx context.Context, id int64) (*payment.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) (*payment.Payment, error)
}
