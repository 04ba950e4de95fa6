package postgres

import (
	"ordertrack/internal/adapters/out/postgres/carrierrepo"
	"ordertrack/internal/adapters/out/postgres/customerrepo"
	"ordertrack/internal/adapters/out/postgres/deliveryrepo"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/paymentrepo"
	"ordertrack/internal/adapters/out/postgres/productrepo"
	"ordertrack/internal/adapters/out/postgres/trackingrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the adapters persist to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&carrierrepo.CarrierDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&paymentrepo.PaymentDTO{},
		&trackingrepo.TrackingEventDTO{},
	)
}
