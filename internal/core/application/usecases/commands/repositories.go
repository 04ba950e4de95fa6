// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. Handlers compose the lifecycle
// engines (order/delivery aggregates), the stock ledger, and the tracking
// recorder into all-or-nothing units of work.
package commands

import (
	"context"

	"ordertrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command declares the narrowest composition it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AggregateTracking exposes the aggregates modified within a unit of work,
	// consumed after commit to derive outbound events.
	AggregateTracking interface {
		TrackedAggregates() []ports.TrackedAggregate
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// OrderUoW manages transactions for order lifecycle operations that touch
	// stock (create, update, cancel).
	OrderUoW interface {
		TxManager
		AggregateTracking
		OrderRepoFactory
		ProductRepoFactory
		CustomerRepoFactory
		TrackingRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StatusUoW manages transactions for the order-status update operation,
	// which may auto-create a delivery and must restore stock on cancellation.
	StatusUoW interface {
		TxManager
		AggregateTracking
		OrderRepoFactory
		ProductRepoFactory
		DeliveryRepoFactory
		TrackingRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// DeliveryUoW manages transactions for delivery lifecycle operations
	// (carrier assignment, delivery-status update with order projection).
	DeliveryUoW interface {
		TxManager
		AggregateTracking
		DeliveryRepoFactory
		OrderRepoFactory
		CarrierRepoFactory
		TrackingRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// RecordUoW manages transactions for the passive record operations
	// (customers, carriers, payments).
	RecordUoW interface {
		TxManager
		CustomerRepoFactory
		CarrierRepoFactory
		PaymentRepoFactory
		OrderRepoFactory
	}

	// RecordUoWFactory creates new record unit of work instances.
	RecordUoWFactory interface {
		Create() RecordUoW
	}
)
