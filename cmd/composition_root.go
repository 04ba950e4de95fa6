package cmd

import (
	httpadapter "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/kafka"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together. All object
// construction happens here so the rest of the code depends on interfaces
// only.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	logger     *zap.Logger
	config     Config
}

// NewCompositionRoot builds the object graph. When config.KafkaHost is empty
// the publisher stays nil and command handlers skip event publishing.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		config:     config,
	}

	if config.KafkaHost != "" {
		root.publisher = kafka.NewOrderChangedPublisher(
			[]string{config.KafkaHost},
			config.KafkaOrderChangedTopic,
			logger,
		)
	}

	return root
}

// CreateHTTPHandlers bundles every command and query handler for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		UpdateOrder:          c.CreateUpdateOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		DeleteOrder:          c.CreateDeleteOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		AssignCarrier:        c.CreateAssignCarrierCommandHandler(),
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		SetProductStock:      c.CreateSetProductStockCommandHandler(),
		CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
		CreateCarrier:        c.CreateCreateCarrierCommandHandler(),
		CreatePayment:        c.CreateCreatePaymentCommandHandler(),

		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB),
		GetAllOrders:        queries.NewGetAllOrdersQueryHandler(c.gormDB),
		GetTrackingSnapshot: queries.NewGetTrackingSnapshotQueryHandler(c.gormDB),
		GetTrackingHistory:  queries.NewGetTrackingHistoryQueryHandler(c.gormDB),
		GetInventoryReport:  queries.NewGetInventoryReportQueryHandler(c.gormDB),
		GetLowStockProducts: queries.NewGetLowStockProductsQueryHandler(c.gormDB),
		GetProductMovement:  queries.NewGetProductMovementQueryHandler(c.gormDB),
	}
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	lowStock := jobs.NewLowStockMonitorJob(
		queries.NewGetLowStockProductsQueryHandler(c.gormDB),
		c.config.LowStockThreshold,
		c.logger,
	)
	digest := jobs.NewOrderDigestJob(c.uowFactory, c.logger)
	return jobs.NewJobManager(lowStock, digest)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCarrierCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSetProductStockCommandHandler() commands.SetProductStockCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProductStockCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.RecordUoWFactory = FuncRecordUoWFactory(func() commands.RecordUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.RecordUoWFactory = FuncRecordUoWFactory(func() commands.RecordUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.RecordUoWFactory = FuncRecordUoWFactory(func() commands.RecordUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncRecordUoWFactory func() commands.RecordUoW

func (f FuncRecordUoWFactory) Create() commands.RecordUoW {
	return f()
}
