// Package http exposes the order tracking operations over an echo HTTP API.
// Handlers translate JSON payloads into commands and queries; every business
// rule lives behind those, never here.
package http

import (
	"net/http"
	"strconv"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	UpdateOrder          commands.UpdateOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	DeleteOrder          commands.DeleteOrderCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	AssignCarrier        commands.AssignCarrierCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	SetProductStock      commands.SetProductStockCommandHandler
	CreateCustomer       commands.CreateCustomerCommandHandler
	CreateCarrier        commands.CreateCarrierCommandHandler
	CreatePayment        commands.CreatePaymentCommandHandler

	GetOrder            queries.GetOrderQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetTrackingSnapshot queries.GetTrackingSnapshotQueryHandler
	GetTrackingHistory  queries.GetTrackingHistoryQueryHandler
	GetInventoryReport  queries.GetInventoryReportQueryHandler
	GetLowStockProducts queries.GetLowStockProductsQueryHandler
	GetProductMovement  queries.GetProductMovementQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers          Handlers
	lowStockThreshold int
}

// NewServer creates a new HTTP server dispatching to the given handlers.
// lowStockThreshold is the default for the low-stock report when the request
// does not carry one; the same configured value drives the monitor job.
func NewServer(handlers Handlers, lowStockThreshold int) *Server {
	return &Server{
		handlers:          handlers,
		lowStockThreshold: lowStockThreshold,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/tracking/orders/:id", s.GetTrackingSnapshot)
	api.GET("/tracking/orders/:id/history", s.GetTrackingHistory)
	api.PUT("/tracking/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/tracking/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.PUT("/tracking/deliveries/:id/carrier", s.AssignCarrier)

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id/stock", s.SetProductStock)
	api.GET("/inventory/report", s.GetInventoryReport)
	api.GET("/inventory/low-stock", s.GetLowStockProducts)
	api.GET("/inventory/out-of-stock", s.GetOutOfStockProducts)
	api.GET("/inventory/movement", s.GetProductMovement)

	api.POST("/customers", s.CreateCustomer)
	api.POST("/carriers", s.CreateCarrier)
	api.POST("/payments", s.CreatePayment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, toLineRequests(req.Lines))
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID})
}

// GetAllOrders handles GET /api/orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			CustomerName: o.CustomerName,
			Date:         o.Date,
			Status:       o.Status,
			TotalAmount:  o.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]OrderLineResponse, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = OrderLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Date:        o.Date,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Lines:       lines,
	})
}

// UpdateOrder handles PUT /api/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, err := order.StatusFromString(*req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var lines []commands.LineRequest
	if req.Lines != nil {
		lines = toLineRequests(req.Lines)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.CustomerID, req.Date, status, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTrackingSnapshot handles GET /api/tracking/orders/:id.
func (s *Server) GetTrackingSnapshot(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetTrackingSnapshotQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.handlers.GetTrackingSnapshot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingSnapshotResponse{
		OrderID:        snapshot.OrderID,
		OrderStatus:    snapshot.OrderStatus,
		OrderDate:      snapshot.OrderDate,
		TotalAmount:    snapshot.TotalAmount,
		CustomerName:   snapshot.CustomerName,
		DeliveryID:     snapshot.DeliveryID,
		DeliveryStatus: snapshot.DeliveryStatus,
		DeliveryDate:   snapshot.DeliveryDate,
		DeliveryCost:   snapshot.DeliveryCost,
		CarrierName:    snapshot.CarrierName,
	})
}

// GetTrackingHistory handles GET /api/tracking/orders/:id/history.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetTrackingHistoryQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.handlers.GetTrackingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]TrackingHistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = TrackingHistoryEntryResponse{
			ID:             entry.ID,
			OrderStatus:    entry.OrderStatus,
			DeliveryStatus: entry.DeliveryStatus,
			Timestamp:      entry.Timestamp,
			Description:    entry.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/tracking/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PUT /api/tracking/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid delivery id")
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCarrier handles PUT /api/tracking/deliveries/:id/carrier.
func (s *Server) AssignCarrier(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid delivery id")
	}

	var req AssignCarrierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignCarrierCommand(id, req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Description, req.Price, req.Stock, req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID})
}

// SetProductStock handles PUT /api/products/:id/stock.
func (s *Server) SetProductStock(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid product id")
	}

	var req SetStockRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetProductStockCommand(id, req.Stock)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SetProductStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInventoryReport handles GET /api/inventory/report.
func (s *Server) GetInventoryReport(ctx echo.Context) error {
	report, err := s.handlers.GetInventoryReport.Handle(ctx.Request().Context(), queries.NewGetInventoryReportQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, InventoryReportResponse{
		Products:   toInventoryProductResponses(report.Products),
		TotalValue: report.TotalValue,
	})
}

// GetLowStockProducts handles GET /api/inventory/low-stock?threshold=N.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	threshold := s.lowStockThreshold
	if raw := ctx.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid threshold")
		}
		threshold = parsed
	}

	return s.respondStockLevel(ctx, threshold)
}

// GetOutOfStockProducts handles GET /api/inventory/out-of-stock.
func (s *Server) GetOutOfStockProducts(ctx echo.Context) error {
	return s.respondStockLevel(ctx, 0)
}

func (s *Server) respondStockLevel(ctx echo.Context, threshold int) error {
	query, err := queries.NewGetLowStockProductsQuery(threshold)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.handlers.GetLowStockProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryProductResponses(products))
}

// GetProductMovement handles GET /api/inventory/movement?from=&to=.
// Timestamps accept RFC 3339 or plain dates (2006-01-02).
func (s *Server) GetProductMovement(ctx echo.Context) error {
	from, ok := parseTimeParam(ctx.QueryParam("from"))
	if !ok {
		return respondBadRequest(ctx, "invalid from timestamp")
	}
	to, ok := parseTimeParam(ctx.QueryParam("to"))
	if !ok {
		return respondBadRequest(ctx, "invalid to timestamp")
	}

	query, err := queries.NewGetProductMovementQuery(from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	movements, err := s.handlers.GetProductMovement.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductMovementResponse, len(movements))
	for i, movement := range movements {
		response[i] = ProductMovementResponse{
			ProductID:     movement.ProductID,
			ProductName:   movement.ProductName,
			TotalQuantity: movement.TotalQuantity,
			OrderCount:    movement.OrderCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID})
}

// CreateCarrier handles POST /api/carriers.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var req CreateCarrierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCarrierCommand(req.Name, req.Phone, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	carrierID, err := s.handlers.CreateCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: carrierID})
}

// CreatePayment handles POST /api/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var req CreatePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreatePaymentCommand(req.OrderID, req.Status, req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	paymentID, err := s.handlers.CreatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: paymentID})
}

func pathID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseTimeParam(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func toLineRequests(lines []OrderLineRequest) []commands.LineRequest {
	requests := make([]commands.LineRequest, len(lines))
	for i, line := range lines {
		requests[i] = commands.LineRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}
	return requests
}
