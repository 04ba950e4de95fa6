package http

import (
	"time"

	"ordertrack/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one line of an incoming order payload.
type OrderLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest is the payload for creating an order.
type CreateOrderRequest struct {
	CustomerID int64              `json:"customer_id"`
	Lines      []OrderLineRequest `json:"lines"`
}

// UpdateOrderRequest is the payload for updating an order. Absent fields are
// left unchanged.
type UpdateOrderRequest struct {
	CustomerID *int64             `json:"customer_id,omitempty"`
	Date       *time.Time         `json:"date,omitempty"`
	Status     *string            `json:"status,omitempty"`
	Lines      []OrderLineRequest `json:"lines,omitempty"`
}

// UpdateStatusRequest carries a status literal for order or delivery
// transitions.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignCarrierRequest is the payload for assigning a carrier to a delivery.
type AssignCarrierRequest struct {
	CarrierID int64 `json:"carrier_id"`
}

// CreateProductRequest is the payload for registering a product.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}

// SetStockRequest is the payload for a direct stock correction.
type SetStockRequest struct {
	Stock int `json:"stock"`
}

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CreateCarrierRequest is the payload for registering a carrier.
type CreateCarrierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

// CreatePaymentRequest is the payload for recording a payment.
type CreatePaymentRequest struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	Method  string `json:"method"`
}

// CreatedResponse returns the identifier assigned to a newly created record.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// OrderLineResponse is one order line in a response body.
type OrderLineResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse is one order with its lines.
type OrderResponse struct {
	ID          int64               `json:"id"`
	CustomerID  int64               `json:"customer_id"`
	Date        time.Time           `json:"date"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Lines       []OrderLineResponse `json:"lines"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// TrackingSnapshotResponse is the flattened tracking view of one order.
type TrackingSnapshotResponse struct {
	OrderID        int64            `json:"order_id"`
	OrderStatus    string           `json:"order_status"`
	OrderDate      time.Time        `json:"order_date"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
	CustomerName   string           `json:"customer_name"`
	DeliveryID     *int64           `json:"delivery_id,omitempty"`
	DeliveryStatus *string          `json:"delivery_status,omitempty"`
	DeliveryDate   *time.Time       `json:"delivery_date,omitempty"`
	DeliveryCost   *decimal.Decimal `json:"delivery_cost,omitempty"`
	CarrierName    *string          `json:"carrier_name,omitempty"`
}

// TrackingHistoryEntryResponse is one tracking history entry.
type TrackingHistoryEntryResponse struct {
	ID             int64     `json:"id"`
	OrderStatus    *string   `json:"order_status,omitempty"`
	DeliveryStatus *string   `json:"delivery_status,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Description    string    `json:"description"`
}

// InventoryProductResponse is one product row of an inventory report.
type InventoryProductResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// InventoryReportResponse is the full inventory report.
type InventoryReportResponse struct {
	Products   []InventoryProductResponse `json:"products"`
	TotalValue decimal.Decimal            `json:"total_value"`
}

// ProductMovementResponse is one product's aggregated movement.
type ProductMovementResponse struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	TotalQuantity int    `json:"total_quantity"`
	OrderCount    int    `json:"order_count"`
}

func toInventoryProductResponses(rows []queries.InventoryProductRow) []InventoryProductResponse {
	responses := make([]InventoryProductResponse, len(rows))
	for i, row := range rows {
		responses[i] = InventoryProductResponse{
			ID:         row.ID,
			Name:       row.Name,
			Category:   row.Category,
			Price:      row.Price,
			Stock:      row.Stock,
			StockValue: row.StockValue,
		}
	}
	return responses
}
