package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines and assigns the generated identifiers.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.AssignID(dto.ID)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, replacing its line set. Lines are rewritten
// wholesale since a line edit always goes through full replacement on the
// aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("customer_id", "date", "status", "total_amount").
		Updates(map[string]any{
			"customer_id":  dto.CustomerID,
			"date":         dto.Date,
			"status":       dto.Status,
			"total_amount": dto.TotalAmount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", dto.ID)
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
		return err
	}

	lines := make([]OrderLineDTO, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		line.ID = 0
		line.OrderID = dto.ID
		lines = append(lines, line)
	}
	if err := r.db.WithContext(ctx).Create(&lines).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// preloadLines loads the line set in stable id order.
func preloadLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_lines.id")
	})
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := preloadLines(r.db.WithContext(ctx)).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order with its lines.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := preloadLines(r.db.WithContext(ctx)).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByDateRange retrieves orders placed within [start, end].
func (r *GormOrderRepository) GetAllByDateRange(ctx context.Context, start, end time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := preloadLines(r.db.WithContext(ctx)).
		Where("date BETWEEN ? AND ?", start, end).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Exists reports whether an order with the ID is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the order and its lines. The tracking history and any
// delivery row stay behind as an audit trail.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&OrderLineDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", id)
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
