package trackingrepo

import (
	"context"

	"ordertrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
// The history is append-only: the repository exposes no update or delete.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Append saves a new tracking event and assigns the generated identifier.
func (r *GormTrackingRepository) Append(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	event.AssignID(dto.ID)
	return nil
}

// GetAllByOrderID retrieves the order's history newest first, ties broken by
// descending ID.
func (r *GormTrackingRepository) GetAllByOrderID(ctx context.Context, orderID int64) ([]*tracking.Event, error) {
	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("timestamp DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}
