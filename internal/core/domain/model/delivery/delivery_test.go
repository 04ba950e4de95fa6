package delivery_test

import (
	"testing"
	"time"

	"ordertrack/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should create pending delivery dated now", func(t *testing.T) {
		d, err := delivery.NewDelivery(7)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, int64(0), d.ID())
		assert.Equal(t, int64(7), d.OrderID())
		assert.Nil(t, d.CarrierID())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.True(t, d.Cost().IsZero())
		assert.WithinDuration(t, time.Now(), d.DeliveryDate(), time.Minute)
	})

	t.Run("should fail when orderID is missing", func(t *testing.T) {
		_, err := delivery.NewDelivery(0)
		require.Error(t, err)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore delivery from persistence", func(t *testing.T) {
		carrierID := int64(3)
		date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

		d, err := delivery.RestoreDelivery(5, 7, &carrierID, date, decimal.RequireFromString("4.50"), delivery.InTransit)

		require.NoError(t, err)
		assert.Equal(t, int64(5), d.ID())
		assert.Equal(t, int64(7), d.OrderID())
		require.NotNil(t, d.CarrierID())
		assert.Equal(t, int64(3), *d.CarrierID())
		assert.Equal(t, delivery.InTransit, d.Status())
	})

	t.Run("should fail on invalid status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(5, 7, nil, time.Now(), decimal.Zero, delivery.Unknown)
		require.Error(t, err)
	})
}

func TestDeliveryValidate(t *testing.T) {
	var d delivery.Delivery
	require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)

	var nilDelivery *delivery.Delivery
	require.ErrorIs(t, nilDelivery.Validate(), delivery.ErrDeliveryIsNotConstructed)
}

func TestDeliveryAssignCarrier(t *testing.T) {
	t.Run("should attach carrier and advance to assigned", func(t *testing.T) {
		d, err := delivery.NewDelivery(7)
		require.NoError(t, err)

		err = d.AssignCarrier(3)

		require.NoError(t, err)
		require.NotNil(t, d.CarrierID())
		assert.Equal(t, int64(3), *d.CarrierID())
		assert.Equal(t, delivery.Assigned, d.Status())
	})

	t.Run("should fail when carrierID is missing", func(t *testing.T) {
		d, err := delivery.NewDelivery(7)
		require.NoError(t, err)

		require.Error(t, d.AssignCarrier(0))
		assert.Nil(t, d.CarrierID())
	})

	t.Run("should fail once the delivery left pending", func(t *testing.T) {
		d, err := delivery.NewDelivery(7)
		require.NoError(t, err)
		require.NoError(t, d.AssignCarrier(3))

		err = d.AssignCarrier(4)

		require.ErrorIs(t, err, delivery.ErrDeliveryNotPending)
		assert.Equal(t, int64(3), *d.CarrierID())
	})
}

func TestDeliveryChangeStatus(t *testing.T) {
	t.Run("should follow the transition table", func(t *testing.T) {
		d, err := delivery.NewDelivery(7)
		require.NoError(t, err)
		require.NoError(t, d.AssignCarrier(3))

		require.NoError(t, d.ChangeStatus(delivery.PickedUp))
		require.NoError(t, d.ChangeStatus(delivery.InTransit))
		require.NoError(t, d.ChangeStatus(delivery.Delivered))
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("should reject illegal transition and keep current status", func(t *testing.T) {
		d, err := delivery.NewDelivery(7)
		require.NoError(t, err)

		err = d.ChangeStatus(delivery.InTransit)

		require.ErrorIs(t, err, delivery.ErrInvalidStatusTransition)
		assert.Equal(t, delivery.Pending, d.Status())
	})
}
