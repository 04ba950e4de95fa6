package commands_test

import (
	"testing"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreDelivery(t *testing.T, id, orderID int64, status delivery.Status) *delivery.Delivery {
	t.Helper()
	carrierID := int64(3)
	d, err := delivery.RestoreDelivery(id, orderID, &carrierID, time.Now(), decimal.Zero, status)
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ProjectsInTransitOntoOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDeliveryStatusCommand(9, delivery.InTransit)
	require.NoError(t, err)

	existing := restoreDelivery(t, 9, 5, delivery.PickedUp)
	parent := restoreOrder(t, 5, order.ReadyForDelivery)

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("Get", ctx, int64(9)).Return(existing, nil).Once()
	deliveryRepo.On("Update", ctx, existing).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(5)).Return(parent, nil).Once()
	orderRepo.On("Update", ctx, parent).Return(nil).Once()

	trackingRepo := new(MockTrackingRepository)
	trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Twice()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Twice()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("TrackingRepository").Return(trackingRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, existing.Status())
	assert.Equal(t, order.InDelivery, parent.Status())
	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_PickedUpDoesNotTouchOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDeliveryStatusCommand(9, delivery.PickedUp)
	require.NoError(t, err)

	existing := restoreDelivery(t, 9, 5, delivery.Assigned)

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("Get", ctx, int64(9)).Return(existing, nil).Once()
	deliveryRepo.On("Update", ctx, existing).Return(nil).Once()

	trackingRepo := new(MockTrackingRepository)
	trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Twice()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, existing.Status())
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_IllegalOrderProjectionFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDeliveryStatusCommand(9, delivery.InTransit)
	require.NoError(t, err)

	existing := restoreDelivery(t, 9, 5, delivery.PickedUp)
	// parent never reached READY_FOR_DELIVERY, so the projected IN_DELIVERY
	// transition must fail and abort the whole operation
	parent := restoreOrder(t, 5, order.Confirmed)

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("Get", ctx, int64(9)).Return(existing, nil).Once()
	deliveryRepo.On("Update", ctx, existing).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(5)).Return(parent, nil).Once()

	trackingRepo := new(MockTrackingRepository)
	trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Twice()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	assert.Equal(t, order.Confirmed, parent.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_IllegalDeliveryTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDeliveryStatusCommand(9, delivery.Delivered)
	require.NoError(t, err)

	existing := restoreDelivery(t, 9, 5, delivery.Pending)

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("Get", ctx, int64(9)).Return(existing, nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrInvalidStatusTransition)
	assert.Equal(t, delivery.Pending, existing.Status())
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateDeliveryStatusCommand{} // not constructed properly

	factory := new(MockDeliveryUoWFactory)
	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil)

	require.Error(t, h.Handle(ctx, cmd))
}
