package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(5)
	require.NoError(t, err)

	existing := restoreOrder(t, 5, order.Confirmed)
	keyboard := restoreProduct(t, 7, "Keyboard", "9.99", 3)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(5)).Return(existing, nil).Once()
	orderRepo.On("Update", ctx, existing).Return(nil).Once()

	productRepo := new(MockProductRepository)
	productRepo.On("GetForUpdate", ctx, int64(7)).Return(keyboard, nil).Once()
	productRepo.On("Update", ctx, keyboard).Return(nil).Once()

	trackingRepo := new(MockTrackingRepository)
	trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("ProductRepository").Return(productRepo).Twice()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("TrackedAggregates").Return([]ports.TrackedAggregate{{ID: 5, Aggregate: existing}}).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.MatchedBy(func(event ports.OrderChangedEvent) bool {
		return event.OrderID == 5 && event.OrderStatus == "CANCELLED"
	})).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, existing.IsCancelled())
	assert.Equal(t, 5, keyboard.Stock())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(5)
	require.NoError(t, err)

	existing := restoreOrder(t, 5, order.Delivered)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(5)).Return(existing, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	assert.Equal(t, order.Delivered, existing.Status())
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory, nil)

	require.Error(t, h.Handle(ctx, cmd))
}

func TestNewCancelOrderCommand_Invalid(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(0)
	require.Error(t, err)
}
