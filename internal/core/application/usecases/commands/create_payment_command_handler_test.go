package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePaymentCommand(5, "COMPLETED", "CARD")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Exists", ctx, int64(5)).Return(true, nil).Once()

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*payment.Payment).AssignID(11)
		}).
		Return(nil).Once()

	uow := new(MockRecordUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentCommandHandler(factory)
	paymentID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(11), paymentID)
	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePaymentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePaymentCommand(5, "COMPLETED", "CARD")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Exists", ctx, int64(5)).Return(false, nil).Once()

	uow := new(MockRecordUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "PaymentRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreatePaymentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePaymentCommand{} // not constructed properly

	factory := new(MockRecordUoWFactory)
	h := commands.NewCreatePaymentCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
