package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/payment"
	"ordertrack/internal/pkg/errs"
)

// CreatePaymentCommandHandler handles payment recording. The referenced order
// must exist; the payment itself carries no lifecycle.
type CreatePaymentCommandHandler struct {
	uowFactory RecordUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for payment recording.
func NewCreatePaymentCommandHandler(uowFactory RecordUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{uowFactory: uowFactory}
}

// Handle processes the payment creation command and returns the new payment's ID.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.OrderRepository().Exists(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	newPayment, err := payment.NewPayment(cmd.OrderID(), cmd.Status(), cmd.Method())
	if err != nil {
		return 0, err
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newPayment.ID(), nil
}
