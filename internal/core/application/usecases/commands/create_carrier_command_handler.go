package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles carrier registration.
type CreateCarrierCommandHandler struct {
	uowFactory RecordUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory RecordUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle processes the carrier creation command and returns the new carrier's ID.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newCarrier, err := carrier.NewCarrier(cmd.Name(), cmd.Phone(), cmd.Note())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CarrierRepository().Add(ctx, newCarrier); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newCarrier.ID(), nil
}
