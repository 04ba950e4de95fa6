package http

import (
	"errors"
	"net/http"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use-case error to an HTTP status:
// missing object -> 404, invalid input -> 400, illegal transition -> 409,
// insufficient stock -> 422, anything else -> 500 with a generic message so
// internals stay out of responses.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, delivery.ErrInvalidStatusTransition),
		errors.Is(err, delivery.ErrDeliveryNotPending):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, product.ErrInsufficientStock):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
