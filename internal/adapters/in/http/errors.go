package http

import (
	"errors"
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorStatus maps a domain error kind to an HTTP status and a
// machine-readable code.
type errorStatus struct {
	status int
	code   string
}

var errorStatuses = []struct {
	target error
	errorStatus
}{
	{errs.ErrObjectNotFound, errorStatus{http.StatusNotFound, "not_found"}},
	{commands.ErrPaymentDeclined, errorStatus{http.StatusPaymentRequired, "payment_declined"}},
	{errs.ErrInvalidTransition, errorStatus{http.StatusConflict, "invalid_transition"}},
	{errs.ErrConcurrencyConflict, errorStatus{http.StatusConflict, "concurrency_conflict"}},
	{errs.ErrNegativeStock, errorStatus{http.StatusConflict, "negative_stock"}},
	{errs.ErrEmptyCart, errorStatus{http.StatusUnprocessableEntity, "empty_cart"}},
	{errs.ErrSequenceExhausted, errorStatus{http.StatusServiceUnavailable, "sequence_exhausted"}},
	{errs.ErrDependencyTimeout, errorStatus{http.StatusGatewayTimeout, "dependency_timeout"}},
	{errs.ErrDependencyFailure, errorStatus{http.StatusBadGateway, "dependency_failure"}},
	{errs.ErrValueIsRequired, errorStatus{http.StatusBadRequest, "validation_failed"}},
	{errs.ErrValueIsInvalid, errorStatus{http.StatusBadRequest, "validation_failed"}},
	{errs.ErrValueIsOutOfRange, errorStatus{http.StatusBadRequest, "validation_failed"}},
}

// respondError writes the uniform error body for a use case error. Unmapped
// errors surface as 500 without leaking their message.
func respondError(ctx echo.Context, err error) error {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.target) {
			return ctx.JSON(mapping.status, ErrorResponse{
				Code:    mapping.code,
				Message: err.Error(),
			})
		}
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    "internal_error",
		Message: "internal error",
	})
}

// respondBadRequest writes a 400 for malformed request bodies.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    "bad_request",
		Message: message,
	})
}
