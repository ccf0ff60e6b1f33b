package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fieldtech/internal/usecase"
	"fieldtech/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderID   = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	errInvalidProductID = pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func pathID(c *gin.Context, name string, invalid *pkg.AppError) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, invalid)
		return 0, false
	}
	return id, true
}

// mapOrderError translates coordinator errors into HTTP errors.
func mapOrderError(err error) *pkg.AppError {
	var tooEarly *usecase.TooEarlyError
	var opFailed *usecase.OperationFailedError
	var invalid *usecase.InvalidTransitionError

	switch {
	case errors.As(err, &tooEarly):
		return pkg.NewDomainError("TOO_EARLY",
			fmt.Sprintf("The order can be completed after %d minutes", tooEarly.MinimumMinutes()),
			err, http.StatusUnprocessableEntity).
			WithDetail("elapsed_minutes", tooEarly.ElapsedMinutes()).
			WithDetail("minimum_minutes", tooEarly.MinimumMinutes())
	case errors.As(err, &opFailed):
		appErr := pkg.NewDomainError("OPERATION_FAILED", opFailed.Message, err, http.StatusBadGateway)
		if opFailed.StatusCode != 0 {
			appErr = appErr.WithDetail("gateway_status", opFailed.StatusCode)
		}
		return appErr
	case errors.As(err, &invalid):
		return pkg.NewDomainError("INVALID_TRANSITION", invalid.Reason, err, http.StatusConflict).
			WithDetail("status", string(invalid.Status))
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyBatch):
		return pkg.NewDomainError("EMPTY_BATCH", "No material quantities to submit", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainError("PRODUCT_NOT_FOUND", "Product not found in order", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOperationInFlight):
		return pkg.NewDomainError("OPERATION_IN_FLIGHT", "The operation is already running", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCancelNotConfirmed):
		return pkg.NewDomainError("CANCEL_NOT_CONFIRMED", "Cancellation was not requested or the token does not match", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrGeocodingDisabled):
		return pkg.NewDomainError("GEOCODING_DISABLED", "Geocoding is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
