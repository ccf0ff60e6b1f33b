package usecase

import (
	"errors"
	"fmt"
	"time"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
)

var (
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrTooEarly           = errors.New("too early to complete order")
	ErrOperationFailed    = errors.New("operation failed")
	ErrEmptyBatch         = errors.New("empty material batch")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found in order")
	ErrOperationInFlight  = errors.New("operation already in flight")
	ErrCancelNotConfirmed = errors.New("cancel not confirmed")
	ErrInvalidInput       = errors.New("invalid input")
)

// InvalidTransitionError is returned when a local precondition rejects an
// operation before any request is made.
type InvalidTransitionError struct {
	OrderID int64
	Action  string
	Status  entities.OrderStatus
	Reason  string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s order %d in status %s: %s", e.Action, e.OrderID, e.Status, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// TooEarlyError is the minimum-duration guard on completion.
type TooEarlyError struct {
	OrderID int64
	Elapsed time.Duration
	Minimum time.Duration
}

func (e *TooEarlyError) ElapsedMinutes() int { return int(e.Elapsed / time.Minute) }
// MinimumMinutes rounds up so a partial minute is never reported short.
func (e *TooEarlyError) MinimumMinutes() int { return int((e.Minimum + time.Minute - 1) / time.Minute) }

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("order %d can be completed after %d minutes (%d elapsed)", e.OrderID, e.MinimumMinutes(), e.ElapsedMinutes())
}

func (e *TooEarlyError) Unwrap() error { return ErrTooEarly }

// OperationFailedError wraps a gateway failure. Message is the gateway's own
// message when it sent one, otherwise a generic text for the action.
type OperationFailedError struct {
	Action     string
	Message    string
	StatusCode int
	Err        error
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Action, e.Message)
}

func (e *OperationFailedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrOperationFailed}
	}
	return []error{ErrOperationFailed, e.Err}
}

func operationFailed(action, fallback string, err error) error {
	of := &OperationFailedError{Action: action, Message: fallback, Err: err}
	var gwErr *interfaces.GatewayError
	if errors.As(err, &gwErr) {
		of.StatusCode = gwErr.StatusCode
		if gwErr.Message != "" {
			of.Message = gwErr.Message
		}
	}
	return of
}
