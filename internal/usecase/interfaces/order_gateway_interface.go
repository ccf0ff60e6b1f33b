package interfaces

import (
	"context"
	"fmt"

	"fieldtech/internal/domain/entities"
)

// IOrderGateway abstracts the remote REST API that owns durable order state.
//
// Every call is one-shot: implementations must not retry on their own.
// Non-success responses are reported as *GatewayError.
type IOrderGateway interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	ListFullOrders(ctx context.Context) ([]entities.ServiceOrderRow, error)
	StartOrder(ctx context.Context, orderID int64, req StartOrderRequest) (TransitionResult, error)
	CompleteOrder(ctx context.Context, orderID int64, req CompleteOrderRequest) (TransitionResult, error)
	CancelOrder(ctx context.Context, orderID int64, req CancelOrderRequest) (TransitionResult, error)
	SubmitUsedProducts(ctx context.Context, orderID int64, requestID string, products []UsedProduct) error
	SignOrder(ctx context.Context, orderID int64, requestID string, files string) error
	Login(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context) error
}

type StartOrderRequest struct {
	RequestID string
	StartTime string
}

type CompleteOrderRequest struct {
	RequestID string
	EndTime   string
	Products  []UsedProduct
}

type CancelOrderRequest struct {
	RequestID string
	Reason    string
}

// UsedProduct is one entry of a material batch.
type UsedProduct struct {
	ProductID    int64 `json:"product_id"`
	QuantityUsed int   `json:"quantity_used"`
}

// TransitionResult carries the order fields the gateway reports back after a
// transition. Status is the raw wire value; callers normalize it.
type TransitionResult struct {
	Status    string
	StartTime string
	EndTime   string
}

// Session is the authenticated technician as returned by login.
type Session struct {
	Token string
	User  SessionUser
}

type SessionUser struct {
	ID    int64  `json:"id_user"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GatewayError is a failed gateway call. StatusCode is 0 when the request
// never got an HTTP response.
type GatewayError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("gateway unreachable: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("gateway status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway status %d", e.StatusCode)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
