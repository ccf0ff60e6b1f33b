package interfaces

import (
	"context"
	"time"

	"fieldtech/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for the reference
// gateway.
//
// UpdateIfStatus applies mutate only while the stored status is one of from;
// it returns the zero order (ID == 0) when the order does not exist or the
// condition no longer holds.
type IServiceOrderRepository interface {
	Put(ctx context.Context, o entities.ServiceOrder, clientID int64) error
	GetByID(ctx context.Context, id int64) (entities.ServiceOrder, int64, error)
	List(ctx context.Context) ([]StoredServiceOrder, error)
	UpdateIfStatus(ctx context.Context, id int64, from []entities.OrderStatus, mutate func(*entities.ServiceOrder)) (entities.ServiceOrder, error)
}

// StoredServiceOrder pairs an order with the client it belongs to.
type StoredServiceOrder struct {
	Order    entities.ServiceOrder
	ClientID int64
}

// IClientRepository persists gateway clients.
type IClientRepository interface {
	Put(ctx context.Context, c entities.Client) error
	GetByID(ctx context.Context, id int64) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

// IRequestLedger remembers client request ids to reject replays.
// Claim returns false when the id was already claimed.
type IRequestLedger interface {
	Claim(ctx context.Context, requestID, operation string, ttl time.Duration) (bool, error)
}
