package usecase

import (
	"context"
	"errors"
	"fmt"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"
)

var ErrGeocodingDisabled = errors.New("geocoding is disabled")

// OrderLocation is where an order's client is, for the map overlay.
type OrderLocation struct {
	OrderID     int64                 `json:"order_id"`
	Address     string                `json:"address"`
	Coordinates *entities.Coordinates `json:"coordinates,omitempty"`
	Error       string                `json:"error,omitempty"`
}

// IDirectoryUseCase lists clients and places orders on a map.
type IDirectoryUseCase interface {
	Clients(ctx context.Context) ([]entities.Client, error)
	Locate(ctx context.Context, orderIDs []int64) ([]OrderLocation, error)
}

type orderReader interface {
	Order(id int64) (entities.ServiceOrder, error)
}

type DirectoryUseCase struct {
	gateway  interfaces.IOrderGateway
	orders   orderReader
	geocoder interfaces.IGeocodeQueue
	notifier INotificationCenter
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

// NewDirectoryUseCase builds the directory. geocoder may be nil, which
// turns Locate off.
func NewDirectoryUseCase(gateway interfaces.IOrderGateway, orders orderReader, geocoder interfaces.IGeocodeQueue, notifier INotificationCenter) *DirectoryUseCase {
	if notifier == nil {
		notifier = NewNotificationCenter(0, nil)
	}
	return &DirectoryUseCase{gateway: gateway, orders: orders, geocoder: geocoder, notifier: notifier}
}

func (u *DirectoryUseCase) Clients(ctx context.Context) ([]entities.Client, error) {
	clients, err := u.gateway.ListClients(ctx)
	if err != nil {
		failed := operationFailed("list clients", "could not load clients", err)
		u.notifier.Push(entities.NotificationError, notificationMessage(failed))
		return nil, failed
	}
	return clients, nil
}

// Locate geocodes the client address of each order. Orders whose address
// cannot be resolved are returned with Error set.
func (u *DirectoryUseCase) Locate(ctx context.Context, orderIDs []int64) ([]OrderLocation, error) {
	if u.geocoder == nil {
		return nil, ErrGeocodingDisabled
	}
	if len(orderIDs) == 0 {
		return nil, fmt.Errorf("%w: no orders to locate", ErrInvalidInput)
	}

	out := make([]OrderLocation, 0, len(orderIDs))
	addresses := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		o, err := u.orders.Order(id)
		if err != nil {
			return nil, err
		}
		out = append(out, OrderLocation{OrderID: id, Address: o.Client.Address})
		addresses = append(addresses, o.Client.Address)
	}

	results := u.geocoder.GeocodeAll(ctx, addresses)
	for i := range out {
		if i >= len(results) {
			out[i].Error = "not geocoded"
			continue
		}
		if results[i].Err != nil {
			logger.Warn(ctx, "geocoding failed", "order_id", out[i].OrderID, "error", results[i].Err)
			out[i].Error = results[i].Err.Error()
			continue
		}
		coords := results[i].Coordinates
		out[i].Coordinates = &coords
	}
	return out, nil
}
