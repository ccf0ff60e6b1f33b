package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"

	"github.com/shopspring/decimal"
)

var (
	ErrServiceOrderNotFound   = errors.New("service order not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrDuplicateRequest       = errors.New("duplicate request")
	ErrInvalidServiceOrderID  = errors.New("invalid service order id")
	ErrInvalidClockTime       = errors.New("invalid time, expected HH:mm:ss")
	ErrEmptyProducts          = errors.New("products are required")
	ErrUnknownProduct         = errors.New("product is not assigned to the order")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrEmptySignature         = errors.New("signature is required")
)

// StateConflictError reports a transition the stored order cannot take.
type StateConflictError struct {
	OrderID int64
	Action  string
	Status  entities.OrderStatus
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s service order %d in state %s", e.Action, e.OrderID, e.Status)
}

func (e *StateConflictError) Unwrap() error { return ErrInvalidStateTransition }

// IServiceOrderUseCase is the server side of the service order endpoints.
// Transitions are conditional on the stored state, so of two racing
// requests only one can win.
type IServiceOrderUseCase interface {
	ListFull(ctx context.Context) ([]entities.ServiceOrderRow, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	Start(ctx context.Context, id int64, requestID, startTime string) (entities.ServiceOrder, error)
	Complete(ctx context.Context, id int64, requestID, endTime string, products []interfaces.UsedProduct) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id int64, requestID, reason string) (entities.ServiceOrder, error)
	RecordUsedProducts(ctx context.Context, id int64, requestID string, products []interfaces.UsedProduct) (entities.ServiceOrder, error)
	Sign(ctx context.Context, id int64, requestID, files string) (entities.ServiceOrder, error)
	SeedDemo(ctx context.Context) (int, error)
}

type ServiceOrderUseCase struct {
	orders     interfaces.IServiceOrderRepository
	clients    interfaces.IClientRepository
	ledger     interfaces.IRequestLedger
	requestTTL time.Duration
	location   *time.Location
	now        func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	ledger interfaces.IRequestLedger,
	requestTTL time.Duration,
	location *time.Location,
	now func() time.Time,
) *ServiceOrderUseCase {
	if requestTTL <= 0 {
		requestTTL = 24 * time.Hour
	}
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &ServiceOrderUseCase{
		orders:     orders,
		clients:    clients,
		ledger:     ledger,
		requestTTL: requestTTL,
		location:   location,
		now:        now,
	}
}

func (u *ServiceOrderUseCase) ListFull(ctx context.Context) ([]entities.ServiceOrderRow, error) {
	stored, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entities.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	sort.Slice(stored, func(i, j int) bool { return stored[i].Order.ID < stored[j].Order.ID })
	rows := make([]entities.ServiceOrderRow, 0, len(stored))
	for _, s := range stored {
		client, ok := byID[s.ClientID]
		if !ok {
			client = entities.Client{ID: s.ClientID, Name: s.Order.Client.Name, Email: s.Order.Client.Email, Phone: s.Order.Client.Phone}
		}
		rows = append(rows, entities.FlattenServiceOrder(s.Order, client)...)
	}
	return rows, nil
}

func (u *ServiceOrderUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

func (u *ServiceOrderUseCase) Start(ctx context.Context, id int64, requestID, startTime string) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	startTime, err := u.clockOrNow(startTime)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.claim(ctx, requestID, "start", id); err != nil {
		return entities.ServiceOrder{}, err
	}

	return u.transition(ctx, id, "start", []entities.OrderStatus{entities.StatusPending}, func(o *entities.ServiceOrder) {
		o.Status = entities.StatusInProgress
		o.StartTime = startTime
	})
}

// Complete finalizes an order in progress. Products, when given, are
// recorded as used in the same write.
func (u *ServiceOrderUseCase) Complete(ctx context.Context, id int64, requestID, endTime string, products []interfaces.UsedProduct) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	endTime, err := u.clockOrNow(endTime)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(products) > 0 {
		if err := u.checkProducts(ctx, id, products); err != nil {
			return entities.ServiceOrder{}, err
		}
	}
	if err := u.claim(ctx, requestID, "complete", id); err != nil {
		return entities.ServiceOrder{}, err
	}

	return u.transition(ctx, id, "complete", []entities.OrderStatus{entities.StatusInProgress}, func(o *entities.ServiceOrder) {
		o.Status = entities.StatusFinalized
		o.EndTime = endTime
		applyUsedProducts(o, products)
	})
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id int64, requestID, reason string) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	if err := u.claim(ctx, requestID, "cancel", id); err != nil {
		return entities.ServiceOrder{}, err
	}

	reason = strings.TrimSpace(reason)
	return u.transition(ctx, id, "cancel", []entities.OrderStatus{entities.StatusPending, entities.StatusInProgress}, func(o *entities.ServiceOrder) {
		o.Status = entities.StatusCancelled
		o.CancelReason = reason
	})
}

func (u *ServiceOrderUseCase) RecordUsedProducts(ctx context.Context, id int64, requestID string, products []interfaces.UsedProduct) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	if len(products) == 0 {
		return entities.ServiceOrder{}, ErrEmptyProducts
	}
	if err := u.checkProducts(ctx, id, products); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.claim(ctx, requestID, "products", id); err != nil {
		return entities.ServiceOrder{}, err
	}

	return u.transition(ctx, id, "record products for", []entities.OrderStatus{entities.StatusFinalized}, func(o *entities.ServiceOrder) {
		applyUsedProducts(o, products)
	})
}

func (u *ServiceOrderUseCase) Sign(ctx context.Context, id int64, requestID, files string) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	files = strings.TrimSpace(files)
	if files == "" {
		return entities.ServiceOrder{}, ErrEmptySignature
	}
	if err := u.claim(ctx, requestID, "sign", id); err != nil {
		return entities.ServiceOrder{}, err
	}

	return u.transition(ctx, id, "sign", []entities.OrderStatus{entities.StatusFinalized}, func(o *entities.ServiceOrder) {
		o.Signature = files
	})
}

// transition runs a conditional update and, when nothing was written, tells
// a missing order apart from one in the wrong state.
func (u *ServiceOrderUseCase) transition(ctx context.Context, id int64, action string, from []entities.OrderStatus, mutate func(*entities.ServiceOrder)) (entities.ServiceOrder, error) {
	updated, err := u.orders.UpdateIfStatus(ctx, id, from, mutate)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID != 0 {
		logger.Info(ctx, "service order updated", "order_id", id, "action", action, "state", updated.Status)
		return updated, nil
	}

	current, _, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.ID == 0 {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return entities.ServiceOrder{}, &StateConflictError{OrderID: id, Action: action, Status: current.Status}
}

// claim records a client request id. A blank id skips the check.
func (u *ServiceOrderUseCase) claim(ctx context.Context, requestID, operation string, id int64) error {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" || u.ledger == nil {
		return nil
	}
	ok, err := u.ledger.Claim(ctx, requestID, fmt.Sprintf("%s:%d", operation, id), u.requestTTL)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn(ctx, "duplicate request rejected", "order_id", id, "operation", operation, "client_request_id", requestID)
		return ErrDuplicateRequest
	}
	return nil
}

func (u *ServiceOrderUseCase) checkProducts(ctx context.Context, id int64, products []interfaces.UsedProduct) error {
	current, _, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == 0 {
		return ErrServiceOrderNotFound
	}
	for _, p := range products {
		if p.QuantityUsed < 0 {
			return fmt.Errorf("%w: product %d", ErrInvalidQuantity, p.ProductID)
		}
		if _, ok := current.Product(p.ProductID); !ok {
			return fmt.Errorf("%w: product %d", ErrUnknownProduct, p.ProductID)
		}
	}
	return nil
}

func applyUsedProducts(o *entities.ServiceOrder, products []interfaces.UsedProduct) {
	for _, used := range products {
		for i := range o.Products {
			if o.Products[i].ID == used.ProductID {
				o.Products[i].QuantityUsed = used.QuantityUsed
			}
		}
	}
}

func (u *ServiceOrderUseCase) clockOrNow(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return u.now().In(u.location).Format(ClockLayout), nil
	}
	t, ok := parseClock(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockTime, raw)
	}
	return t.Format(ClockLayout), nil
}

// SeedDemo loads a small fixture set when the order table is empty and
// reports how many orders it wrote.
func (u *ServiceOrderUseCase) SeedDemo(ctx context.Context) (int, error) {
	existing, err := u.orders.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	clients := []entities.Client{
		{ID: 1, Name: "Ferretería El Clavo", Email: "compras@elclavo.mx", Phone: "5512345678", Street: "Av. Juárez", Number: "120", Neighborhood: "Centro", City: "Ciudad de México", State: "CDMX", Country: "México"},
		{ID: 2, Name: "Clínica San Rafael", Email: "mantenimiento@sanrafael.mx", Phone: "3398765432", Street: "Calle Hidalgo", Number: "45", Neighborhood: "Americana", City: "Guadalajara", State: "Jalisco", Country: "México"},
	}
	for _, c := range clients {
		if err := u.clients.Put(ctx, c); err != nil {
			return 0, err
		}
	}

	today := u.now().In(u.location).Format(time.DateOnly)
	orders := []interfaces.StoredServiceOrder{
		{ClientID: 1, Order: entities.ServiceOrder{
			ID: 42, ServiceName: "Instalación de cámaras", ServiceDescription: "Instalar 4 cámaras IP en el perímetro",
			ScheduledDate: today, Status: entities.StatusPending, Activities: "Revisar cableado existente",
			Products: []entities.Product{
				{ID: 7, Name: "Cámara IP 4MP", Model: "DS-2CD2143", Brand: "Hikvision", UnitPrice: decimal.RequireFromString("1899.00"), Quantity: 4, QuantityUsed: 4},
				{ID: 9, Name: "Cable UTP Cat6 (m)", Brand: "Belden", UnitPrice: decimal.RequireFromString("12.50"), Quantity: 60, QuantityUsed: 60},
			},
		}},
		{ClientID: 2, Order: entities.ServiceOrder{
			ID: 43, ServiceName: "Mantenimiento de red", ServiceDescription: "Revisión de switches y rack",
			ScheduledDate: today, Status: entities.StatusPending,
		}},
	}
	for _, s := range orders {
		s.Order.Client = entities.ClientInfo{Name: clients[s.ClientID-1].Name, Address: clients[s.ClientID-1].Address(), Email: clients[s.ClientID-1].Email, Phone: clients[s.ClientID-1].Phone}
		if err := u.orders.Put(ctx, s.Order, s.ClientID); err != nil {
			return 0, err
		}
	}

	logger.Info(ctx, "demo data seeded", "orders", len(orders), "clients", len(clients))
	return len(orders), nil
}
