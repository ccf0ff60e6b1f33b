package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"

	"github.com/google/uuid"
)

const (
	ClockLayout                   = "15:04:05"
	DefaultMinimumDurationSeconds = 300

	maxClockSkew = 12 * time.Hour
)

type WorkflowStep string

const (
	StepDetails   WorkflowStep = "details"
	StepMaterials WorkflowStep = "materials"
	StepSignOff   WorkflowStep = "sign_off"
)

// Workflow is the order modal: which order it shows and on which step.
type Workflow struct {
	OrderID int64        `json:"order_id"`
	Step    WorkflowStep `json:"step"`
	Open    bool         `json:"open"`
}

// OrderFilter narrows Orders. A zero Status means every status.
type OrderFilter struct {
	Status entities.OrderStatus
	Query  string
}

// MaterialDraft is the per-product quantity form of the reconciliation step.
type MaterialDraft struct {
	OrderID    int64                  `json:"order_id"`
	Usage      entities.MaterialUsage `json:"usage"`
	Quantities map[int64]int          `json:"quantities"`
}

// IOrderLifecycleUseCase drives an order through start, complete and cancel
// and owns the order list the technician works on.
type IOrderLifecycleUseCase interface {
	Load(ctx context.Context) ([]entities.ServiceOrder, error)
	Orders(filter OrderFilter) []entities.ServiceOrder
	Order(id int64) (entities.ServiceOrder, error)
	Open(id int64) (Workflow, error)
	CloseWorkflow() Workflow
	Workflow() Workflow
	Start(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Complete(ctx context.Context, id int64, endTime string) (entities.ServiceOrder, error)
	RequestCancel(id int64) (string, error)
	ConfirmCancel(ctx context.Context, id int64, token, reason string) (entities.ServiceOrder, error)
	AbortCancel(id int64) error
}

// IMaterialReconciliationUseCase collects the material actually used on a
// finalized order.
type IMaterialReconciliationUseCase interface {
	ChooseMaterialUsage(id int64, usage entities.MaterialUsage) (MaterialDraft, error)
	MaterialDraft(id int64) (MaterialDraft, error)
	SetMaterialQuantity(id, productID int64, quantity int) (MaterialDraft, error)
	SubmitMaterials(ctx context.Context, id int64, quantities map[int64]int) (entities.ServiceOrder, error)
	SetRating(id int64, stars int) (entities.ServiceOrder, error)
}

// ISignatureCaptureUseCase attaches the client's signature to a finalized order.
type ISignatureCaptureUseCase interface {
	DraftSignature(id int64, payload string) error
	ClearSignature(id int64) error
	SubmitSignature(ctx context.Context, id int64, payload string) (entities.ServiceOrder, error)
}

type CoordinatorConfig struct {
	// MinimumDurationSeconds is how long an order must run before it can be
	// completed. Zero disables the check.
	MinimumDurationSeconds int
	// Location is the technician's time zone; start and end times are wall
	// clock values in it.
	Location *time.Location
}

// OrderCoordinator holds the technician's view of their orders. Every
// mutation goes through it and callers only ever receive copies.
type OrderCoordinator struct {
	gateway  interfaces.IOrderGateway
	notifier INotificationCenter
	cfg      CoordinatorConfig
	now      func() time.Time

	mu        sync.Mutex
	orders    []entities.ServiceOrder
	workflow  Workflow
	drafts    map[int64]MaterialDraft
	sigDrafts map[int64]string
	cancels   map[int64]string
	inFlight  map[string]struct{}
}

var (
	_ IOrderLifecycleUseCase         = (*OrderCoordinator)(nil)
	_ IMaterialReconciliationUseCase = (*OrderCoordinator)(nil)
	_ ISignatureCaptureUseCase       = (*OrderCoordinator)(nil)
)

func NewOrderCoordinator(gateway interfaces.IOrderGateway, notifier INotificationCenter, cfg CoordinatorConfig, now func() time.Time) *OrderCoordinator {
	if cfg.MinimumDurationSeconds < 0 {
		cfg.MinimumDurationSeconds = 0
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	if notifier == nil {
		notifier = NewNotificationCenter(0, now)
	}
	return &OrderCoordinator{
		gateway:   gateway,
		notifier:  notifier,
		cfg:       cfg,
		now:       now,
		drafts:    make(map[int64]MaterialDraft),
		sigDrafts: make(map[int64]string),
		cancels:   make(map[int64]string),
		inFlight:  make(map[string]struct{}),
	}
}

func (c *OrderCoordinator) Load(ctx context.Context) ([]entities.ServiceOrder, error) {
	release, err := c.acquire("load", 0)
	if err != nil {
		return nil, c.report(err)
	}
	defer release()

	rows, err := c.gateway.ListFullOrders(ctx)
	if err != nil {
		return nil, c.report(operationFailed("load orders", "could not load service orders", err))
	}
	fresh := entities.GroupServiceOrderRows(rows)

	c.mu.Lock()
	previous := make(map[int64]entities.ServiceOrder, len(c.orders))
	for _, o := range c.orders {
		previous[o.ID] = o
	}
	for i := range fresh {
		if old, ok := previous[fresh[i].ID]; ok {
			fresh[i].MaterialUsage = old.MaterialUsage
			fresh[i].Rating = old.Rating
			if fresh[i].Signature == "" {
				fresh[i].Signature = old.Signature
			}
		}
		if err := fresh[i].Validate(); err != nil {
			logger.Warn(ctx, "gateway returned inconsistent order", "order_id", fresh[i].ID, "error", err)
		}
	}
	c.orders = fresh
	if c.workflow.Open {
		if _, ok := c.findLocked(c.workflow.OrderID); !ok {
			c.workflow = Workflow{}
		}
	}
	out := cloneOrders(c.orders)
	c.mu.Unlock()

	logger.Info(ctx, "service orders loaded", "count", len(out))
	return out, nil
}

func (c *OrderCoordinator) Orders(filter OrderFilter) []entities.ServiceOrder {
	c.mu.Lock()
	defer c.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]entities.ServiceOrder, 0, len(c.orders))
	for _, o := range c.orders {
		if filter.Status != entities.StatusUnknown && o.Status != filter.Status {
			continue
		}
		if q != "" && !matchesQuery(o, q) {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

func matchesQuery(o entities.ServiceOrder, q string) bool {
	for _, field := range []string{o.Client.Name, o.ServiceName, o.Client.Address} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (c *OrderCoordinator) Order(id int64) (entities.ServiceOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.findLocked(id)
	if !ok {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	return o.Clone(), nil
}

func (c *OrderCoordinator) Open(id int64) (Workflow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.findLocked(id); !ok {
		return Workflow{}, c.report(fmt.Errorf("%w: %d", ErrOrderNotFound, id))
	}
	c.workflow = Workflow{OrderID: id, Step: StepDetails, Open: true}
	return c.workflow, nil
}

func (c *OrderCoordinator) CloseWorkflow() Workflow {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.workflow.Open = false
	return c.workflow
}

func (c *OrderCoordinator) Workflow() Workflow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.workflow
}

func (c *OrderCoordinator) Start(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	_, release, err := c.begin("start", id, startable)
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}
	defer release()

	req := interfaces.StartOrderRequest{
		RequestID: uuid.NewString(),
		StartTime: c.now().In(c.cfg.Location).Format(ClockLayout),
	}
	res, err := c.gateway.StartOrder(ctx, id, req)
	if err != nil {
		logger.Error(ctx, "start order failed", "order_id", id, "client_request_id", req.RequestID, "error", err)
		return entities.ServiceOrder{}, c.report(operationFailed("start", "could not start the order, check that it is still pending", err))
	}

	status, err := adoptStatus(res.Status, entities.StatusInProgress)
	if err != nil {
		return entities.ServiceOrder{}, c.report(operationFailed("start", "gateway reported an unknown order status", err))
	}
	startTime := res.StartTime
	if startTime == "" {
		startTime = req.StartTime
	}

	updated, err := c.apply(id, func(o *entities.ServiceOrder) {
		o.Status = status
		o.StartTime = startTime
	})
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}

	logger.Info(ctx, "order started", "order_id", id, "status", status, "start_time", startTime)
	c.notifier.Push(entities.NotificationSuccess, "Order started")
	return updated, nil
}

func (c *OrderCoordinator) Complete(ctx context.Context, id int64, endTime string) (entities.ServiceOrder, error) {
	order, release, err := c.begin("complete", id, completable)
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}
	defer release()

	now := c.now().In(c.cfg.Location)
	if minimum := time.Duration(c.cfg.MinimumDurationSeconds) * time.Second; minimum > 0 {
		elapsed, ok := c.elapsedSince(order.StartTime, now)
		switch {
		case !ok:
			logger.Warn(ctx, "cannot parse start time, skipping minimum duration check", "order_id", id, "start_time", order.StartTime)
		case elapsed < minimum:
			return entities.ServiceOrder{}, c.report(&TooEarlyError{OrderID: id, Elapsed: elapsed, Minimum: minimum})
		}
	}

	endTime = strings.TrimSpace(endTime)
	if endTime == "" {
		endTime = now.Format(ClockLayout)
	} else if _, ok := parseClock(endTime); !ok {
		return entities.ServiceOrder{}, c.report(fmt.Errorf("%w: end time %q is not HH:mm:ss", ErrInvalidInput, endTime))
	}

	req := interfaces.CompleteOrderRequest{RequestID: uuid.NewString(), EndTime: endTime}
	res, err := c.gateway.CompleteOrder(ctx, id, req)
	if err != nil {
		logger.Error(ctx, "complete order failed", "order_id", id, "client_request_id", req.RequestID, "error", err)
		return entities.ServiceOrder{}, c.report(operationFailed("complete", "could not record the end time", err))
	}

	status, err := adoptStatus(res.Status, entities.StatusFinalized)
	if err != nil {
		return entities.ServiceOrder{}, c.report(operationFailed("complete", "gateway reported an unknown order status", err))
	}
	if res.EndTime != "" {
		endTime = res.EndTime
	}

	updated, err := c.apply(id, func(o *entities.ServiceOrder) {
		o.Status = status
		o.EndTime = endTime
		if res.StartTime != "" {
			o.StartTime = res.StartTime
		}
	})
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}

	c.mu.Lock()
	c.workflow = Workflow{OrderID: id, Step: StepMaterials, Open: true}
	c.mu.Unlock()

	logger.Info(ctx, "order completed", "order_id", id, "status", status, "end_time", endTime)
	c.notifier.Push(entities.NotificationSuccess, "Order completed")
	return updated, nil
}

// RequestCancel opens the confirmation for cancelling an order and returns
// the token ConfirmCancel expects.
func (c *OrderCoordinator) RequestCancel(id int64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, ok := c.findLocked(id)
	if !ok {
		return "", c.report(fmt.Errorf("%w: %d", ErrOrderNotFound, id))
	}
	if err := cancellable(o); err != nil {
		delete(c.cancels, id)
		return "", c.report(err)
	}
	token := uuid.NewString()
	c.cancels[id] = token
	return token, nil
}

func (c *OrderCoordinator) AbortCancel(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.findLocked(id); !ok {
		return c.report(fmt.Errorf("%w: %d", ErrOrderNotFound, id))
	}
	delete(c.cancels, id)
	return nil
}

func (c *OrderCoordinator) ConfirmCancel(ctx context.Context, id int64, token, reason string) (entities.ServiceOrder, error) {
	_, release, err := c.begin("cancel", id, func(o entities.ServiceOrder) error {
		if err := cancellable(o); err != nil {
			delete(c.cancels, id)
			return err
		}
		if want, ok := c.cancels[id]; !ok || token == "" || want != token {
			return fmt.Errorf("%w: order %d", ErrCancelNotConfirmed, id)
		}
		return nil
	})
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}
	defer release()

	req := interfaces.CancelOrderRequest{RequestID: uuid.NewString(), Reason: strings.TrimSpace(reason)}
	res, err := c.gateway.CancelOrder(ctx, id, req)
	if err != nil {
		logger.Error(ctx, "cancel order failed", "order_id", id, "client_request_id", req.RequestID, "error", err)
		return entities.ServiceOrder{}, c.report(operationFailed("cancel", "could not cancel the order", err))
	}
	status, err := adoptStatus(res.Status, entities.StatusCancelled)
	if err != nil {
		return entities.ServiceOrder{}, c.report(operationFailed("cancel", "gateway reported an unknown order status", err))
	}

	updated, err := c.apply(id, func(o *entities.ServiceOrder) {
		o.Status = status
	})
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}

	c.mu.Lock()
	delete(c.cancels, id)
	delete(c.drafts, id)
	delete(c.sigDrafts, id)
	if c.workflow.OrderID == id {
		c.workflow.Open = false
	}
	c.mu.Unlock()

	logger.Info(ctx, "order cancelled", "order_id", id, "status", status)
	c.notifier.Push(entities.NotificationSuccess, "Order cancelled")
	return updated, nil
}

func startable(o entities.ServiceOrder) error {
	if o.Status != entities.StatusPending {
		return &InvalidTransitionError{OrderID: o.ID, Action: "start", Status: o.Status, Reason: "only pending orders can be started"}
	}
	if o.StartTime != "" {
		return &InvalidTransitionError{OrderID: o.ID, Action: "start", Status: o.Status, Reason: "order already has a start time"}
	}
	return nil
}

func completable(o entities.ServiceOrder) error {
	if o.Status != entities.StatusInProgress {
		return &InvalidTransitionError{OrderID: o.ID, Action: "complete", Status: o.Status, Reason: "only orders in progress can be completed"}
	}
	if o.StartTime == "" {
		return &InvalidTransitionError{OrderID: o.ID, Action: "complete", Status: o.Status, Reason: "order has no start time"}
	}
	return nil
}

func cancellable(o entities.ServiceOrder) error {
	if o.Status == entities.StatusPending || o.Status == entities.StatusInProgress {
		return nil
	}
	return &InvalidTransitionError{OrderID: o.ID, Action: "cancel", Status: o.Status, Reason: "order is already closed"}
}

// adoptStatus normalizes the status a gateway response reports. An absent
// status falls back to the expected one; an unrecognized one is an error.
func adoptStatus(raw string, fallback entities.OrderStatus) (entities.OrderStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return entities.ParseOrderStatus(raw)
}

// elapsedSince measures from today's occurrence of a HH:mm:ss start time.
// A start more than half a day ahead of now is taken as yesterday's; a
// smaller lead is clock skew and counts as no time elapsed.
func (c *OrderCoordinator) elapsedSince(startTime string, now time.Time) (time.Duration, bool) {
	clock, ok := parseClock(startTime)
	if !ok {
		return 0, false
	}
	started := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location())
	if lead := started.Sub(now); lead > maxClockSkew {
		started = started.AddDate(0, 0, -1)
	} else if lead > 0 {
		return 0, true
	}
	return now.Sub(started), true
}

func parseClock(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	// The gateway may hand back a full timestamp; only the clock matters.
	if i := strings.LastIndexAny(raw, "T "); i >= 0 {
		raw = raw[i+1:]
	}
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// acquire marks action as running for an order. The returned func must be
// called when the action ends, whatever its outcome.
func (c *OrderCoordinator) acquire(action string, id int64) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquireLocked(action, id)
}

// begin checks the cached order and marks action as running under one lock,
// so a transition that finished just before is always seen.
func (c *OrderCoordinator) begin(action string, id int64, check func(entities.ServiceOrder) error) (entities.ServiceOrder, func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, ok := c.findLocked(id)
	if !ok {
		return entities.ServiceOrder{}, nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	if err := check(o); err != nil {
		return entities.ServiceOrder{}, nil, err
	}
	release, err := c.acquireLocked(action, id)
	if err != nil {
		return entities.ServiceOrder{}, nil, err
	}
	return o.Clone(), release, nil
}

func (c *OrderCoordinator) acquireLocked(action string, id int64) (func(), error) {
	key := fmt.Sprintf("%s:%d", action, id)
	if _, busy := c.inFlight[key]; busy {
		return nil, fmt.Errorf("%w: %s order %d", ErrOperationInFlight, action, id)
	}
	c.inFlight[key] = struct{}{}
	return func() {
		c.mu.Lock()
		delete(c.inFlight, key)
		c.mu.Unlock()
	}, nil
}

// apply mutates the cached order in place and returns a copy of the result.
// The last response to arrive wins.
func (c *OrderCoordinator) apply(id int64, mutate func(*entities.ServiceOrder)) (entities.ServiceOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			mutate(&c.orders[i])
			return c.orders[i].Clone(), nil
		}
	}
	return entities.ServiceOrder{}, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
}

func (c *OrderCoordinator) findLocked(id int64) (entities.ServiceOrder, bool) {
	for _, o := range c.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entities.ServiceOrder{}, false
}

// report turns err into a notification for the technician and returns it.
// Rejections by local checks are warnings; everything else is an error.
func (c *OrderCoordinator) report(err error) error {
	level := entities.NotificationError
	switch {
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrTooEarly),
		errors.Is(err, ErrEmptyBatch),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrOperationInFlight),
		errors.Is(err, ErrCancelNotConfirmed):
		level = entities.NotificationWarning
	}
	c.notifier.Push(level, notificationMessage(err))
	return err
}

func notificationMessage(err error) string {
	var tooEarly *TooEarlyError
	var failed *OperationFailedError
	switch {
	case errors.As(err, &tooEarly):
		return fmt.Sprintf("Wait at least %d minutes before completing the order (%d elapsed)", tooEarly.MinimumMinutes(), tooEarly.ElapsedMinutes())
	case errors.As(err, &failed):
		return failed.Message
	}
	return err.Error()
}

func cloneOrders(in []entities.ServiceOrder) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}

func sortedProductIDs(quantities map[int64]int) []int64 {
	ids := make([]int64, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
