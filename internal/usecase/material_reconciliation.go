package usecase

import (
	"context"
	"fmt"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"

	"github.com/google/uuid"
)

// ChooseMaterialUsage records whether the assigned material was used in
// full. Full usage skips straight to sign-off; otherwise a draft pre-filled
// with the assigned quantities is opened.
func (c *OrderCoordinator) ChooseMaterialUsage(id int64, usage entities.MaterialUsage) (MaterialDraft, error) {
	if usage == entities.MaterialUsageNone {
		return MaterialDraft{}, c.report(fmt.Errorf("%w: material usage is required", ErrInvalidInput))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	o, err := c.finalizedLocked(id, "reconcile materials for")
	if err != nil {
		return MaterialDraft{}, c.report(err)
	}
	for i := range c.orders {
		if c.orders[i].ID == id {
			c.orders[i].MaterialUsage = usage
		}
	}

	if !usage.NeedsQuantities() {
		delete(c.drafts, id)
		c.workflow = Workflow{OrderID: id, Step: StepSignOff, Open: true}
		return MaterialDraft{OrderID: id, Usage: usage, Quantities: map[int64]int{}}, nil
	}

	draft := MaterialDraft{OrderID: id, Usage: usage, Quantities: make(map[int64]int, len(o.Products))}
	for _, p := range o.Products {
		draft.Quantities[p.ID] = p.Quantity
	}
	c.drafts[id] = draft
	c.workflow = Workflow{OrderID: id, Step: StepMaterials, Open: true}
	return copyDraft(draft), nil
}

func (c *OrderCoordinator) MaterialDraft(id int64) (MaterialDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.findLocked(id); !ok {
		return MaterialDraft{}, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	draft, ok := c.drafts[id]
	if !ok {
		return MaterialDraft{OrderID: id, Quantities: map[int64]int{}}, nil
	}
	return copyDraft(draft), nil
}

func (c *OrderCoordinator) SetMaterialQuantity(id, productID int64, quantity int) (MaterialDraft, error) {
	if quantity < 0 {
		return MaterialDraft{}, c.report(fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	o, err := c.finalizedLocked(id, "reconcile materials for")
	if err != nil {
		return MaterialDraft{}, c.report(err)
	}
	if _, ok := o.Product(productID); !ok {
		return MaterialDraft{}, c.report(fmt.Errorf("%w: product %d on order %d", ErrProductNotFound, productID, id))
	}

	draft, ok := c.drafts[id]
	if !ok {
		draft = MaterialDraft{OrderID: id, Usage: o.MaterialUsage, Quantities: make(map[int64]int, len(o.Products))}
		for _, p := range o.Products {
			draft.Quantities[p.ID] = p.Quantity
		}
	}
	draft.Quantities[productID] = quantity
	c.drafts[id] = draft
	return copyDraft(draft), nil
}

// SubmitMaterials sends the used quantities in one batch. A nil map submits
// the current draft.
func (c *OrderCoordinator) SubmitMaterials(ctx context.Context, id int64, quantities map[int64]int) (entities.ServiceOrder, error) {
	c.mu.Lock()
	o, err := c.finalizedLocked(id, "submit materials for")
	if err != nil {
		c.mu.Unlock()
		return entities.ServiceOrder{}, c.report(err)
	}
	if quantities == nil {
		quantities = copyDraft(c.drafts[id]).Quantities
	}
	c.mu.Unlock()

	if len(quantities) == 0 {
		return entities.ServiceOrder{}, c.report(fmt.Errorf("%w: order %d", ErrEmptyBatch, id))
	}

	ids := sortedProductIDs(quantities)
	batch := make([]interfaces.UsedProduct, 0, len(ids))
	for _, pid := range ids {
		qty := quantities[pid]
		if qty < 0 {
			return entities.ServiceOrder{}, c.report(fmt.Errorf("%w: quantity for product %d must not be negative", ErrInvalidInput, pid))
		}
		if _, ok := o.Product(pid); !ok {
			return entities.ServiceOrder{}, c.report(fmt.Errorf("%w: product %d on order %d", ErrProductNotFound, pid, id))
		}
		batch = append(batch, interfaces.UsedProduct{ProductID: pid, QuantityUsed: qty})
	}

	release, err := c.acquire("materials", id)
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}
	defer release()

	requestID := uuid.NewString()
	if err := c.gateway.SubmitUsedProducts(ctx, id, requestID, batch); err != nil {
		logger.Error(ctx, "submit used products failed", "order_id", id, "client_request_id", requestID, "error", err)
		return entities.ServiceOrder{}, c.report(operationFailed("submit materials", "could not save the material used", err))
	}

	updated, err := c.apply(id, func(o *entities.ServiceOrder) {
		for i := range o.Products {
			if qty, ok := quantities[o.Products[i].ID]; ok {
				o.Products[i].QuantityUsed = qty
			}
		}
	})
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}

	c.mu.Lock()
	delete(c.drafts, id)
	c.workflow = Workflow{OrderID: id, Step: StepSignOff, Open: true}
	c.mu.Unlock()

	logger.Info(ctx, "used products submitted", "order_id", id, "products", len(batch))
	c.notifier.Push(entities.NotificationSuccess, "Material usage saved")
	return updated, nil
}

// SetRating stores the technician's 1 to 5 star rating. It stays local.
func (c *OrderCoordinator) SetRating(id int64, stars int) (entities.ServiceOrder, error) {
	if stars < 1 || stars > 5 {
		return entities.ServiceOrder{}, c.report(fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput))
	}

	c.mu.Lock()
	_, err := c.finalizedLocked(id, "rate")
	c.mu.Unlock()
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}

	updated, err := c.apply(id, func(o *entities.ServiceOrder) {
		o.Rating = stars
	})
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}
	return updated, nil
}

func (c *OrderCoordinator) finalizedLocked(id int64, action string) (entities.ServiceOrder, error) {
	o, ok := c.findLocked(id)
	if !ok {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	if o.Status != entities.StatusFinalized {
		return entities.ServiceOrder{}, &InvalidTransitionError{OrderID: id, Action: action, Status: o.Status, Reason: "order is not finalized"}
	}
	return o, nil
}

func copyDraft(d MaterialDraft) MaterialDraft {
	cp := d
	cp.Quantities = make(map[int64]int, len(d.Quantities))
	for k, v := range d.Quantities {
		cp.Quantities[k] = v
	}
	return cp
}
