package usecase

import (
	"context"
	"fmt"
	"strings"

	"fieldtech/internal/domain/entities"
	"fieldtech/pkg/logger"

	"github.com/google/uuid"
)

// DraftSignature keeps the canvas content for an order until it is submitted
// or cleared. Nothing is sent.
func (c *OrderCoordinator) DraftSignature(id int64, payload string) error {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return c.report(fmt.Errorf("%w: signature is empty", ErrInvalidInput))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.findLocked(id); !ok {
		return c.report(fmt.Errorf("%w: %d", ErrOrderNotFound, id))
	}
	c.sigDrafts[id] = payload
	return nil
}

func (c *OrderCoordinator) ClearSignature(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.findLocked(id); !ok {
		return c.report(fmt.Errorf("%w: %d", ErrOrderNotFound, id))
	}
	delete(c.sigDrafts, id)
	return nil
}

// SubmitSignature attaches payload, or the current draft when payload is
// empty, to a finalized order and closes the workflow. On failure the draft
// is kept so the technician can retry.
func (c *OrderCoordinator) SubmitSignature(ctx context.Context, id int64, payload string) (entities.ServiceOrder, error) {
	payload = strings.TrimSpace(payload)

	c.mu.Lock()
	_, err := c.finalizedLocked(id, "sign")
	if err == nil && payload == "" {
		payload = c.sigDrafts[id]
	}
	if err == nil {
		c.sigDrafts[id] = payload
	}
	c.mu.Unlock()
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}
	if payload == "" {
		return entities.ServiceOrder{}, c.report(fmt.Errorf("%w: signature is empty", ErrInvalidInput))
	}

	release, err := c.acquire("sign", id)
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}
	defer release()

	requestID := uuid.NewString()
	if err := c.gateway.SignOrder(ctx, id, requestID, payload); err != nil {
		logger.Error(ctx, "sign order failed", "order_id", id, "client_request_id", requestID, "error", err)
		return entities.ServiceOrder{}, c.report(operationFailed("sign", "could not save the signature", err))
	}

	updated, err := c.apply(id, func(o *entities.ServiceOrder) {
		o.Signature = payload
	})
	if err != nil {
		return entities.ServiceOrder{}, c.report(err)
	}

	c.mu.Lock()
	delete(c.sigDrafts, id)
	c.workflow = Workflow{}
	c.mu.Unlock()

	logger.Info(ctx, "order signed", "order_id", id)
	c.notifier.Push(entities.NotificationSuccess, "Signature saved")
	return updated, nil
}

// SignatureDraft returns the unsent canvas content for an order, if any.
func (c *OrderCoordinator) SignatureDraft(id int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sigDrafts[id]
	return s, ok
}
