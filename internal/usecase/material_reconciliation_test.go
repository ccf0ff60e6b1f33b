package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	mock_interfaces "fieldtech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderCoordinator_ChooseMaterialUsage(t *testing.T) {
	t.Run("not finalized", func(t *testing.T) {
		c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, inProgressOrder(1, "09:00:00"))
		if _, err := c.ChooseMaterialUsage(1, entities.MaterialUsageFull); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("missing usage", func(t *testing.T) {
		c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1))
		if _, err := c.ChooseMaterialUsage(1, entities.MaterialUsageNone); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("full usage goes to sign off", func(t *testing.T) {
		c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1))
		if _, err := c.ChooseMaterialUsage(1, entities.MaterialUsageFull); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wf := c.Workflow(); wf.Step != StepSignOff || wf.OrderID != 1 {
			t.Fatalf("expected sign off step, got %+v", wf)
		}
		if o, _ := c.Order(1); o.MaterialUsage != entities.MaterialUsageFull {
			t.Fatalf("expected usage recorded, got %q", o.MaterialUsage)
		}
	})

	t.Run("partial usage opens a prefilled draft", func(t *testing.T) {
		c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1))
		draft, err := c.ChooseMaterialUsage(1, entities.MaterialUsagePartial)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[int64]int{7: 4, 9: 60}
		if !reflect.DeepEqual(draft.Quantities, want) {
			t.Fatalf("expected %v, got %v", want, draft.Quantities)
		}
		if wf := c.Workflow(); wf.Step != StepMaterials {
			t.Fatalf("expected materials step, got %+v", wf)
		}
	})
}

func TestOrderCoordinator_SetMaterialQuantity(t *testing.T) {
	c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1))

	if _, err := c.SetMaterialQuantity(1, 7, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := c.SetMaterialQuantity(1, 99, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	draft, err := c.SetMaterialQuantity(1, 7, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Quantities[7] != 2 || draft.Quantities[9] != 60 {
		t.Fatalf("unexpected draft: %v", draft.Quantities)
	}

	draft.Quantities[7] = 100
	if got, _ := c.MaterialDraft(1); got.Quantities[7] != 2 {
		t.Fatalf("returned draft must be a copy")
	}
}

func TestOrderCoordinator_SubmitMaterials(t *testing.T) {
	t.Run("empty batch is rejected without a network call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIOrderGateway(ctrl)
		o := finalizedOrder(1)
		o.Products = nil
		c, notes := newCoordinator(gw, &testClock{t: at("10:00:00")}, 300, o, finalizedOrder(2))

		if _, err := c.SubmitMaterials(context.Background(), 1, nil); !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch for nil draft, got %v", err)
		}
		if _, err := c.SubmitMaterials(context.Background(), 2, map[int64]int{}); !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch for empty map, got %v", err)
		}
		if got := lastNotification(t, notes); got.Level != entities.NotificationWarning {
			t.Fatalf("expected warning, got %+v", got)
		}
	})

	t.Run("not finalized", func(t *testing.T) {
		c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, inProgressOrder(1, "09:00:00"))
		if _, err := c.SubmitMaterials(context.Background(), 1, map[int64]int{7: 1}); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1))
		if _, err := c.SubmitMaterials(context.Background(), 1, map[int64]int{123: 1}); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("draft submitted as one ordered batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIOrderGateway(ctrl)
		c, _ := newCoordinator(gw, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1))

		if _, err := c.ChooseMaterialUsage(1, entities.MaterialUsageExcess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := c.SetMaterialQuantity(1, 9, 75); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []interfaces.UsedProduct{{ProductID: 7, QuantityUsed: 4}, {ProductID: 9, QuantityUsed: 75}}
		gw.EXPECT().SubmitUsedProducts(gomock.Any(), int64(1), gomock.Not(""), want).Return(nil).Times(1)

		got, err := c.SubmitMaterials(context.Background(), 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, _ := got.Product(9)
		if p.QuantityUsed != 75 || p.Quantity != 60 {
			t.Fatalf("expected used quantity overwritten only, got %+v", p)
		}
		if wf := c.Workflow(); wf.Step != StepSignOff {
			t.Fatalf("expected sign off step, got %+v", wf)
		}
		if d, _ := c.MaterialDraft(1); len(d.Quantities) != 0 {
			t.Fatalf("expected draft dropped, got %v", d.Quantities)
		}
	})

	t.Run("failure keeps draft and step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIOrderGateway(ctrl)
		c, notes := newCoordinator(gw, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1))

		if _, err := c.ChooseMaterialUsage(1, entities.MaterialUsagePartial); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		gw.EXPECT().SubmitUsedProducts(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			Return(&interfaces.GatewayError{StatusCode: 400, Message: "Producto inválido"})

		if _, err := c.SubmitMaterials(context.Background(), 1, nil); !errors.Is(err, ErrOperationFailed) {
			t.Fatalf("expected ErrOperationFailed, got %v", err)
		}
		if d, _ := c.MaterialDraft(1); len(d.Quantities) != 2 {
			t.Fatalf("expected draft kept, got %v", d.Quantities)
		}
		if wf := c.Workflow(); wf.Step != StepMaterials {
			t.Fatalf("expected to stay on materials step, got %+v", wf)
		}
		if o, _ := c.Order(1); o.Products[0].QuantityUsed != 4 {
			t.Fatalf("no partial submission expected: %+v", o.Products)
		}
		if got := lastNotification(t, notes); got.Message != "Producto inválido" {
			t.Fatalf("unexpected notification: %+v", got)
		}
	})
}

func TestOrderCoordinator_SetRating(t *testing.T) {
	c, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, finalizedOrder(1), pendingOrder(2))

	for _, stars := range []int{0, 6} {
		if _, err := c.SetRating(1, stars); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("stars %d: expected ErrInvalidInput, got %v", stars, err)
		}
	}
	if _, err := c.SetRating(2, 3); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	got, err := c.SetRating(1, 5)
	if err != nil || got.Rating != 5 {
		t.Fatalf("unexpected result %+v, %v", got, err)
	}
}
