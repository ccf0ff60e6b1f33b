package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldtech/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:            42,
		Client:        entities.ClientInfo{Name: "ACME", Address: "Av. Juárez 120, Centro", Email: "ops@acme.mx"},
		ServiceName:   "Instalación",
		ScheduledDate: "2026-03-10",
		Status:        entities.StatusPending,
		Products: []entities.Product{
			{ID: 7, Name: "Cámara", UnitPrice: decimal.RequireFromString("1899.00"), Quantity: 4, QuantityUsed: 4},
		},
	}
}

func TestServiceOrderDynamoRepository_PutAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "")

	if err := repo.Put(ctx, sampleOrder(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, clientID, err := repo.GetByID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clientID != 3 || got.ID != 42 || got.Status != entities.StatusPending || got.Client.Name != "ACME" {
		t.Fatalf("unexpected order %+v (client %d)", got, clientID)
	}
	if len(got.Products) != 1 || !got.Products[0].UnitPrice.Equal(decimal.RequireFromString("1899")) {
		t.Fatalf("unexpected products %+v", got.Products)
	}

	missing, _, err := repo.GetByID(ctx, 99)
	if err != nil || missing.ID != 0 {
		t.Fatalf("expected zero order, got %+v, %v", missing, err)
	}
}

func TestServiceOrderDynamoRepository_UpdateIfStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("applies mutation when state matches", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewServiceOrderDynamoRepository(fake, "")
		_ = repo.Put(ctx, sampleOrder(), 1)

		got, err := repo.UpdateIfStatus(ctx, 42, []entities.OrderStatus{entities.StatusPending}, func(o *entities.ServiceOrder) {
			o.Status = entities.StatusInProgress
			o.StartTime = "09:00:00"
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.StatusInProgress || got.StartTime != "09:00:00" {
			t.Fatalf("unexpected order %+v", got)
		}

		var stored serviceOrderItem
		_ = attributevalue.UnmarshalMap(fake.tables["service_orders"]["42"], &stored)
		if stored.Version != 2 || stored.State != "en_progreso" {
			t.Fatalf("unexpected stored item %+v", stored)
		}
	})

	t.Run("returns zero order when state does not match", func(t *testing.T) {
		repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "")
		_ = repo.Put(ctx, sampleOrder(), 1)

		called := false
		got, err := repo.UpdateIfStatus(ctx, 42, []entities.OrderStatus{entities.StatusInProgress}, func(o *entities.ServiceOrder) { called = true })
		if err != nil || got.ID != 0 || called {
			t.Fatalf("expected untouched zero order, got %+v, %v (called=%v)", got, err, called)
		}
	})

	t.Run("returns zero order when missing", func(t *testing.T) {
		repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "")
		got, err := repo.UpdateIfStatus(ctx, 1, []entities.OrderStatus{entities.StatusPending}, func(*entities.ServiceOrder) {})
		if err != nil || got.ID != 0 {
			t.Fatalf("expected zero order, got %+v, %v", got, err)
		}
	})

	t.Run("racing writer wins and loser sees new state", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewServiceOrderDynamoRepository(fake, "")
		_ = repo.Put(ctx, sampleOrder(), 1)

		raced := false
		fake.beforePut = func(in *dynamodb.PutItemInput) {
			if raced || in.ConditionExpression == nil {
				return
			}
			raced = true
			cancelled := toServiceOrderItem(sampleOrder(), 1)
			cancelled.State = string(entities.StatusCancelled)
			cancelled.Version = 2
			av, _ := attributevalue.MarshalMap(cancelled)
			fake.mu.Lock()
			fake.tables["service_orders"]["42"] = av
			fake.mu.Unlock()
		}

		got, err := repo.UpdateIfStatus(ctx, 42, []entities.OrderStatus{entities.StatusPending}, func(o *entities.ServiceOrder) {
			o.Status = entities.StatusInProgress
			o.StartTime = "09:00:00"
		})
		if err != nil || got.ID != 0 {
			t.Fatalf("expected zero order after losing race, got %+v, %v", got, err)
		}
		current, _, _ := repo.GetByID(ctx, 42)
		if current.Status != entities.StatusCancelled {
			t.Fatalf("expected winner's state to stay, got %s", current.Status)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewServiceOrderDynamoRepository(fake, "")
		_ = repo.Put(ctx, sampleOrder(), 1)

		version := int64(1)
		fake.beforePut = func(in *dynamodb.PutItemInput) {
			if in.ConditionExpression == nil {
				return
			}
			version++
			bumped := toServiceOrderItem(sampleOrder(), 1)
			bumped.Version = version
			av, _ := attributevalue.MarshalMap(bumped)
			fake.mu.Lock()
			fake.tables["service_orders"]["42"] = av
			fake.mu.Unlock()
		}

		_, err := repo.UpdateIfStatus(ctx, 42, []entities.OrderStatus{entities.StatusPending}, func(*entities.ServiceOrder) {})
		if !errors.Is(err, ErrWriteConflict) {
			t.Fatalf("expected ErrWriteConflict, got %v", err)
		}
	})
}

func TestServiceOrderDynamoRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "orders")
	_ = repo.Put(ctx, sampleOrder(), 1)
	second := sampleOrder()
	second.ID = 43
	second.Products = nil
	_ = repo.Put(ctx, second, 2)

	stored, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(stored))
	}
	clients := map[int64]int64{}
	for _, s := range stored {
		clients[s.Order.ID] = s.ClientID
	}
	if clients[42] != 1 || clients[43] != 2 {
		t.Fatalf("unexpected client ids %v", clients)
	}
}

func TestFromServiceOrderItem_UnknownStateFallsBackToPending(t *testing.T) {
	got := fromServiceOrderItem(serviceOrderItem{ID: 1, State: "archivado"})
	if got.Status != entities.StatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
}

func TestRequestLedgerDynamoRepository_Claim(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewRequestLedgerDynamoRepository(fake, "")
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	ok, err := repo.Claim(ctx, "req-1", "start:42", time.Hour)
	if err != nil || !ok {
		t.Fatalf("expected first claim to succeed, got %v, %v", ok, err)
	}
	ok, err = repo.Claim(ctx, "req-1", "start:42", time.Hour)
	if err != nil || ok {
		t.Fatalf("expected replay to be rejected, got %v, %v", ok, err)
	}

	now = now.Add(2 * time.Hour)
	ok, err = repo.Claim(ctx, "req-1", "start:42", time.Hour)
	if err != nil || !ok {
		t.Fatalf("expected expired id to be claimable, got %v, %v", ok, err)
	}
}

type failingDynamo struct {
	*fakeDynamo
	err error
}

func (f failingDynamo) PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return nil, f.err
}

func TestRequestLedgerDynamoRepository_Claim_Error(t *testing.T) {
	boom := &types.ProvisionedThroughputExceededException{}
	repo := NewRequestLedgerDynamoRepository(failingDynamo{fakeDynamo: newFakeDynamo(), err: boom}, "")

	ok, err := repo.Claim(context.Background(), "req-1", "sign:1", time.Hour)
	if ok || !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v, %v", ok, err)
	}
}
