package repository

import (
	"context"
	"testing"

	"fieldtech/internal/domain/entities"
)

func TestClientDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewClientDynamoRepository(newFakeDynamo(), "")

	c := entities.Client{ID: 1, Name: "Ferretería El Clavo", Street: "Av. Juárez", Number: "120", City: "Ciudad de México"}
	if err := repo.Put(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = repo.Put(ctx, entities.Client{ID: 2, Name: "Clínica San Rafael"})

	got, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != c {
		t.Fatalf("expected %+v, got %+v", c, got)
	}

	missing, err := repo.GetByID(ctx, 7)
	if err != nil || missing.ID != 0 {
		t.Fatalf("expected zero client, got %+v, %v", missing, err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 clients, got %d, %v", len(all), err)
	}
}
