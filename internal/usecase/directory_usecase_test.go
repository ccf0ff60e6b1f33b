package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	mock_interfaces "fieldtech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDirectoryUseCase_Clients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIOrderGateway(ctrl)
	uc := NewDirectoryUseCase(gw, nil, nil, nil)

	gomock.InOrder(
		gw.EXPECT().ListClients(gomock.Any()).Return([]entities.Client{{ID: 1, Name: "ACME"}}, nil),
		gw.EXPECT().ListClients(gomock.Any()).Return(nil, &interfaces.GatewayError{StatusCode: 503}),
	)

	got, err := uc.Clients(context.Background())
	if err != nil || len(got) != 1 || got[0].Name != "ACME" {
		t.Fatalf("unexpected result %+v, %v", got, err)
	}
	if _, err := uc.Clients(context.Background()); !errors.Is(err, ErrOperationFailed) {
		t.Fatalf("expected ErrOperationFailed, got %v", err)
	}
}

func TestDirectoryUseCase_Locate(t *testing.T) {
	orders, _ := newCoordinator(nil, &testClock{t: at("10:00:00")}, 300, pendingOrder(1), pendingOrder(2))

	t.Run("disabled", func(t *testing.T) {
		uc := NewDirectoryUseCase(nil, orders, nil, nil)
		if _, err := uc.Locate(context.Background(), []int64{1}); !errors.Is(err, ErrGeocodingDisabled) {
			t.Fatalf("expected ErrGeocodingDisabled, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewDirectoryUseCase(nil, orders, mock_interfaces.NewMockIGeocodeQueue(ctrl), nil)
		if _, err := uc.Locate(context.Background(), []int64{9}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("per address results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		queue := mock_interfaces.NewMockIGeocodeQueue(ctrl)
		uc := NewDirectoryUseCase(nil, orders, queue, nil)

		addr := pendingOrder(1).Client.Address
		queue.EXPECT().GeocodeAll(gomock.Any(), []string{addr, addr}).Return([]interfaces.GeocodeResult{
			{Address: addr, Coordinates: entities.Coordinates{Lat: 19.43, Lon: -99.13}},
			{Address: addr, Err: errors.New("no match")},
		})

		got, err := uc.Locate(context.Background(), []int64{1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].Coordinates == nil || got[0].Coordinates.Lat != 19.43 {
			t.Fatalf("expected coordinates for order 1, got %+v", got[0])
		}
		if got[1].Coordinates != nil || got[1].Error != "no match" {
			t.Fatalf("expected error for order 2, got %+v", got[1])
		}
	})
}
