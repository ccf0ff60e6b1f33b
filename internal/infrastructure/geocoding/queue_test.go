package geocoding

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"fieldtech/internal/domain/entities"
	mock_interfaces "fieldtech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fastQueueConfig() QueueConfig {
	return QueueConfig{RequestsPerSecond: 1000, Concurrency: 2, MaxRetries: 2, InitialBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond}
}

func TestQueue_GeocodeAll(t *testing.T) {
	t.Run("retries throttling then succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		g := mock_interfaces.NewMockIGeocoder(ctrl)

		gomock.InOrder(
			g.EXPECT().Geocode(gomock.Any(), "a").Return(entities.Coordinates{}, &StatusError{StatusCode: http.StatusTooManyRequests}),
			g.EXPECT().Geocode(gomock.Any(), "a").Return(entities.Coordinates{}, &StatusError{StatusCode: http.StatusBadGateway}),
			g.EXPECT().Geocode(gomock.Any(), "a").Return(entities.Coordinates{Lat: 1, Lon: 2}, nil),
		)

		got := NewQueue(g, fastQueueConfig()).GeocodeAll(context.Background(), []string{"a"})
		if len(got) != 1 || got[0].Err != nil || got[0].Coordinates.Lat != 1 {
			t.Fatalf("unexpected results %+v", got)
		}
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		g := mock_interfaces.NewMockIGeocoder(ctrl)

		g.EXPECT().Geocode(gomock.Any(), "a").Return(entities.Coordinates{}, &StatusError{StatusCode: http.StatusForbidden}).Times(1)
		g.EXPECT().Geocode(gomock.Any(), "b").Return(entities.Coordinates{}, ErrNoMatch).Times(1)

		got := NewQueue(g, fastQueueConfig()).GeocodeAll(context.Background(), []string{"a", "b"})
		var status *StatusError
		if !errors.As(got[0].Err, &status) || status.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403 for a, got %v", got[0].Err)
		}
		if !errors.Is(got[1].Err, ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch for b, got %v", got[1].Err)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		g := mock_interfaces.NewMockIGeocoder(ctrl)

		transport := errors.New("connection reset")
		g.EXPECT().Geocode(gomock.Any(), "a").Return(entities.Coordinates{}, transport).Times(3)

		got := NewQueue(g, fastQueueConfig()).GeocodeAll(context.Background(), []string{"a"})
		if !errors.Is(got[0].Err, transport) {
			t.Fatalf("expected transport error, got %v", got[0].Err)
		}
	})

	t.Run("keeps input order and isolates failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		g := mock_interfaces.NewMockIGeocoder(ctrl)

		g.EXPECT().Geocode(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, addr string) (entities.Coordinates, error) {
			switch addr {
			case "one":
				return entities.Coordinates{Lat: 1}, nil
			case "three":
				return entities.Coordinates{Lat: 3}, nil
			}
			return entities.Coordinates{}, ErrEmptyAddress
		}).Times(3)

		got := NewQueue(g, fastQueueConfig()).GeocodeAll(context.Background(), []string{"one", "", "three"})
		if got[0].Coordinates.Lat != 1 || got[2].Coordinates.Lat != 3 || got[0].Address != "one" {
			t.Fatalf("unexpected results %+v", got)
		}
		if !errors.Is(got[1].Err, ErrEmptyAddress) {
			t.Fatalf("expected ErrEmptyAddress, got %v", got[1].Err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		g := mock_interfaces.NewMockIGeocoder(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got := NewQueue(g, fastQueueConfig()).GeocodeAll(ctx, []string{"a"})
		if !errors.Is(got[0].Err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", got[0].Err)
		}
	})
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"throttled", &StatusError{StatusCode: 429}, true},
		{"server", &StatusError{StatusCode: 503}, true},
		{"not found", &StatusError{StatusCode: 404}, false},
		{"no match", ErrNoMatch, false},
		{"bad response", ErrBadResponse, false},
		{"cancelled", context.Canceled, false},
		{"transport", errors.New("dial tcp: refused"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryable(tt.err); got != tt.want {
				t.Fatalf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
