package geocoding

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type QueueConfig struct {
	// RequestsPerSecond is shared by every lookup of every batch.
	RequestsPerSecond float64
	Concurrency       int
	MaxRetries        uint64
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
}

// Queue runs geocoding lookups with bounded concurrency under a token bucket,
// retrying throttled and failed-server answers with exponential backoff.
type Queue struct {
	geocoder interfaces.IGeocoder
	limiter  *rate.Limiter
	cfg      QueueConfig
}

var _ interfaces.IGeocodeQueue = (*Queue)(nil)

func NewQueue(geocoder interfaces.IGeocoder, cfg QueueConfig) *Queue {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 2
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 10 * time.Second
	}
	return &Queue{
		geocoder: geocoder,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cfg:      cfg,
	}
}

// GeocodeAll returns one result per address, in input order. A failed
// address does not stop the others.
func (q *Queue) GeocodeAll(ctx context.Context, addresses []string) []interfaces.GeocodeResult {
	results := make([]interfaces.GeocodeResult, len(addresses))

	var g errgroup.Group
	g.SetLimit(q.cfg.Concurrency)
	for i, addr := range addresses {
		i, addr := i, addr
		g.Go(func() error {
			coords, err := q.lookup(ctx, addr)
			results[i] = interfaces.GeocodeResult{Address: addr, Coordinates: coords, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (q *Queue) lookup(ctx context.Context, address string) (entities.Coordinates, error) {
	attempt := 0
	op := func() (entities.Coordinates, error) {
		attempt++
		if err := q.limiter.Wait(ctx); err != nil {
			return entities.Coordinates{}, backoff.Permanent(err)
		}
		coords, err := q.geocoder.Geocode(ctx, address)
		if err == nil {
			return coords, nil
		}
		if !retryable(err) {
			return entities.Coordinates{}, backoff.Permanent(err)
		}
		logger.Debug(ctx, "geocoding attempt failed", "attempt", attempt, "error", err)
		return entities.Coordinates{}, err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = q.cfg.InitialBackoff
	exp.MaxInterval = q.cfg.MaxBackoff
	exp.MaxElapsedTime = 0
	b := backoff.WithContext(backoff.WithMaxRetries(exp, q.cfg.MaxRetries), ctx)

	return backoff.RetryWithData(op, b)
}

// retryable reports whether a failed lookup is worth another attempt:
// throttling, server errors and transport failures are; the rest are not.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrEmptyAddress) || errors.Is(err, ErrNoMatch) || errors.Is(err, ErrBadResponse) {
		return false
	}
	var status *StatusError
	if errors.As(err, &status) {
		return status.StatusCode == http.StatusTooManyRequests || status.StatusCode >= 500
	}
	return true
}
