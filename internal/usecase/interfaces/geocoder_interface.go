package interfaces

import (
	"context"

	"fieldtech/internal/domain/entities"
)

// IGeocoder resolves free-form addresses to coordinates.
type IGeocoder interface {
	Geocode(ctx context.Context, address string) (entities.Coordinates, error)
}

// GeocodeResult is the outcome for one address of a batch lookup.
type GeocodeResult struct {
	Address     string
	Coordinates entities.Coordinates
	Err         error
}

// IGeocodeQueue runs batches of lookups under the provider's rate limit.
type IGeocodeQueue interface {
	GeocodeAll(ctx context.Context, addresses []string) []GeocodeResult
}
