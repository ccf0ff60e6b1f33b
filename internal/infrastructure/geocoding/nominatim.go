package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "fieldtech/1.0"
)

var (
	ErrEmptyAddress = errors.New("empty address")
	ErrNoMatch      = errors.New("address not found")
	ErrBadResponse  = errors.New("unexpected geocoder response")
)

// StatusError is a non-2xx answer from the geocoding provider.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoder responded %d", e.StatusCode)
}

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Email     string
	Timeout   time.Duration
}

// Nominatim resolves addresses with the OpenStreetMap search API.
type Nominatim struct {
	baseURL   string
	userAgent string
	email     string
	client    *http.Client
}

var _ interfaces.IGeocoder = (*Nominatim)(nil)

func NewNominatim(cfg NominatimConfig) *Nominatim {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Nominatim{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		email:     cfg.Email,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (n *Nominatim) Geocode(ctx context.Context, address string) (entities.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return entities.Coordinates{}, ErrEmptyAddress
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	if n.email != "" {
		q.Set("email", n.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return entities.Coordinates{}, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return entities.Coordinates{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return entities.Coordinates{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return entities.Coordinates{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(results) == 0 {
		return entities.Coordinates{}, fmt.Errorf("%w: %q", ErrNoMatch, address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entities.Coordinates{}, fmt.Errorf("%w: latitude %q", ErrBadResponse, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entities.Coordinates{}, fmt.Errorf("%w: longitude %q", ErrBadResponse, results[0].Lon)
	}
	return entities.Coordinates{Lat: lat, Lon: lon}, nil
}
