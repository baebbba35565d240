// Package geocode resolves addresses to coordinates through a
// Nominatim-compatible HTTP provider.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bloodbridge/config"
	"bloodbridge/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// nominatimGeocoder implements service.Geocoder against the Nominatim
// search API. Resolution happens in the delivery layer only, when donor
// profiles or requests are saved.
type nominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNominatimGeocoder creates a geocoder against a Nominatim-compatible endpoint.
func NewNominatimGeocoder(cfg *config.GeocoderConfig, logger *slog.Logger) service.Geocoder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &nominatimGeocoder{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns coordinates for a free-text address or postal code.
func (g *nominatimGeocoder) Resolve(ctx context.Context, address string) (*service.Coordinates, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoder response")
	}
	if len(results) == 0 {
		return nil, service.ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude in geocoder response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude in geocoder response")
	}

	g.logger.Debug("address resolved",
		slog.String("address", address),
		slog.Float64("lat", lat),
		slog.Float64("lon", lon),
	)

	return &service.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// noopGeocoder is used when geocoding is disabled; every lookup misses.
type noopGeocoder struct{}

// NewNoopGeocoder creates a geocoder that never resolves.
func NewNoopGeocoder() service.Geocoder {
	return &noopGeocoder{}
}

func (g *noopGeocoder) Resolve(_ context.Context, _ string) (*service.Coordinates, error) {
	return nil, service.ErrAddressNotFound
}
