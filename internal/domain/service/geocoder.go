package service

import (
	"context"

	"bloodbridge/internal/errors"
)

// ErrAddressNotFound is returned when the geocoding provider cannot resolve
// an address to coordinates.
var ErrAddressNotFound = errors.New("address not found")

// Coordinates is a resolved (latitude, longitude) pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves free-text addresses or postal codes to coordinates.
// Resolution happens upstream of the matching core: the delivery layer
// calls it when donor profiles or requests are saved, and the matcher
// only ever reads the already-resolved coordinates.
type Geocoder interface {
	// Resolve returns coordinates for an address, or ErrAddressNotFound.
	Resolve(ctx context.Context, address string) (*Coordinates, error)
}
