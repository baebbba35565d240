package usecase

import (
	"context"

	"bloodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDonorInput carries a donor registration. Coordinates, when
// present, were resolved by the delivery layer's geocoder before the
// core sees them.
type RegisterDonorInput struct {
	Name       string
	BloodGroup entity.BloodGroup
	Phone      string
	Address    string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
	FCMToken   string
}

// DonorUsecase manages donor profiles as the matcher sees them.
type DonorUsecase interface {
	// Register creates a donor profile, available by default.
	Register(ctx context.Context, input RegisterDonorInput) (*entity.Donor, error)

	// GetDonor retrieves a donor by ID.
	GetDonor(ctx context.Context, id uuid.UUID) (*entity.Donor, error)

	// MarkAvailability toggles whether the donor accepts alerts.
	MarkAvailability(ctx context.Context, id uuid.UUID, available bool) error

	// UpdateLocation writes freshly resolved coordinates onto the profile.
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64, postalCode string, verified bool) error
}
