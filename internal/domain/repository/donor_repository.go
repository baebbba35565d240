// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for donor persistence.
var (
	// ErrDonorNotFound is returned when a donor is not found.
	ErrDonorNotFound = errors.New("donor not found")
	// ErrPatientNotFound is returned when a patient is not found.
	ErrPatientNotFound = errors.New("patient not found")
)

// DonorRepository defines the interface for donor-related database operations.
type DonorRepository interface {
	// Create persists a new donor profile.
	Create(ctx context.Context, donor *entity.Donor) error

	// FindByID retrieves a donor by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error)

	// FindCandidates retrieves all available donors of a blood group,
	// ordered by ID for a stable matcher input snapshot.
	FindCandidates(ctx context.Context, group entity.BloodGroup) ([]*entity.Donor, error)

	// ClaimNotificationSlot atomically sets LastNotifiedAt = now if and only
	// if the donor's previous LastNotifiedAt is null or older than the
	// throttle cutoff. Returns false when the claim loses, so two concurrent
	// dispatches cannot both pass the throttle check for the same donor.
	ClaimNotificationSlot(ctx context.Context, donorID uuid.UUID, now, cutoff time.Time) (bool, error)

	// UpdateAvailability toggles the donor's alert availability.
	UpdateAvailability(ctx context.Context, donorID uuid.UUID, available bool, at time.Time) error

	// UpdateLocation writes upstream-resolved coordinates onto the donor record.
	UpdateLocation(ctx context.Context, donorID uuid.UUID, lat, lon float64, postalCode string, verified bool) error
}

// PatientRepository defines the interface for the slim patient profile store.
type PatientRepository interface {
	// Create persists a new patient profile.
	Create(ctx context.Context, patient *entity.Patient) error

	// FindByID retrieves a patient by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
}
