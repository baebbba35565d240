// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for donation persistence.
var (
	// ErrDonationNotFound is returned when a blood donation is not found.
	ErrDonationNotFound = errors.New("blood donation not found")
)

// DonationRepository defines the interface for blood-donation database operations.
type DonationRepository interface {
	// Create persists a new blood donation.
	Create(ctx context.Context, donation *entity.BloodDonation) error

	// FindByID retrieves a blood donation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodDonation, error)

	// TransitionStatus moves a donation from one status to another, setting
	// DecidedAt. Returns false when the donation was not in the expected status.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.Status, decidedAt time.Time) (bool, error)

	// ListByStatus retrieves donations in a given status, newest first.
	ListByStatus(ctx context.Context, status entity.Status, limit, offset int) ([]*entity.BloodDonation, error)

	// ListByDonor retrieves all donations offered by a donor, newest first.
	ListByDonor(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entity.BloodDonation, error)

	// CountByStatus returns the number of donations in a given status.
	CountByStatus(ctx context.Context, status entity.Status) (int64, error)
}
