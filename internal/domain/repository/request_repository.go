// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for request persistence.
var (
	// ErrRequestNotFound is returned when a blood request is not found.
	ErrRequestNotFound = errors.New("blood request not found")
)

// RequestRepository defines the interface for blood-request database operations.
type RequestRepository interface {
	// Create persists a new blood request.
	Create(ctx context.Context, request *entity.BloodRequest) error

	// FindByID retrieves a blood request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// TransitionStatus moves a request from one status to another, setting
	// DecidedAt. Returns false when the request was not in the expected
	// status, so concurrent deciders cannot both win.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.Status, decidedAt time.Time) (bool, error)

	// ListByStatus retrieves requests in a given status, newest first.
	ListByStatus(ctx context.Context, status entity.Status, limit, offset int) ([]*entity.BloodRequest, error)

	// ListDecided retrieves requests that have left Pending, newest first.
	ListDecided(ctx context.Context, limit, offset int) ([]*entity.BloodRequest, error)

	// CountByStatus returns the number of requests in a given status.
	CountByStatus(ctx context.Context, status entity.Status) (int64, error)
}
