// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for alert job persistence.
var (
	// ErrAlertJobNotFound is returned when an alert job is not found.
	ErrAlertJobNotFound = errors.New("alert job not found")
	// ErrDuplicateAlertJob is returned when a Pending/Sent job already exists
	// for the (donor, request) idempotency key.
	ErrDuplicateAlertJob = errors.New("alert job already exists for donor and request")
)

// AlertRepository defines the interface for alert-job database operations.
type AlertRepository interface {
	// CreateJob persists a new alert job in Pending state. Returns
	// ErrDuplicateAlertJob when the (donor, request) unique index rejects it.
	CreateJob(ctx context.Context, job *entity.AlertJob) error

	// HasActiveJob reports whether a Pending or Sent job exists for the
	// (donor, request) pair.
	HasActiveJob(ctx context.Context, donorID, requestID uuid.UUID) (bool, error)

	// ListPendingByRequest retrieves Pending jobs for a request, oldest first.
	ListPendingByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.AlertJob, error)

	// ClaimForSend conditionally transitions a Pending job to Sent and
	// reports whether this caller won the claim. A false result means a
	// concurrent deliverer already took the job and it must be skipped.
	ClaimForSend(ctx context.Context, jobID uuid.UUID, at time.Time) (bool, error)

	// MarkFailed transitions a job to Failed with the channel error. Failed
	// jobs are kept for diagnostics and are never retried.
	MarkFailed(ctx context.Context, jobID uuid.UUID, at time.Time, reason string) error

	// ListByRequest retrieves all jobs for a request, oldest first.
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.AlertJob, error)
}
