package usecase

import (
	"context"

	"bloodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRequestInput carries a validated-at-the-edge request submission.
// Latitude/Longitude are resolved upstream (delivery layer geocoding);
// the core never calls the geocoder itself.
type SubmitRequestInput struct {
	Requestor   entity.RequestorRef
	PatientName string
	PatientAge  int
	Reason      string
	BloodGroup  entity.BloodGroup
	Units       int
	PostalCode  string
	Latitude    *float64
	Longitude   *float64
	Urgent      bool
}

// RequestUsecase governs a blood request from submission to a terminal
// outcome and drives the corresponding ledger debits.
type RequestUsecase interface {
	// Submit validates and creates a Pending request. Urgent submissions
	// additionally publish an alert event as a fire-and-forget side effect;
	// submission success never depends on the notification outcome.
	Submit(ctx context.Context, input SubmitRequestInput) (*entity.BloodRequest, error)

	// Approve debits the ledger and moves the request to Approved as one
	// atomic unit. ErrInvalidStateTransition when not Pending;
	// ErrInsufficientStock leaves the ledger and the request untouched.
	Approve(ctx context.Context, id uuid.UUID) error

	// Reject moves the request to Rejected with no ledger effect.
	Reject(ctx context.Context, id uuid.UUID, reason string) error

	// GetRequest retrieves a request by ID.
	GetRequest(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// PendingRequests lists requests awaiting a decision, newest first.
	PendingRequests(ctx context.Context, limit, offset int) ([]*entity.BloodRequest, error)

	// RequestHistory lists decided requests, newest first.
	RequestHistory(ctx context.Context, limit, offset int) ([]*entity.BloodRequest, error)
}
