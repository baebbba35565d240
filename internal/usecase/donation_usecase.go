package usecase

import (
	"context"

	"bloodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitDonationInput carries a donation submission. DonorID is always
// required; donations are never anonymous.
type SubmitDonationInput struct {
	DonorID    uuid.UUID
	Disease    string
	Age        int
	BloodGroup entity.BloodGroup
	Units      int
}

// DonationUsecase mirrors RequestUsecase with the ledger sign flipped:
// approving a donation credits stock, and credits cannot fail for
// insufficiency.
type DonationUsecase interface {
	// Submit validates and creates a Pending donation.
	Submit(ctx context.Context, input SubmitDonationInput) (*entity.BloodDonation, error)

	// Approve credits the ledger and moves the donation to Approved as one
	// atomic unit. ErrInvalidStateTransition when not Pending.
	Approve(ctx context.Context, id uuid.UUID) error

	// Reject moves the donation to Rejected with no ledger effect.
	Reject(ctx context.Context, id uuid.UUID, reason string) error

	// GetDonation retrieves a donation by ID.
	GetDonation(ctx context.Context, id uuid.UUID) (*entity.BloodDonation, error)

	// PendingDonations lists donations awaiting a decision, newest first.
	PendingDonations(ctx context.Context, limit, offset int) ([]*entity.BloodDonation, error)

	// DonorDonations lists a donor's donations, newest first.
	DonorDonations(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entity.BloodDonation, error)
}
