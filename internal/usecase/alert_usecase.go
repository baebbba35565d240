package usecase

import (
	"context"

	"bloodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchResult summarizes one dispatch pass over a ranked donor list.
type DispatchResult struct {
	Claimed    int // jobs created in Pending state
	Throttled  int // donors skipped inside the minimum notification gap
	Duplicate  int // donors skipped because an active job already existed
	Unroutable int // donors skipped for lack of a usable phone number or token
}

// DeliveryResult summarizes one delivery pass over pending jobs.
type DeliveryResult struct {
	Sent    int
	Failed  int
	Skipped int // jobs lost to a concurrent delivery pass's claim
}

// DispatcherUsecase turns a ranked donor list into throttled, idempotent,
// best-effort alert jobs and later delivers them. Claiming jobs is a short
// transactional step; channel I/O happens only in Deliver, outside any lock.
type DispatcherUsecase interface {
	// Dispatch claims one alert job per eligible donor. Per donor, inside a
	// single transaction: skip when an active job exists for the (donor,
	// request) pair, skip when the donor is inside the minimum notification
	// gap, otherwise update LastNotifiedAt and create the job Pending.
	// Skips are silent; they are policy, not errors.
	Dispatch(ctx context.Context, donors []*entity.Donor, request *entity.BloodRequest) (*DispatchResult, error)

	// Deliver sends every Pending job for a request through the channel
	// ports. A job is claimed Pending-to-Sent before any channel I/O, so
	// each job is sent at most once even under concurrent passes. Failures
	// are logged, marked Failed, and not retried.
	Deliver(ctx context.Context, requestID uuid.UUID) (*DeliveryResult, error)
}

// AlertUsecase is the worker-side entry point: it consumes alert events
// and performs the matching, dispatching, and decision notifications that
// were deferred across the asynchronous boundary.
type AlertUsecase interface {
	// HandleUrgentRequest matches donors for an urgent request, dispatches
	// alert jobs, delivers them, and sends the requester confirmation.
	HandleUrgentRequest(ctx context.Context, requestID uuid.UUID) error

	// NotifyRequestDecided sends the approval/rejection SMS for a request.
	NotifyRequestDecided(ctx context.Context, requestID uuid.UUID, decision entity.Status, reason string) error

	// NotifyDonationDecided sends the approval/rejection SMS for a donation.
	NotifyDonationDecided(ctx context.Context, donationID uuid.UUID, decision entity.Status, reason string) error
}
