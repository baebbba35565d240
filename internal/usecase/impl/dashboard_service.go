package impl

import (
	"context"

	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/usecase"

	"github.com/pkg/errors"
)

type dashboardService struct {
	stockUc      usecase.StockUsecase
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
}

// NewDashboardService creates the admin dashboard aggregation service.
func NewDashboardService(
	stockUc usecase.StockUsecase,
	requestRepo repository.RequestRepository,
	donationRepo repository.DonationRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		stockUc:      stockUc,
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
	}
}

// Overview returns the stock snapshot and per-status workflow counters.
// The reads are not a single consistent cut; dashboards tolerate that.
func (s *dashboardService) Overview(ctx context.Context) (*usecase.DashboardOverview, error) {
	stock, err := s.stockUc.Snapshot(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	requests, err := countersFor(ctx, s.requestRepo.CountByStatus)
	if err != nil {
		return nil, err
	}

	donations, err := countersFor(ctx, s.donationRepo.CountByStatus)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardOverview{
		Stock:     stock,
		Requests:  requests,
		Donations: donations,
	}, nil
}

func countersFor(ctx context.Context, count func(context.Context, entity.Status) (int64, error)) (usecase.WorkflowCounters, error) {
	var counters usecase.WorkflowCounters

	pending, err := count(ctx, entity.StatusPending)
	if err != nil {
		return counters, errors.WithStack(err)
	}

	approved, err := count(ctx, entity.StatusApproved)
	if err != nil {
		return counters, errors.WithStack(err)
	}

	rejected, err := count(ctx, entity.StatusRejected)
	if err != nil {
		return counters, errors.WithStack(err)
	}

	counters.Pending = pending
	counters.Approved = approved
	counters.Rejected = rejected

	return counters, nil
}
