package impl

import (
	"context"
	"testing"

	"bloodbridge/internal/domain/entity"
	mockRepo "bloodbridge/internal/mocks/repository"
	"bloodbridge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard tests.
type dashboardServiceFixtures struct {
	service      usecase.DashboardUsecase
	stockRepo    *mockRepo.MockStockRepository
	requestRepo  *mockRepo.MockRequestRepository
	donationRepo *mockRepo.MockDonationRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	stockRepo := mockRepo.NewMockStockRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := NewDashboardService(NewStockService(stockRepo), requestRepo, donationRepo)

	return dashboardServiceFixtures{
		service:      service,
		stockRepo:    stockRepo,
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
	}
}

func TestDashboardService_Overview(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		Snapshot(ctx).
		Return([]*entity.StockEntry{
			{BloodGroup: entity.BloodGroupAPositive, Units: 1200},
			{BloodGroup: entity.BloodGroupONegative, Units: 0},
		}, nil)

	fx.requestRepo.EXPECT().CountByStatus(ctx, entity.StatusPending).Return(4, nil)
	fx.requestRepo.EXPECT().CountByStatus(ctx, entity.StatusApproved).Return(17, nil)
	fx.requestRepo.EXPECT().CountByStatus(ctx, entity.StatusRejected).Return(3, nil)
	fx.donationRepo.EXPECT().CountByStatus(ctx, entity.StatusPending).Return(2, nil)
	fx.donationRepo.EXPECT().CountByStatus(ctx, entity.StatusApproved).Return(9, nil)
	fx.donationRepo.EXPECT().CountByStatus(ctx, entity.StatusRejected).Return(0, nil)

	overview, err := fx.service.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1200, overview.Stock[entity.BloodGroupAPositive])
	assert.Equal(t, 0, overview.Stock[entity.BloodGroupONegative])
	assert.Equal(t, usecase.WorkflowCounters{Pending: 4, Approved: 17, Rejected: 3}, overview.Requests)
	assert.Equal(t, usecase.WorkflowCounters{Pending: 2, Approved: 9, Rejected: 0}, overview.Donations)
}

func TestDashboardService_Overview_CounterFailure(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		Snapshot(ctx).
		Return([]*entity.StockEntry{}, nil)

	fx.requestRepo.EXPECT().
		CountByStatus(ctx, entity.StatusPending).
		Return(0, errors.New("connection reset"))

	_, err := fx.service.Overview(ctx)
	require.Error(t, err)
}
