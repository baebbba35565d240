package impl

import (
	"context"
	"testing"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/errors"
	mockRepo "bloodbridge/internal/mocks/repository"
	"bloodbridge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stockServiceFixtures holds all test dependencies for stock service tests.
type stockServiceFixtures struct {
	service   usecase.StockUsecase
	stockRepo *mockRepo.MockStockRepository
}

func createTestStockService(t *testing.T) stockServiceFixtures {
	stockRepo := mockRepo.NewMockStockRepository(t)
	service := NewStockService(stockRepo)

	return stockServiceFixtures{
		service:   service,
		stockRepo: stockRepo,
	}
}

func TestStockService_Adjust_Credit(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		AdjustUnits(ctx, entity.BloodGroupAPositive, 500).
		Return(true, nil)

	err := fx.service.Adjust(ctx, entity.BloodGroupAPositive, 500)
	require.NoError(t, err)
}

func TestStockService_Adjust_DebitBelowZero(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		AdjustUnits(ctx, entity.BloodGroupONegative, -100).
		Return(false, nil)

	err := fx.service.Adjust(ctx, entity.BloodGroupONegative, -100)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestStockService_Adjust_InvalidGroup(t *testing.T) {
	fx := createTestStockService(t)

	err := fx.service.Adjust(context.Background(), entity.BloodGroup("X+"), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
}

func TestStockService_Adjust_RepositoryError(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		AdjustUnits(ctx, entity.BloodGroupBPositive, 10).
		Return(false, errors.New("connection reset"))

	err := fx.service.Adjust(ctx, entity.BloodGroupBPositive, 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestStockService_Balance_Success(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		FindByGroup(ctx, entity.BloodGroupABNegative).
		Return(&entity.StockEntry{BloodGroup: entity.BloodGroupABNegative, Units: 350}, nil)

	units, err := fx.service.Balance(ctx, entity.BloodGroupABNegative)
	require.NoError(t, err)
	assert.Equal(t, 350, units)
}

func TestStockService_Balance_MissingEntry(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		FindByGroup(ctx, entity.BloodGroupBNegative).
		Return(nil, repository.ErrStockEntryNotFound)

	_, err := fx.service.Balance(ctx, entity.BloodGroupBNegative)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStockEntryNotFound)
}

func TestStockService_Snapshot(t *testing.T) {
	fx := createTestStockService(t)
	ctx := context.Background()

	fx.stockRepo.EXPECT().
		Snapshot(ctx).
		Return([]*entity.StockEntry{
			{BloodGroup: entity.BloodGroupAPositive, Units: 1200},
			{BloodGroup: entity.BloodGroupONegative, Units: 0},
		}, nil)

	snapshot, err := fx.service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot, 2)
	assert.Equal(t, 1200, snapshot[entity.BloodGroupAPositive])
	assert.Equal(t, 0, snapshot[entity.BloodGroupONegative])
}
