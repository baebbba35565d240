package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/domain/service"
	mockRepo "bloodbridge/internal/mocks/repository"
	mockSvc "bloodbridge/internal/mocks/service"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// donationServiceFixtures holds all test dependencies for donation service tests.
type donationServiceFixtures struct {
	service      usecase.DonationUsecase
	donationRepo *mockRepo.MockDonationRepository
	donorRepo    *mockRepo.MockDonorRepository
	stockRepo    *mockRepo.MockStockRepository
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	publisher    *mockSvc.MockEventPublisher
}

func createTestDonationService(t *testing.T) donationServiceFixtures {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	donorRepo := mockRepo.NewMockDonorRepository(t)
	stockRepo := mockRepo.NewMockStockRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDonationService(donationRepo, donorRepo, txManager, publisher, logger)

	return donationServiceFixtures{
		service:      service,
		donationRepo: donationRepo,
		donorRepo:    donorRepo,
		stockRepo:    stockRepo,
		txManager:    txManager,
		factory:      factory,
		publisher:    publisher,
	}
}

func (f donationServiceFixtures) passthroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestDonationService_Submit_Success(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.donorRepo.EXPECT().
		FindByID(ctx, donorID).
		Return(&entity.Donor{ID: donorID, Name: "Karim"}, nil)
	fx.donationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BloodDonation")).
		Return(nil)

	donation, err := fx.service.Submit(ctx, usecase.SubmitDonationInput{
		DonorID:    donorID,
		Disease:    "none",
		Age:        29,
		BloodGroup: entity.BloodGroupOPositive,
		Units:      450,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, donation.Status)
	assert.Equal(t, donorID, donation.DonorID)
}

func TestDonationService_Submit_UnknownDonor(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.donorRepo.EXPECT().
		FindByID(ctx, donorID).
		Return(nil, repository.ErrDonorNotFound)

	_, err := fx.service.Submit(ctx, usecase.SubmitDonationInput{
		DonorID:    donorID,
		BloodGroup: entity.BloodGroupAPositive,
		Units:      450,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
}

func TestDonationService_Submit_InvalidInput(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()

	_, err := fx.service.Submit(ctx, usecase.SubmitDonationInput{
		DonorID:    uuid.New(),
		BloodGroup: entity.BloodGroup("AB"),
		Units:      450,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)

	_, err = fx.service.Submit(ctx, usecase.SubmitDonationInput{
		DonorID:    uuid.New(),
		BloodGroup: entity.BloodGroupABNegative,
		Units:      0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNonPositiveUnits)
}

func TestDonationService_Approve_CreditsStockAtomically(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donationID := uuid.New()

	pending := &entity.BloodDonation{
		ID:         donationID,
		DonorID:    uuid.New(),
		BloodGroup: entity.BloodGroupANegative,
		Units:      450,
		Status:     entity.StatusPending,
	}

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewDonationRepository().Return(fx.donationRepo)
	fx.factory.EXPECT().NewStockRepository().Return(fx.stockRepo)

	fx.donationRepo.EXPECT().
		FindByID(ctx, donationID).
		Return(pending, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donationID, entity.StatusPending, entity.StatusApproved, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.stockRepo.EXPECT().
		AdjustUnits(ctx, entity.BloodGroupANegative, 450).
		Return(true, nil)

	var published *service.AlertEvent
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, event *service.AlertEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.Approve(ctx, donationID)
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.AlertEventDonationDecided, published.Kind)
	assert.Equal(t, entity.StatusApproved.String(), published.Decision)
}

func TestDonationService_Approve_AlreadyDecided(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donationID := uuid.New()

	approved := &entity.BloodDonation{
		ID:         donationID,
		BloodGroup: entity.BloodGroupBNegative,
		Units:      450,
		Status:     entity.StatusApproved,
	}

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewDonationRepository().Return(fx.donationRepo)

	fx.donationRepo.EXPECT().
		FindByID(ctx, donationID).
		Return(approved, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donationID, entity.StatusPending, entity.StatusApproved, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	err := fx.service.Approve(ctx, donationID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestDonationService_Reject_NoLedgerEffect(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donationID := uuid.New()

	pending := &entity.BloodDonation{
		ID:         donationID,
		BloodGroup: entity.BloodGroupOPositive,
		Units:      450,
		Status:     entity.StatusPending,
	}

	fx.donationRepo.EXPECT().
		FindByID(ctx, donationID).
		Return(pending, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donationID, entity.StatusPending, entity.StatusRejected, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	err := fx.service.Reject(ctx, donationID, "screening failed")
	require.NoError(t, err)
	// No stock repository expectations: rejection never touches the ledger.
	fx.stockRepo.AssertNotCalled(t, "AdjustUnits")
}

func TestDonationService_DonorDonations(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.donationRepo.EXPECT().
		ListByDonor(ctx, donorID, 10, 0).
		Return([]*entity.BloodDonation{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	donations, err := fx.service.DonorDonations(ctx, donorID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, donations, 2)
}
