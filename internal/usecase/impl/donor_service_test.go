package impl

import (
	"context"
	"testing"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	mockRepo "bloodbridge/internal/mocks/repository"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// donorServiceFixtures holds all test dependencies for donor service tests.
type donorServiceFixtures struct {
	service   usecase.DonorUsecase
	donorRepo *mockRepo.MockDonorRepository
}

func createTestDonorService(t *testing.T) donorServiceFixtures {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	service := NewDonorService(donorRepo)

	return donorServiceFixtures{
		service:   service,
		donorRepo: donorRepo,
	}
}

func TestDonorService_Register_AvailableByDefault(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	fx.donorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donor")).
		Return(nil)

	donor, err := fx.service.Register(ctx, usecase.RegisterDonorInput{
		Name:       "Karim Ahmed",
		BloodGroup: entity.BloodGroupOPositive,
		Phone:      "01712345678",
		Address:    "12 Green Road, Dhaka",
		PostalCode: "1205",
	})
	require.NoError(t, err)
	assert.True(t, donor.Available)
	assert.False(t, donor.LocationVerified)
	assert.Nil(t, donor.LastNotifiedAt)
}

func TestDonorService_Register_WithResolvedCoordinates(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	fx.donorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donor")).
		Return(nil)

	donor, err := fx.service.Register(ctx, usecase.RegisterDonorInput{
		Name:       "Karim Ahmed",
		BloodGroup: entity.BloodGroupOPositive,
		Phone:      "01712345678",
		Latitude:   ptr(23.7104),
		Longitude:  ptr(90.4074),
	})
	require.NoError(t, err)
	assert.True(t, donor.LocationVerified)
	require.True(t, donor.HasLocation())
	assert.InDelta(t, 23.7104, *donor.Latitude, 1e-9)
}

func TestDonorService_Register_InvalidInput(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterDonorInput{
		Name:       "Karim",
		BloodGroup: entity.BloodGroup("C+"),
		Phone:      "01712345678",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)

	_, err = fx.service.Register(ctx, usecase.RegisterDonorInput{
		BloodGroup: entity.BloodGroupOPositive,
		Phone:      "01712345678",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDonorService_MarkAvailability(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.donorRepo.EXPECT().
		UpdateAvailability(ctx, donorID, false, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.MarkAvailability(ctx, donorID, false)
	require.NoError(t, err)
}

func TestDonorService_MarkAvailability_UnknownDonor(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.donorRepo.EXPECT().
		UpdateAvailability(ctx, donorID, true, mock.AnythingOfType("time.Time")).
		Return(repository.ErrDonorNotFound)

	err := fx.service.MarkAvailability(ctx, donorID, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
}

func TestDonorService_UpdateLocation(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.donorRepo.EXPECT().
		UpdateLocation(ctx, donorID, 23.7104, 90.4074, "1205", true).
		Return(nil)

	err := fx.service.UpdateLocation(ctx, donorID, 23.7104, 90.4074, "1205", true)
	require.NoError(t, err)
}
