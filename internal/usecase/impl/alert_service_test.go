package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	mockRepo "bloodbridge/internal/mocks/repository"
	mockSvc "bloodbridge/internal/mocks/service"
	mockUC "bloodbridge/internal/mocks/usecase"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service      usecase.AlertUsecase
	requestRepo  *mockRepo.MockRequestRepository
	donationRepo *mockRepo.MockDonationRepository
	donorRepo    *mockRepo.MockDonorRepository
	patientRepo  *mockRepo.MockPatientRepository
	matcher      *mockUC.MockMatcherUsecase
	dispatcher   *mockUC.MockDispatcherUsecase
	smsSvc       *mockSvc.MockSMSService
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	donationRepo := mockRepo.NewMockDonationRepository(t)
	donorRepo := mockRepo.NewMockDonorRepository(t)
	patientRepo := mockRepo.NewMockPatientRepository(t)
	matcher := mockUC.NewMockMatcherUsecase(t)
	dispatcher := mockUC.NewMockDispatcherUsecase(t)
	smsSvc := mockSvc.NewMockSMSService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAlertService(AlertServiceParams{
		RequestRepo:  requestRepo,
		DonationRepo: donationRepo,
		DonorRepo:    donorRepo,
		PatientRepo:  patientRepo,
		Matcher:      matcher,
		Dispatcher:   dispatcher,
		SMSSvc:       smsSvc,
		Config:       testAlertConfig(),
		Logger:       logger,
	})

	return alertServiceFixtures{
		service:      service,
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
		donorRepo:    donorRepo,
		patientRepo:  patientRepo,
		matcher:      matcher,
		dispatcher:   dispatcher,
		smsSvc:       smsSvc,
	}
}

func TestAlertService_HandleUrgentRequest_FullFlow(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	request := &entity.BloodRequest{
		ID:          uuid.New(),
		Requestor:   entity.RequestorRef{Kind: entity.RequestorAnonymous, ContactPhone: "01712345678"},
		PatientName: "Rahim",
		BloodGroup:  entity.BloodGroupOPositive,
		Units:       450,
		Urgent:      true,
		Status:      entity.StatusPending,
	}
	donors := []*entity.Donor{
		{ID: uuid.New(), Phone: "01811111111"},
		{ID: uuid.New(), Phone: "01822222222"},
	}

	fx.requestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)
	fx.matcher.EXPECT().
		Match(ctx, request).
		Return(donors, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, donors, request).
		Return(&usecase.DispatchResult{Claimed: 2}, nil)
	fx.dispatcher.EXPECT().
		Deliver(ctx, request.ID).
		Return(&usecase.DeliveryResult{Sent: 2}, nil)

	var confirmation string
	fx.smsSvc.EXPECT().
		SendSMS(ctx, "+8801712345678", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, message string) {
			confirmation = message
		}).
		Return(nil)

	err := fx.service.HandleUrgentRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Contains(t, confirmation, "O+")
	assert.Contains(t, confirmation, "2 nearby donors")
}

func TestAlertService_HandleUrgentRequest_ConfirmationFailureIsSwallowed(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	request := &entity.BloodRequest{
		ID:         uuid.New(),
		Requestor:  entity.RequestorRef{Kind: entity.RequestorAnonymous, ContactPhone: "01712345678"},
		BloodGroup: entity.BloodGroupAPositive,
		Units:      450,
		Urgent:     true,
	}

	fx.requestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)
	fx.matcher.EXPECT().
		Match(ctx, request).
		Return(nil, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, []*entity.Donor(nil), request).
		Return(&usecase.DispatchResult{}, nil)
	fx.dispatcher.EXPECT().
		Deliver(ctx, request.ID).
		Return(&usecase.DeliveryResult{}, nil)
	fx.smsSvc.EXPECT().
		SendSMS(ctx, "+8801712345678", mock.AnythingOfType("string")).
		Return(assert.AnError)

	err := fx.service.HandleUrgentRequest(ctx, request.ID)
	require.NoError(t, err)
}

func TestAlertService_HandleUrgentRequest_RequestMissing(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	requestID := uuid.New()

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(nil, repository.ErrRequestNotFound)

	err := fx.service.HandleUrgentRequest(ctx, requestID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestAlertService_NotifyRequestDecided_PatientRequestor(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	patientID := uuid.New()

	request := &entity.BloodRequest{
		ID:         uuid.New(),
		Requestor:  entity.RequestorRef{Kind: entity.RequestorPatient, PatientID: &patientID},
		BloodGroup: entity.BloodGroupBNegative,
		Units:      300,
		Status:     entity.StatusApproved,
	}

	fx.requestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)
	fx.patientRepo.EXPECT().
		FindByID(ctx, patientID).
		Return(&entity.Patient{ID: patientID, Phone: "01712345678"}, nil)

	var message string
	fx.smsSvc.EXPECT().
		SendSMS(ctx, "+8801712345678", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, m string) {
			message = m
		}).
		Return(nil)

	err := fx.service.NotifyRequestDecided(ctx, request.ID, entity.StatusApproved, "")
	require.NoError(t, err)
	assert.Contains(t, message, "approved")
	assert.Contains(t, message, "B-")
}

func TestAlertService_NotifyRequestDecided_RejectionCarriesReason(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	request := &entity.BloodRequest{
		ID:         uuid.New(),
		Requestor:  entity.RequestorRef{Kind: entity.RequestorAnonymous, ContactPhone: "01712345678"},
		BloodGroup: entity.BloodGroupABNegative,
		Units:      200,
		Status:     entity.StatusRejected,
	}

	fx.requestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	var message string
	fx.smsSvc.EXPECT().
		SendSMS(ctx, "+8801712345678", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, m string) {
			message = m
		}).
		Return(nil)

	err := fx.service.NotifyRequestDecided(ctx, request.ID, entity.StatusRejected, "stock unavailable")
	require.NoError(t, err)
	assert.Contains(t, message, "stock unavailable")
}

func TestAlertService_NotifyDonationDecided(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	donorID := uuid.New()

	donation := &entity.BloodDonation{
		ID:         uuid.New(),
		DonorID:    donorID,
		BloodGroup: entity.BloodGroupOPositive,
		Units:      450,
		Status:     entity.StatusApproved,
	}

	fx.donationRepo.EXPECT().
		FindByID(ctx, donation.ID).
		Return(donation, nil)
	fx.donorRepo.EXPECT().
		FindByID(ctx, donorID).
		Return(&entity.Donor{ID: donorID, Phone: "01712345678"}, nil)

	var message string
	fx.smsSvc.EXPECT().
		SendSMS(ctx, "+8801712345678", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, m string) {
			message = m
		}).
		Return(nil)

	err := fx.service.NotifyDonationDecided(ctx, donation.ID, entity.StatusApproved, "")
	require.NoError(t, err)
	assert.Contains(t, message, "accepted")
}
