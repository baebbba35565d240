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

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service     usecase.RequestUsecase
	requestRepo *mockRepo.MockRequestRepository
	stockRepo   *mockRepo.MockStockRepository
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	publisher   *mockSvc.MockEventPublisher
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	stockRepo := mockRepo.NewMockStockRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRequestService(requestRepo, txManager, publisher, logger)

	return requestServiceFixtures{
		service:     service,
		requestRepo: requestRepo,
		stockRepo:   stockRepo,
		txManager:   txManager,
		factory:     factory,
		publisher:   publisher,
	}
}

// passthroughTx wires the transaction manager mock to run the callback
// against the fixture's repository factory, as a committed transaction would.
func (f requestServiceFixtures) passthroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func patientRequestor() entity.RequestorRef {
	patientID := uuid.New()

	return entity.RequestorRef{Kind: entity.RequestorPatient, PatientID: &patientID}
}

func TestRequestService_Submit_Success(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BloodRequest")).
		Return(nil)

	request, err := fx.service.Submit(ctx, usecase.SubmitRequestInput{
		Requestor:   patientRequestor(),
		PatientName: "Rahim Uddin",
		PatientAge:  42,
		Reason:      "surgery",
		BloodGroup:  entity.BloodGroupBPositive,
		Units:       450,
		PostalCode:  "1207",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, 450, request.Units)
	assert.False(t, request.Urgent)
	assert.Nil(t, request.DecidedAt)
}

func TestRequestService_Submit_UrgentPublishesEvent(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BloodRequest")).
		Return(nil)

	var published *service.AlertEvent
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, event *service.AlertEvent) {
			published = event
		}).
		Return(nil)

	request, err := fx.service.Submit(ctx, usecase.SubmitRequestInput{
		Requestor:  entity.RequestorRef{Kind: entity.RequestorAnonymous, ContactPhone: "01712345678"},
		BloodGroup: entity.BloodGroupONegative,
		Units:      450,
		Urgent:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.AlertEventUrgentRequest, published.Kind)
	assert.Equal(t, request.ID.String(), published.BloodReqID)
}

func TestRequestService_Submit_PublishFailureDoesNotFailSubmission(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BloodRequest")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(assert.AnError)

	_, err := fx.service.Submit(ctx, usecase.SubmitRequestInput{
		Requestor:  entity.RequestorRef{Kind: entity.RequestorAnonymous},
		BloodGroup: entity.BloodGroupAPositive,
		Units:      100,
		Urgent:     true,
	})
	require.NoError(t, err)
}

func TestRequestService_Submit_MalformedRequestor(t *testing.T) {
	fx := createTestRequestService(t)
	patientID := uuid.New()
	donorID := uuid.New()

	cases := []struct {
		name      string
		requestor entity.RequestorRef
	}{
		{"both bindings set", entity.RequestorRef{Kind: entity.RequestorPatient, PatientID: &patientID, DonorID: &donorID}},
		{"patient kind without binding", entity.RequestorRef{Kind: entity.RequestorPatient}},
		{"donor kind without binding", entity.RequestorRef{Kind: entity.RequestorDonor}},
		{"anonymous with binding", entity.RequestorRef{Kind: entity.RequestorAnonymous, PatientID: &patientID}},
		{"unknown kind", entity.RequestorRef{Kind: "admin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.service.Submit(context.Background(), usecase.SubmitRequestInput{
				Requestor:  tc.requestor,
				BloodGroup: entity.BloodGroupAPositive,
				Units:      100,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrMalformedRequestor)
		})
	}
}

func TestRequestService_Submit_InvalidInput(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	_, err := fx.service.Submit(ctx, usecase.SubmitRequestInput{
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroup("Z-"),
		Units:      100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)

	_, err = fx.service.Submit(ctx, usecase.SubmitRequestInput{
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroupAPositive,
		Units:      0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNonPositiveUnits)

	_, err = fx.service.Submit(ctx, usecase.SubmitRequestInput{
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroupAPositive,
		Units:      -3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNonPositiveUnits)
}

func TestRequestService_Approve_DebitsStockAtomically(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	pending := &entity.BloodRequest{
		ID:         requestID,
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroupBPositive,
		Units:      450,
		Status:     entity.StatusPending,
	}

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewRequestRepository().Return(fx.requestRepo)
	fx.factory.EXPECT().NewStockRepository().Return(fx.stockRepo)

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(pending, nil)
	fx.requestRepo.EXPECT().
		TransitionStatus(ctx, requestID, entity.StatusPending, entity.StatusApproved, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.stockRepo.EXPECT().
		AdjustUnits(ctx, entity.BloodGroupBPositive, -450).
		Return(true, nil)
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	err := fx.service.Approve(ctx, requestID)
	require.NoError(t, err)
}

func TestRequestService_Approve_InsufficientStock(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	pending := &entity.BloodRequest{
		ID:         requestID,
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroupONegative,
		Units:      900,
		Status:     entity.StatusPending,
	}

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewRequestRepository().Return(fx.requestRepo)
	fx.factory.EXPECT().NewStockRepository().Return(fx.stockRepo)

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(pending, nil)
	fx.requestRepo.EXPECT().
		TransitionStatus(ctx, requestID, entity.StatusPending, entity.StatusApproved, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.stockRepo.EXPECT().
		AdjustUnits(ctx, entity.BloodGroupONegative, -900).
		Return(false, nil)

	err := fx.service.Approve(ctx, requestID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestRequestService_Approve_AlreadyDecided(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	decided := &entity.BloodRequest{
		ID:         requestID,
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroupAPositive,
		Units:      450,
		Status:     entity.StatusRejected,
	}

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewRequestRepository().Return(fx.requestRepo)

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(decided, nil)
	fx.requestRepo.EXPECT().
		TransitionStatus(ctx, requestID, entity.StatusPending, entity.StatusApproved, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	err := fx.service.Approve(ctx, requestID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestRequestService_Approve_NotFound(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewRequestRepository().Return(fx.requestRepo)

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(nil, repository.ErrRequestNotFound)

	err := fx.service.Approve(ctx, requestID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestRequestService_Reject_Success(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	pending := &entity.BloodRequest{
		ID:         requestID,
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroupABPositive,
		Units:      200,
		Status:     entity.StatusPending,
	}

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(pending, nil)
	fx.requestRepo.EXPECT().
		TransitionStatus(ctx, requestID, entity.StatusPending, entity.StatusRejected, mock.AnythingOfType("time.Time")).
		Return(true, nil)

	var published *service.AlertEvent
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, event *service.AlertEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.Reject(ctx, requestID, "stock reserved for surgery schedule")
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.AlertEventRequestDecided, published.Kind)
	assert.Equal(t, entity.StatusRejected.String(), published.Decision)
	assert.Equal(t, "stock reserved for surgery schedule", published.Reason)
}

func TestRequestService_Reject_AlreadyDecided(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	approved := &entity.BloodRequest{
		ID:         requestID,
		Requestor:  patientRequestor(),
		BloodGroup: entity.BloodGroupAPositive,
		Units:      100,
		Status:     entity.StatusApproved,
	}

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(approved, nil)
	fx.requestRepo.EXPECT().
		TransitionStatus(ctx, requestID, entity.StatusPending, entity.StatusRejected, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	err := fx.service.Reject(ctx, requestID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestRequestService_PendingRequests(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.requestRepo.EXPECT().
		ListByStatus(ctx, entity.StatusPending, 20, 0).
		Return([]*entity.BloodRequest{{ID: uuid.New()}}, nil)

	requests, err := fx.service.PendingRequests(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}
