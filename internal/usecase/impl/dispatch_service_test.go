package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bloodbridge/config"
	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/domain/repository"
	mockRepo "bloodbridge/internal/mocks/repository"
	mockSvc "bloodbridge/internal/mocks/service"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatcher tests.
type dispatchServiceFixtures struct {
	service   usecase.DispatcherUsecase
	alertRepo *mockRepo.MockAlertRepository
	donorRepo *mockRepo.MockDonorRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	smsSvc    *mockSvc.MockSMSService
	pushSvc   *mockSvc.MockPushService
}

func testAlertConfig() *config.Config {
	return &config.Config{
		Alert: &config.AlertConfig{
			MaxRecipients:      50,
			MinNotificationGap: 24 * time.Hour,
			DefaultCountryCode: "+880",
			MessageMaxLength:   1200,
		},
	}
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	donorRepo := mockRepo.NewMockDonorRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	smsSvc := mockSvc.NewMockSMSService(t)
	pushSvc := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDispatchService(DispatchServiceParams{
		AlertRepo: alertRepo,
		TxManager: txManager,
		SMSSvc:    smsSvc,
		PushSvc:   pushSvc,
		Config:    testAlertConfig(),
		Logger:    logger,
	})

	return dispatchServiceFixtures{
		service:   service,
		alertRepo: alertRepo,
		donorRepo: donorRepo,
		txManager: txManager,
		factory:   factory,
		smsSvc:    smsSvc,
		pushSvc:   pushSvc,
	}
}

func (f dispatchServiceFixtures) passthroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func dispatchDonor(phone string) *entity.Donor {
	return &entity.Donor{
		ID:         uuid.New(),
		Name:       "donor",
		BloodGroup: entity.BloodGroupOPositive,
		Phone:      phone,
		Available:  true,
	}
}

func dispatchRequest() *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:          uuid.New(),
		Requestor:   entity.RequestorRef{Kind: entity.RequestorAnonymous},
		PatientName: "Rahim",
		BloodGroup:  entity.BloodGroupOPositive,
		Units:       450,
		PostalCode:  "1207",
		Urgent:      true,
		Status:      entity.StatusPending,
	}
}

func TestDispatchService_Dispatch_ClaimsJobs(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	donor := dispatchDonor("01712345678")
	request := dispatchRequest()

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewAlertRepository().Return(fx.alertRepo)
	fx.factory.EXPECT().NewDonorRepository().Return(fx.donorRepo)

	fx.alertRepo.EXPECT().
		HasActiveJob(ctx, donor.ID, request.ID).
		Return(false, nil)
	fx.donorRepo.EXPECT().
		ClaimNotificationSlot(ctx, donor.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(true, nil)

	var created *entity.AlertJob
	fx.alertRepo.EXPECT().
		CreateJob(ctx, mock.AnythingOfType("*entity.AlertJob")).
		Run(func(_ context.Context, job *entity.AlertJob) {
			created = job
		}).
		Return(nil)

	result, err := fx.service.Dispatch(ctx, []*entity.Donor{donor}, request)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Claimed)
	assert.Zero(t, result.Throttled)
	assert.Zero(t, result.Duplicate)
	assert.Zero(t, result.Unroutable)

	require.NotNil(t, created)
	assert.Equal(t, entity.AlertChannelSMS, created.Channel)
	assert.Equal(t, "+8801712345678", created.Recipient)
	assert.Equal(t, entity.AlertJobPending, created.Status)
	assert.Contains(t, created.Message, "O+")
	assert.Contains(t, created.Message, "Rahim")
}

func TestDispatchService_Dispatch_PrefersPushWhenTokenRegistered(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	donor := dispatchDonor("01712345678")
	donor.FCMToken = "fcm-token-123"
	request := dispatchRequest()

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewAlertRepository().Return(fx.alertRepo)
	fx.factory.EXPECT().NewDonorRepository().Return(fx.donorRepo)

	fx.alertRepo.EXPECT().
		HasActiveJob(ctx, donor.ID, request.ID).
		Return(false, nil)
	fx.donorRepo.EXPECT().
		ClaimNotificationSlot(ctx, donor.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(true, nil)

	var created *entity.AlertJob
	fx.alertRepo.EXPECT().
		CreateJob(ctx, mock.AnythingOfType("*entity.AlertJob")).
		Run(func(_ context.Context, job *entity.AlertJob) {
			created = job
		}).
		Return(nil)

	_, err := fx.service.Dispatch(ctx, []*entity.Donor{donor}, request)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.AlertChannelPush, created.Channel)
	assert.Equal(t, "fcm-token-123", created.Recipient)
}

func TestDispatchService_Dispatch_SkipsThrottledDonor(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	donor := dispatchDonor("01712345678")
	request := dispatchRequest()

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewAlertRepository().Return(fx.alertRepo)
	fx.factory.EXPECT().NewDonorRepository().Return(fx.donorRepo)

	fx.alertRepo.EXPECT().
		HasActiveJob(ctx, donor.ID, request.ID).
		Return(false, nil)
	fx.donorRepo.EXPECT().
		ClaimNotificationSlot(ctx, donor.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(false, nil)

	result, err := fx.service.Dispatch(ctx, []*entity.Donor{donor}, request)
	require.NoError(t, err)
	assert.Zero(t, result.Claimed)
	assert.Equal(t, 1, result.Throttled)
}

func TestDispatchService_Dispatch_SkipsDuplicateJob(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	donor := dispatchDonor("01712345678")
	request := dispatchRequest()

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewAlertRepository().Return(fx.alertRepo)

	fx.alertRepo.EXPECT().
		HasActiveJob(ctx, donor.ID, request.ID).
		Return(true, nil)

	result, err := fx.service.Dispatch(ctx, []*entity.Donor{donor}, request)
	require.NoError(t, err)
	assert.Zero(t, result.Claimed)
	assert.Equal(t, 1, result.Duplicate)
}

func TestDispatchService_Dispatch_RacedInsertCountsAsDuplicate(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	donor := dispatchDonor("01712345678")
	request := dispatchRequest()

	fx.passthroughTx(ctx)
	fx.factory.EXPECT().NewAlertRepository().Return(fx.alertRepo)
	fx.factory.EXPECT().NewDonorRepository().Return(fx.donorRepo)

	fx.alertRepo.EXPECT().
		HasActiveJob(ctx, donor.ID, request.ID).
		Return(false, nil)
	fx.donorRepo.EXPECT().
		ClaimNotificationSlot(ctx, donor.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.alertRepo.EXPECT().
		CreateJob(ctx, mock.AnythingOfType("*entity.AlertJob")).
		Return(repository.ErrDuplicateAlertJob)

	result, err := fx.service.Dispatch(ctx, []*entity.Donor{donor}, request)
	require.NoError(t, err)
	assert.Zero(t, result.Claimed)
	assert.Equal(t, 1, result.Duplicate)
}

func TestDispatchService_Dispatch_SkipsUnroutableDonor(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	donor := dispatchDonor("") // no phone, no token
	request := dispatchRequest()

	result, err := fx.service.Dispatch(ctx, []*entity.Donor{donor}, request)
	require.NoError(t, err)
	assert.Zero(t, result.Claimed)
	assert.Equal(t, 1, result.Unroutable)
}

func TestDispatchService_Deliver_MixedOutcomes(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	requestID := uuid.New()

	okJob := &entity.AlertJob{
		ID:        uuid.New(),
		RequestID: requestID,
		Channel:   entity.AlertChannelSMS,
		Recipient: "+8801712345678",
		Message:   "O+ blood needed",
		Status:    entity.AlertJobPending,
	}
	badJob := &entity.AlertJob{
		ID:        uuid.New(),
		RequestID: requestID,
		Channel:   entity.AlertChannelPush,
		Recipient: "dead-token",
		Message:   "O+ blood needed",
		Status:    entity.AlertJobPending,
	}

	fx.alertRepo.EXPECT().
		ListPendingByRequest(ctx, requestID).
		Return([]*entity.AlertJob{okJob, badJob}, nil)

	fx.alertRepo.EXPECT().
		ClaimForSend(ctx, okJob.ID, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.smsSvc.EXPECT().
		SendSMS(ctx, "+8801712345678", "O+ blood needed").
		Return(nil)

	fx.alertRepo.EXPECT().
		ClaimForSend(ctx, badJob.ID, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.pushSvc.EXPECT().
		SendPush(ctx, "dead-token", alertTitle, "O+ blood needed", mock.Anything).
		Return(assert.AnError)
	fx.alertRepo.EXPECT().
		MarkFailed(ctx, badJob.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("string")).
		Return(nil)

	result, err := fx.service.Deliver(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_Deliver_ConcurrentPassesSendOnce(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	requestID := uuid.New()

	job := &entity.AlertJob{
		ID:        uuid.New(),
		RequestID: requestID,
		Channel:   entity.AlertChannelSMS,
		Recipient: "+8801712345678",
		Message:   "O+ blood needed",
		Status:    entity.AlertJobPending,
	}

	// Both passes list the job as Pending, as happens when a redelivered
	// event races a live delivery. Only the first claim wins.
	fx.alertRepo.EXPECT().
		ListPendingByRequest(ctx, requestID).
		Return([]*entity.AlertJob{job}, nil).
		Twice()
	fx.alertRepo.EXPECT().
		ClaimForSend(ctx, job.ID, mock.AnythingOfType("time.Time")).
		Return(true, nil).
		Once()
	fx.alertRepo.EXPECT().
		ClaimForSend(ctx, job.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil).
		Once()
	fx.smsSvc.EXPECT().
		SendSMS(ctx, "+8801712345678", "O+ blood needed").
		Return(nil).
		Once()

	first, err := fx.service.Deliver(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Sent)
	assert.Zero(t, first.Skipped)

	second, err := fx.service.Deliver(ctx, requestID)
	require.NoError(t, err)
	assert.Zero(t, second.Sent)
	assert.Equal(t, 1, second.Skipped)
}

func TestDispatchService_Deliver_NoPendingJobs(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	requestID := uuid.New()

	fx.alertRepo.EXPECT().
		ListPendingByRequest(ctx, requestID).
		Return(nil, nil)

	result, err := fx.service.Deliver(ctx, requestID)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Failed)
}
