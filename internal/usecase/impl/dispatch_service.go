package impl

import (
	"context"
	"log/slog"
	"time"

	"bloodbridge/config"
	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/domain/service"
	"bloodbridge/internal/errors"
	"bloodbridge/internal/usecase"
	"bloodbridge/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dispatchService struct {
	alertRepo repository.AlertRepository
	txManager repository.TransactionManager
	smsSvc    service.SMSService
	pushSvc   service.PushService
	cfg       *config.AlertConfig
	logger    *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	AlertRepo repository.AlertRepository
	TxManager repository.TransactionManager
	SMSSvc    service.SMSService
	PushSvc   service.PushService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDispatchService creates the alert dispatcher.
func NewDispatchService(params DispatchServiceParams) usecase.DispatcherUsecase {
	return &dispatchService{
		alertRepo: params.AlertRepo,
		txManager: params.TxManager,
		smsSvc:    params.SMSSvc,
		pushSvc:   params.PushSvc,
		cfg:       params.Config.Alert,
		logger:    params.Logger,
	}
}

// Dispatch claims one alert job per eligible donor. Each donor is processed
// in its own short transaction: the duplicate check, the throttle claim, and
// the job insert commit together, so two concurrent dispatches for the same
// donor cannot both create a job. A skipped donor never aborts the pass.
func (s *dispatchService) Dispatch(ctx context.Context, donors []*entity.Donor, request *entity.BloodRequest) (*usecase.DispatchResult, error) {
	result := &usecase.DispatchResult{}
	now := time.Now()
	cutoff := now.Add(-s.cfg.MinNotificationGap)

	for _, donor := range donors {
		channel, recipient := s.route(donor)
		if recipient == "" {
			result.Unroutable++

			continue
		}

		err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			alertRepo := factory.NewAlertRepository()

			active, err := alertRepo.HasActiveJob(ctx, donor.ID, request.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check active alert job")
			}
			if active {
				result.Duplicate++

				return nil
			}

			claimed, err := factory.NewDonorRepository().ClaimNotificationSlot(ctx, donor.ID, now, cutoff)
			if err != nil {
				return errors.Wrap(err, "failed to claim notification slot")
			}
			if !claimed {
				result.Throttled++

				return nil
			}

			job := &entity.AlertJob{
				ID:         uuid.New(),
				DonorID:    donor.ID,
				RequestID:  request.ID,
				Channel:    channel,
				Recipient:  recipient,
				Message:    truncate(renderDonorAlert(request), s.cfg.MessageMaxLength),
				Status:     entity.AlertJobPending,
				EnqueuedAt: now,
			}
			if err := alertRepo.CreateJob(ctx, job); err != nil {
				// Lost a race with a concurrent dispatch; treat as duplicate.
				if errors.Is(err, repository.ErrDuplicateAlertJob) {
					result.Duplicate++

					return nil
				}

				return errors.Wrap(err, "failed to create alert job")
			}

			result.Claimed++

			return nil
		})
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// Deliver sends every Pending job for a request. Each job is claimed with
// a guarded Pending-to-Sent update before any channel I/O, so a redelivered
// event racing a live pass cannot send the same job twice. Channel I/O
// happens outside any transaction; each job's outcome is recorded
// independently and a channel failure never aborts the remaining jobs.
func (s *dispatchService) Deliver(ctx context.Context, requestID uuid.UUID) (*usecase.DeliveryResult, error) {
	jobs, err := s.alertRepo.ListPendingByRequest(ctx, requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending alert jobs")
	}

	result := &usecase.DeliveryResult{}
	for _, job := range jobs {
		now := time.Now()

		claimed, err := s.alertRepo.ClaimForSend(ctx, job.ID, now)
		if err != nil {
			return result, errors.Wrap(err, "failed to claim alert job for send")
		}
		if !claimed {
			// A concurrent delivery pass took the job between our listing
			// and the claim.
			result.Skipped++

			continue
		}

		if sendErr := s.send(ctx, job); sendErr != nil {
			s.logger.Warn("alert delivery failed",
				slog.String("job_id", job.ID.String()),
				slog.String("channel", job.Channel.String()),
				slog.Any("error", sendErr))
			if err := s.alertRepo.MarkFailed(ctx, job.ID, time.Now(), sendErr.Error()); err != nil {
				return result, errors.Wrap(err, "failed to mark alert job failed")
			}
			result.Failed++

			continue
		}

		result.Sent++
	}

	return result, nil
}

// route picks the channel for a donor: push when a device token is
// registered, SMS otherwise. An empty recipient means the donor is
// unreachable on every channel.
func (s *dispatchService) route(donor *entity.Donor) (entity.AlertChannel, string) {
	if donor.FCMToken != "" {
		return entity.AlertChannelPush, donor.FCMToken
	}

	phone := util.NormalizePhone(donor.Phone, s.cfg.DefaultCountryCode)

	return entity.AlertChannelSMS, phone
}

func (s *dispatchService) send(ctx context.Context, job *entity.AlertJob) error {
	switch job.Channel {
	case entity.AlertChannelPush:
		return s.pushSvc.SendPush(ctx, job.Recipient, alertTitle, job.Message, map[string]string{
			"request_id": job.RequestID.String(),
		})
	case entity.AlertChannelSMS:
		return s.smsSvc.SendSMS(ctx, job.Recipient, job.Message)
	default:
		return errors.Errorf("unknown alert channel: %s", job.Channel)
	}
}
