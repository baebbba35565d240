package impl

import (
	"context"
	"log/slog"

	"bloodbridge/config"
	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/domain/service"
	"bloodbridge/internal/errors"
	"bloodbridge/internal/usecase"
	"bloodbridge/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type alertService struct {
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
	donorRepo    repository.DonorRepository
	patientRepo  repository.PatientRepository
	matcher      usecase.MatcherUsecase
	dispatcher   usecase.DispatcherUsecase
	smsSvc       service.SMSService
	cfg          *config.AlertConfig
	logger       *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	RequestRepo  repository.RequestRepository
	DonationRepo repository.DonationRepository
	DonorRepo    repository.DonorRepository
	PatientRepo  repository.PatientRepository
	Matcher      usecase.MatcherUsecase
	Dispatcher   usecase.DispatcherUsecase
	SMSSvc       service.SMSService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAlertService creates the worker-side alert orchestrator.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		requestRepo:  params.RequestRepo,
		donationRepo: params.DonationRepo,
		donorRepo:    params.DonorRepo,
		patientRepo:  params.PatientRepo,
		matcher:      params.Matcher,
		dispatcher:   params.Dispatcher,
		smsSvc:       params.SMSSvc,
		cfg:          params.Config.Alert,
		logger:       params.Logger,
	}
}

// HandleUrgentRequest matches donors for an urgent request, dispatches and
// delivers their alert jobs, then confirms back to the requestor. The
// confirmation is best-effort: by the time it is attempted, the donor
// alerts have already gone out.
func (s *alertService) HandleUrgentRequest(ctx context.Context, requestID uuid.UUID) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to find blood request")
	}

	donors, err := s.matcher.Match(ctx, request)
	if err != nil {
		return errors.Wrap(err, "failed to match donors")
	}

	dispatched, err := s.dispatcher.Dispatch(ctx, donors, request)
	if err != nil {
		return errors.Wrap(err, "failed to dispatch alert jobs")
	}

	delivered, err := s.dispatcher.Deliver(ctx, requestID)
	if err != nil {
		return errors.Wrap(err, "failed to deliver alert jobs")
	}

	s.logger.Info("urgent request processed",
		slog.String("request_id", requestID.String()),
		slog.Int("matched", len(donors)),
		slog.Int("claimed", dispatched.Claimed),
		slog.Int("throttled", dispatched.Throttled),
		slog.Int("duplicate", dispatched.Duplicate),
		slog.Int("unroutable", dispatched.Unroutable),
		slog.Int("sent", delivered.Sent),
		slog.Int("failed", delivered.Failed))

	confirmation := truncate(renderRequestorConfirmation(request, delivered.Sent), s.cfg.MessageMaxLength)
	s.sendToRequestor(ctx, request, confirmation)
	s.sendToCoordinator(ctx, confirmation, request)

	return nil
}

// NotifyRequestDecided sends the approval/rejection SMS for a request.
func (s *alertService) NotifyRequestDecided(ctx context.Context, requestID uuid.UUID, decision entity.Status, reason string) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to find blood request")
	}

	message := truncate(renderRequestDecision(request, decision, reason), s.cfg.MessageMaxLength)
	s.sendToRequestor(ctx, request, message)

	return nil
}

// NotifyDonationDecided sends the approval/rejection SMS for a donation.
func (s *alertService) NotifyDonationDecided(ctx context.Context, donationID uuid.UUID, decision entity.Status, reason string) error {
	donation, err := s.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return domainerrors.ErrDonationNotFound
		}

		return errors.Wrap(err, "failed to find blood donation")
	}

	donor, err := s.donorRepo.FindByID(ctx, donation.DonorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return domainerrors.ErrDonorNotFound
		}

		return errors.Wrap(err, "failed to find donor")
	}

	message := truncate(renderDonationDecision(donation, decision, reason), s.cfg.MessageMaxLength)
	s.sendSMS(ctx, donor.Phone, message, "donation "+donationID.String())

	return nil
}

// sendToRequestor resolves the requestor binding to a phone number and
// sends best-effort. An unreachable requestor is logged, never an error:
// the underlying workflow outcome already committed.
func (s *alertService) sendToRequestor(ctx context.Context, request *entity.BloodRequest, message string) {
	phone, err := s.requestorPhone(ctx, request)
	if err != nil {
		s.logger.Warn("failed to resolve requestor contact",
			slog.String("request_id", request.ID.String()),
			slog.Any("error", err))

		return
	}
	if phone == "" {
		return
	}

	s.sendSMS(ctx, phone, message, "request "+request.ID.String())
}

// sendToCoordinator copies urgent request traffic to the on-call
// coordinator when one is configured.
func (s *alertService) sendToCoordinator(ctx context.Context, message string, request *entity.BloodRequest) {
	if s.cfg.CoordinatorNumber == "" {
		return
	}

	s.sendSMS(ctx, s.cfg.CoordinatorNumber, message, "request "+request.ID.String())
}

func (s *alertService) requestorPhone(ctx context.Context, request *entity.BloodRequest) (string, error) {
	switch request.Requestor.Kind {
	case entity.RequestorAnonymous:
		return request.Requestor.ContactPhone, nil
	case entity.RequestorPatient:
		patient, err := s.patientRepo.FindByID(ctx, *request.Requestor.PatientID)
		if err != nil {
			return "", errors.Wrap(err, "failed to find patient")
		}

		return patient.Phone, nil
	case entity.RequestorDonor:
		donor, err := s.donorRepo.FindByID(ctx, *request.Requestor.DonorID)
		if err != nil {
			return "", errors.Wrap(err, "failed to find donor")
		}

		return donor.Phone, nil
	default:
		return "", domainerrors.ErrMalformedRequestor
	}
}

func (s *alertService) sendSMS(ctx context.Context, rawPhone, message, subject string) {
	phone := util.NormalizePhone(rawPhone, s.cfg.DefaultCountryCode)
	if phone == "" {
		s.logger.Warn("skipping SMS for unusable phone number", slog.String("subject", subject))

		return
	}

	if err := s.smsSvc.SendSMS(ctx, phone, message); err != nil {
		s.logger.Warn("notification SMS failed",
			slog.String("subject", subject),
			slog.Any("error", err))
	}
}
