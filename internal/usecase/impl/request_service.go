package impl

import (
	"context"
	"log/slog"
	"time"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/domain/service"
	"bloodbridge/internal/errors"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
)

type requestService struct {
	requestRepo repository.RequestRepository
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewRequestService creates the blood request workflow service.
func NewRequestService(
	requestRepo repository.RequestRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RequestUsecase {
	return &requestService{
		requestRepo: requestRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Submit validates and creates a Pending request. Urgent submissions publish
// an alert event after the record is persisted; a publish failure is logged
// and swallowed so the submission itself never fails on notification issues.
func (s *requestService) Submit(ctx context.Context, input usecase.SubmitRequestInput) (*entity.BloodRequest, error) {
	if err := validateRequestInput(input); err != nil {
		return nil, err
	}

	request := &entity.BloodRequest{
		ID:          uuid.New(),
		Requestor:   input.Requestor,
		PatientName: input.PatientName,
		PatientAge:  input.PatientAge,
		Reason:      input.Reason,
		BloodGroup:  input.BloodGroup,
		Units:       input.Units,
		PostalCode:  input.PostalCode,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Urgent:      input.Urgent,
		Status:      entity.StatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create blood request")
	}

	if request.Urgent {
		event := &service.AlertEvent{
			Kind:       service.AlertEventUrgentRequest,
			BloodReqID: request.ID.String(),
		}
		if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
			s.logger.Error("failed to publish urgent request event",
				slog.String("request_id", request.ID.String()),
				slog.Any("error", err))
		}
	}

	return request, nil
}

// Approve moves the request to Approved and debits the ledger in one
// transaction. The status transition and the stock debit either both
// happen or neither does.
func (s *requestService) Approve(ctx context.Context, id uuid.UUID) error {
	var approved *entity.BloodRequest

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		requestRepo := factory.NewRequestRepository()

		request, err := requestRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to find blood request")
		}

		moved, err := requestRepo.TransitionStatus(ctx, id, entity.StatusPending, entity.StatusApproved, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to transition request status")
		}
		if !moved {
			return domainerrors.ErrInvalidStateTransition.WithDetails(request.Status.String())
		}

		debited, err := factory.NewStockRepository().AdjustUnits(ctx, request.BloodGroup, -request.Units)
		if err != nil {
			return errors.Wrap(err, "failed to debit stock")
		}
		if !debited {
			// Rolls back the status transition as well.
			return domainerrors.ErrInsufficientStock
		}

		approved = request

		return nil
	})
	if err != nil {
		return err
	}

	s.publishDecision(ctx, approved.ID, entity.StatusApproved, "")

	return nil
}

// Reject moves the request to Rejected. The ledger is untouched.
func (s *requestService) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to find blood request")
	}

	moved, err := s.requestRepo.TransitionStatus(ctx, id, entity.StatusPending, entity.StatusRejected, time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to transition request status")
	}
	if !moved {
		return domainerrors.ErrInvalidStateTransition.WithDetails(request.Status.String())
	}

	s.publishDecision(ctx, id, entity.StatusRejected, reason)

	return nil
}

// GetRequest retrieves a request by ID.
func (s *requestService) GetRequest(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood request")
	}

	return request, nil
}

// PendingRequests lists requests awaiting a decision, newest first.
func (s *requestService) PendingRequests(ctx context.Context, limit, offset int) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.ListByStatus(ctx, entity.StatusPending, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending requests")
	}

	return requests, nil
}

// RequestHistory lists decided requests, newest first.
func (s *requestService) RequestHistory(ctx context.Context, limit, offset int) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.ListDecided(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list decided requests")
	}

	return requests, nil
}

// publishDecision hands the decision notification across the async
// boundary. Failures are logged, never propagated: the decision itself
// already committed.
func (s *requestService) publishDecision(ctx context.Context, id uuid.UUID, decision entity.Status, reason string) {
	event := &service.AlertEvent{
		Kind:       service.AlertEventRequestDecided,
		BloodReqID: id.String(),
		Decision:   decision.String(),
		Reason:     reason,
	}
	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish request decision event",
			slog.String("request_id", id.String()),
			slog.String("decision", decision.String()),
			slog.Any("error", err))
	}
}

func validateRequestInput(input usecase.SubmitRequestInput) error {
	if !input.Requestor.IsWellFormed() {
		return domainerrors.ErrMalformedRequestor
	}
	if !input.BloodGroup.IsValid() {
		return domainerrors.ErrInvalidBloodGroup.WithDetails(input.BloodGroup.String())
	}
	if input.Units <= 0 {
		return domainerrors.ErrNonPositiveUnits
	}

	return nil
}
