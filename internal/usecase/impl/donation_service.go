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

type donationService struct {
	donationRepo repository.DonationRepository
	donorRepo    repository.DonorRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewDonationService creates the blood donation workflow service.
func NewDonationService(
	donationRepo repository.DonationRepository,
	donorRepo repository.DonorRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DonationUsecase {
	return &donationService{
		donationRepo: donationRepo,
		donorRepo:    donorRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// Submit validates and creates a Pending donation.
func (s *donationService) Submit(ctx context.Context, input usecase.SubmitDonationInput) (*entity.BloodDonation, error) {
	if !input.BloodGroup.IsValid() {
		return nil, domainerrors.ErrInvalidBloodGroup.WithDetails(input.BloodGroup.String())
	}
	if input.Units <= 0 {
		return nil, domainerrors.ErrNonPositiveUnits
	}

	if _, err := s.donorRepo.FindByID(ctx, input.DonorID); err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor")
	}

	donation := &entity.BloodDonation{
		ID:         uuid.New(),
		DonorID:    input.DonorID,
		Disease:    input.Disease,
		Age:        input.Age,
		BloodGroup: input.BloodGroup,
		Units:      input.Units,
		Status:     entity.StatusPending,
		CreatedAt:  time.Now(),
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to create blood donation")
	}

	return donation, nil
}

// Approve moves the donation to Approved and credits the ledger in one
// transaction. Credits cannot fail for insufficiency, but the transition
// and the credit are still atomic so a crash between them cannot lose units.
func (s *donationService) Approve(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		donationRepo := factory.NewDonationRepository()

		donation, err := donationRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDonationNotFound) {
				return domainerrors.ErrDonationNotFound
			}

			return errors.Wrap(err, "failed to find blood donation")
		}

		moved, err := donationRepo.TransitionStatus(ctx, id, entity.StatusPending, entity.StatusApproved, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to transition donation status")
		}
		if !moved {
			return domainerrors.ErrInvalidStateTransition.WithDetails(donation.Status.String())
		}

		credited, err := factory.NewStockRepository().AdjustUnits(ctx, donation.BloodGroup, donation.Units)
		if err != nil {
			return errors.Wrap(err, "failed to credit stock")
		}
		if !credited {
			return errors.New("stock credit unexpectedly rejected")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.publishDecision(ctx, id, entity.StatusApproved, "")

	return nil
}

// Reject moves the donation to Rejected. The ledger is untouched.
func (s *donationService) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return domainerrors.ErrDonationNotFound
		}

		return errors.Wrap(err, "failed to find blood donation")
	}

	moved, err := s.donationRepo.TransitionStatus(ctx, id, entity.StatusPending, entity.StatusRejected, time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to transition donation status")
	}
	if !moved {
		return domainerrors.ErrInvalidStateTransition.WithDetails(donation.Status.String())
	}

	s.publishDecision(ctx, id, entity.StatusRejected, reason)

	return nil
}

// GetDonation retrieves a donation by ID.
func (s *donationService) GetDonation(ctx context.Context, id uuid.UUID) (*entity.BloodDonation, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood donation")
	}

	return donation, nil
}

// PendingDonations lists donations awaiting a decision, newest first.
func (s *donationService) PendingDonations(ctx context.Context, limit, offset int) ([]*entity.BloodDonation, error) {
	donations, err := s.donationRepo.ListByStatus(ctx, entity.StatusPending, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending donations")
	}

	return donations, nil
}

// DonorDonations lists a donor's donations, newest first.
func (s *donationService) DonorDonations(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entity.BloodDonation, error) {
	donations, err := s.donationRepo.ListByDonor(ctx, donorID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donor donations")
	}

	return donations, nil
}

func (s *donationService) publishDecision(ctx context.Context, id uuid.UUID, decision entity.Status, reason string) {
	event := &service.AlertEvent{
		Kind:       service.AlertEventDonationDecided,
		DonationID: id.String(),
		Decision:   decision.String(),
		Reason:     reason,
	}
	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish donation decision event",
			slog.String("donation_id", id.String()),
			slog.String("decision", decision.String()),
			slog.Any("error", err))
	}
}
