package impl

import (
	"context"
	"time"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/errors"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
)

type donorService struct {
	donorRepo repository.DonorRepository
}

// NewDonorService creates the donor profile service.
func NewDonorService(donorRepo repository.DonorRepository) usecase.DonorUsecase {
	return &donorService{donorRepo: donorRepo}
}

// Register creates a donor profile, available by default.
func (s *donorService) Register(ctx context.Context, input usecase.RegisterDonorInput) (*entity.Donor, error) {
	if !input.BloodGroup.IsValid() {
		return nil, domainerrors.ErrInvalidBloodGroup.WithDetails(input.BloodGroup.String())
	}
	if input.Name == "" || input.Phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and phone are required")
	}

	now := time.Now()
	donor := &entity.Donor{
		ID:               uuid.New(),
		Name:             input.Name,
		BloodGroup:       input.BloodGroup,
		Phone:            input.Phone,
		Address:          input.Address,
		PostalCode:       input.PostalCode,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		LocationVerified: input.Latitude != nil && input.Longitude != nil,
		FCMToken:         input.FCMToken,
		Available:        true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, errors.Wrap(err, "failed to create donor")
	}

	return donor, nil
}

// GetDonor retrieves a donor by ID.
func (s *donorService) GetDonor(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	donor, err := s.donorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor")
	}

	return donor, nil
}

// MarkAvailability toggles whether the donor accepts alerts.
func (s *donorService) MarkAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if err := s.donorRepo.UpdateAvailability(ctx, id, available, time.Now()); err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return domainerrors.ErrDonorNotFound
		}

		return errors.Wrap(err, "failed to update donor availability")
	}

	return nil
}

// UpdateLocation writes freshly resolved coordinates onto the profile.
func (s *donorService) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64, postalCode string, verified bool) error {
	if err := s.donorRepo.UpdateLocation(ctx, id, lat, lon, postalCode, verified); err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return domainerrors.ErrDonorNotFound
		}

		return errors.Wrap(err, "failed to update donor location")
	}

	return nil
}
