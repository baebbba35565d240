package postgres

import (
	"context"
	"time"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// Create persists a new blood donation.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.BloodDonation) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDonorNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("donation violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blood donation")
	}

	donation.ID = donationM.ID
	donation.CreatedAt = donationM.CreatedAt

	return nil
}

// FindByID retrieves a blood donation by its unique ID.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodDonation, error) {
	var donationM model.BloodDonationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// TransitionStatus moves a donation between statuses with a guarded update,
// mirroring the request transition semantics.
func (repo *donationRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.Status, decidedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BloodDonationModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"decided_at": decidedAt,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to transition donation status")
	}

	return result.RowsAffected > 0, nil
}

// ListByStatus retrieves donations in a given status, newest first.
func (repo *donationRepository) ListByStatus(ctx context.Context, status entity.Status, limit, offset int) ([]*entity.BloodDonation, error) {
	var donationModels []*model.BloodDonationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations by status")
	}

	return toDonationDomainSlice(donationModels), nil
}

// ListByDonor retrieves all donations offered by a donor, newest first.
func (repo *donationRepository) ListByDonor(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entity.BloodDonation, error) {
	var donationModels []*model.BloodDonationModel

	if err := repo.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations by donor")
	}

	return toDonationDomainSlice(donationModels), nil
}

// CountByStatus returns the number of donations in a given status.
func (repo *donationRepository) CountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BloodDonationModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count donations by status")
	}

	return count, nil
}

// --- Mappers ---

func toDonationDomain(data *model.BloodDonationModel) *entity.BloodDonation {
	return &entity.BloodDonation{
		ID:         data.ID,
		DonorID:    data.DonorID,
		Disease:    data.Disease,
		Age:        data.Age,
		BloodGroup: entity.BloodGroup(data.BloodGroup),
		Units:      data.Units,
		Status:     entity.Status(data.Status),
		CreatedAt:  data.CreatedAt,
		DecidedAt:  data.DecidedAt,
	}
}

func toDonationDomainSlice(data []*model.BloodDonationModel) []*entity.BloodDonation {
	donations := make([]*entity.BloodDonation, 0, len(data))
	for _, donationM := range data {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations
}

func fromDonationDomain(data *entity.BloodDonation) *model.BloodDonationModel {
	return &model.BloodDonationModel{
		ID:         data.ID,
		DonorID:    data.DonorID,
		Disease:    data.Disease,
		Age:        data.Age,
		BloodGroup: data.BloodGroup.String(),
		Units:      data.Units,
		Status:     data.Status.String(),
		CreatedAt:  data.CreatedAt,
		DecidedAt:  data.DecidedAt,
	}
}
