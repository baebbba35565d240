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

// donorRepository implements the repository.DonorRepository interface.
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository is the constructor for donorRepository.
func NewDonorRepository(db *gorm.DB) repository.DonorRepository {
	return &donorRepository{
		db: db,
	}
}

// Create persists a new donor profile.
func (repo *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)

	if err := repo.db.WithContext(ctx).Create(donorM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("donor violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donor")
	}

	donor.ID = donorM.ID
	donor.CreatedAt = donorM.CreatedAt
	donor.UpdatedAt = donorM.UpdatedAt

	return nil
}

// FindByID retrieves a donor by their unique ID.
func (repo *donorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	var donorM model.DonorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor by ID")
	}

	return toDonorDomain(&donorM), nil
}

// FindCandidates retrieves all available donors of a blood group. The fixed
// ID ordering gives the matcher a stable snapshot to rank.
func (repo *donorRepository) FindCandidates(ctx context.Context, group entity.BloodGroup) ([]*entity.Donor, error) {
	var donorModels []*model.DonorModel

	if err := repo.db.WithContext(ctx).
		Where("blood_group = ? AND available = ?", group.String(), true).
		Order("id ASC").
		Find(&donorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donor candidates")
	}

	donors := make([]*entity.Donor, 0, len(donorModels))
	for _, donorM := range donorModels {
		donors = append(donors, toDonorDomain(donorM))
	}

	return donors, nil
}

// ClaimNotificationSlot sets last_notified_at = now behind a guard on the
// previous value. Of two concurrent claims inside the throttle window only
// one update matches, so only one dispatch proceeds for this donor.
func (repo *donorRepository) ClaimNotificationSlot(ctx context.Context, donorID uuid.UUID, now, cutoff time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ? AND (last_notified_at IS NULL OR last_notified_at <= ?)", donorID, cutoff).
		Update("last_notified_at", now)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim notification slot")
	}

	return result.RowsAffected > 0, nil
}

// UpdateAvailability toggles the donor's alert availability.
func (repo *donorRepository) UpdateAvailability(ctx context.Context, donorID uuid.UUID, available bool, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ?", donorID).
		Updates(map[string]any{
			"available":               available,
			"availability_updated_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update donor availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// UpdateLocation writes upstream-resolved coordinates onto the donor record.
func (repo *donorRepository) UpdateLocation(ctx context.Context, donorID uuid.UUID, lat, lon float64, postalCode string, verified bool) error {
	updates := map[string]any{
		"latitude":          lat,
		"longitude":         lon,
		"location_verified": verified,
	}
	if postalCode != "" {
		updates["postal_code"] = postalCode
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ?", donorID).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update donor location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// patientRepository implements the repository.PatientRepository interface.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{
		db: db,
	}
}

// Create persists a new patient profile.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt

	return nil
}

// FindByID retrieves a patient by their unique ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by ID")
	}

	return toPatientDomain(&patientM), nil
}

// --- Mappers ---

func toDonorDomain(data *model.DonorModel) *entity.Donor {
	return &entity.Donor{
		ID:                    data.ID,
		Name:                  data.Name,
		BloodGroup:            entity.BloodGroup(data.BloodGroup),
		Phone:                 data.Phone,
		Address:               data.Address,
		PostalCode:            data.PostalCode,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		LocationVerified:      data.LocationVerified,
		FCMToken:              data.FCMToken,
		Available:             data.Available,
		AvailabilityUpdatedAt: data.AvailabilityUpdatedAt,
		LastNotifiedAt:        data.LastNotifiedAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromDonorDomain(data *entity.Donor) *model.DonorModel {
	return &model.DonorModel{
		ID:                    data.ID,
		Name:                  data.Name,
		BloodGroup:            data.BloodGroup.String(),
		Phone:                 data.Phone,
		Address:               data.Address,
		PostalCode:            data.PostalCode,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		LocationVerified:      data.LocationVerified,
		FCMToken:              data.FCMToken,
		Available:             data.Available,
		AvailabilityUpdatedAt: data.AvailabilityUpdatedAt,
		LastNotifiedAt:        data.LastNotifiedAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	return &entity.Patient{
		ID:         data.ID,
		Name:       data.Name,
		BloodGroup: entity.BloodGroup(data.BloodGroup),
		Phone:      data.Phone,
		CreatedAt:  data.CreatedAt,
	}
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	return &model.PatientModel{
		ID:         data.ID,
		Name:       data.Name,
		BloodGroup: data.BloodGroup.String(),
		Phone:      data.Phone,
		CreatedAt:  data.CreatedAt,
	}
}
