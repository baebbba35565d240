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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new blood request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.BloodRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMalformedRequestor.WrapMessage("unknown patient or donor reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("request violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blood request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindByID retrieves a blood request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	var requestM model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// TransitionStatus moves a request between statuses with a guarded update.
// The WHERE clause carries the expected current status, so of two
// concurrent deciders exactly one sees RowsAffected == 1.
func (repo *requestRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.Status, decidedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"decided_at": decidedAt,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to transition request status")
	}

	return result.RowsAffected > 0, nil
}

// ListByStatus retrieves requests in a given status, newest first.
func (repo *requestRepository) ListByStatus(ctx context.Context, status entity.Status, limit, offset int) ([]*entity.BloodRequest, error) {
	var requestModels []*model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by status")
	}

	return toRequestDomainSlice(requestModels), nil
}

// ListDecided retrieves requests that have left Pending, newest decision first.
func (repo *requestRepository) ListDecided(ctx context.Context, limit, offset int) ([]*entity.BloodRequest, error) {
	var requestModels []*model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status <> ?", entity.StatusPending.String()).
		Order("decided_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list decided requests")
	}

	return toRequestDomainSlice(requestModels), nil
}

// CountByStatus returns the number of requests in a given status.
func (repo *requestRepository) CountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count requests by status")
	}

	return count, nil
}

// --- Mappers ---

func toRequestDomain(data *model.BloodRequestModel) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID: data.ID,
		Requestor: entity.RequestorRef{
			Kind:         entity.RequestorKind(data.RequestorKind),
			PatientID:    data.PatientID,
			DonorID:      data.DonorID,
			ContactPhone: data.ContactPhone,
		},
		PatientName: data.PatientName,
		PatientAge:  data.PatientAge,
		Reason:      data.Reason,
		BloodGroup:  entity.BloodGroup(data.BloodGroup),
		Units:       data.Units,
		PostalCode:  data.PostalCode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Urgent:      data.Urgent,
		Status:      entity.Status(data.Status),
		CreatedAt:   data.CreatedAt,
		DecidedAt:   data.DecidedAt,
	}
}

func toRequestDomainSlice(data []*model.BloodRequestModel) []*entity.BloodRequest {
	requests := make([]*entity.BloodRequest, 0, len(data))
	for _, requestM := range data {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

func fromRequestDomain(data *entity.BloodRequest) *model.BloodRequestModel {
	return &model.BloodRequestModel{
		ID:            data.ID,
		RequestorKind: data.Requestor.Kind.String(),
		PatientID:     data.Requestor.PatientID,
		DonorID:       data.Requestor.DonorID,
		ContactPhone:  data.Requestor.ContactPhone,
		PatientName:   data.PatientName,
		PatientAge:    data.PatientAge,
		Reason:        data.Reason,
		BloodGroup:    data.BloodGroup.String(),
		Units:         data.Units,
		PostalCode:    data.PostalCode,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Urgent:        data.Urgent,
		Status:        data.Status.String(),
		CreatedAt:     data.CreatedAt,
		DecidedAt:     data.DecidedAt,
	}
}
