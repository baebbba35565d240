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

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateJob persists a new alert job. The partial unique index on
// (donor_id, request_id) turns a racing duplicate into ErrDuplicateAlertJob.
func (repo *alertRepository) CreateJob(ctx context.Context, job *entity.AlertJob) error {
	jobM := fromAlertJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAlertJob
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert job")
	}

	job.ID = jobM.ID

	return nil
}

// HasActiveJob reports whether a Pending or Sent job exists for the pair.
func (repo *alertRepository) HasActiveJob(ctx context.Context, donorID, requestID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertJobModel{}).
		Where("donor_id = ? AND request_id = ? AND status IN ?",
			donorID, requestID,
			[]string{entity.AlertJobPending.String(), entity.AlertJobSent.String()}).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check active alert job")
	}

	return count > 0, nil
}

// ListPendingByRequest retrieves Pending jobs for a request, oldest first.
func (repo *alertRepository) ListPendingByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.AlertJob, error) {
	var jobModels []*model.AlertJobModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ? AND status = ?", requestID, entity.AlertJobPending.String()).
		Order("enqueued_at ASC").
		Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending alert jobs")
	}

	return toAlertJobDomainSlice(jobModels), nil
}

// ClaimForSend transitions a job from Pending to Sent. The status guard
// makes the update a claim: when two deliverers race over the same job,
// only one sees RowsAffected > 0 and gets to touch the channel.
func (repo *alertRepository) ClaimForSend(ctx context.Context, jobID uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertJobModel{}).
		Where("id = ? AND status = ?", jobID, entity.AlertJobPending.String()).
		Updates(map[string]any{
			"status":  entity.AlertJobSent.String(),
			"sent_at": at,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim alert job for send")
	}

	return result.RowsAffected > 0, nil
}

// MarkFailed transitions a job to Failed with the channel error.
func (repo *alertRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, at time.Time, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertJobModel{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"status":        entity.AlertJobFailed.String(),
			"sent_at":       at,
			"error_message": reason,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark alert job failed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertJobNotFound
	}

	return nil
}

// ListByRequest retrieves all jobs for a request, oldest first.
func (repo *alertRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.AlertJob, error) {
	var jobModels []*model.AlertJobModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("enqueued_at ASC").
		Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alert jobs by request")
	}

	return toAlertJobDomainSlice(jobModels), nil
}

// --- Mappers ---

func toAlertJobDomain(data *model.AlertJobModel) *entity.AlertJob {
	return &entity.AlertJob{
		ID:           data.ID,
		DonorID:      data.DonorID,
		RequestID:    data.RequestID,
		Channel:      entity.AlertChannel(data.Channel),
		Recipient:    data.Recipient,
		Message:      data.Message,
		Status:       entity.AlertJobState(data.Status),
		ErrorMessage: data.ErrorMessage,
		EnqueuedAt:   data.EnqueuedAt,
		SentAt:       data.SentAt,
	}
}

func toAlertJobDomainSlice(data []*model.AlertJobModel) []*entity.AlertJob {
	jobs := make([]*entity.AlertJob, 0, len(data))
	for _, jobM := range data {
		jobs = append(jobs, toAlertJobDomain(jobM))
	}

	return jobs
}

func fromAlertJobDomain(data *entity.AlertJob) *model.AlertJobModel {
	return &model.AlertJobModel{
		ID:           data.ID,
		DonorID:      data.DonorID,
		RequestID:    data.RequestID,
		Channel:      data.Channel.String(),
		Recipient:    data.Recipient,
		Message:      data.Message,
		Status:       data.Status.String(),
		ErrorMessage: data.ErrorMessage,
		EnqueuedAt:   data.EnqueuedAt,
		SentAt:       data.SentAt,
	}
}
