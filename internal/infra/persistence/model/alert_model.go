package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertJobModel is the GORM-specific struct for the 'alert_jobs' table.
// The partial unique index on (donor_id, request_id) where status is still
// active is the idempotency key for dispatch: a second claim for the same
// pair fails at insert time.
type AlertJobModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_alert_jobs_donor_request,where:status IN ('pending','sent')"`
	RequestID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_alert_jobs_donor_request,where:status IN ('pending','sent');index"`
	Channel      string    `gorm:"type:varchar(8);not null"`
	Recipient    string    `gorm:"type:text;not null"`
	Message      string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(8);not null;default:'pending';index"`
	ErrorMessage string    `gorm:"type:text"`
	EnqueuedAt   time.Time
	SentAt       *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertJobModel) TableName() string {
	return "alert_jobs"
}
