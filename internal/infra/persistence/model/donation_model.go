package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodDonationModel is the GORM-specific struct for the 'blood_donations' table.
type BloodDonationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Disease    string    `gorm:"type:text"`
	Age        int
	BloodGroup string `gorm:"type:varchar(3);not null;index"`
	Units      int    `gorm:"not null;check:units > 0"`
	Status     string `gorm:"type:varchar(16);not null;default:'Pending';index"`
	CreatedAt  time.Time
	DecidedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodDonationModel) TableName() string {
	return "blood_donations"
}
