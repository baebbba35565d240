package model

import (
	"time"

	"github.com/google/uuid"
)

// DonorModel is the GORM-specific struct for the 'donors' table.
// LastNotifiedAt backs the dispatch throttle; it is only ever written by
// the conditional claim update.
type DonorModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	BloodGroup            string    `gorm:"type:varchar(3);not null;index:idx_donors_group_available"`
	Phone                 string    `gorm:"type:varchar(32);not null"`
	Address               string    `gorm:"type:text"`
	PostalCode            string    `gorm:"type:varchar(16);index"`
	Latitude              *float64
	Longitude             *float64
	LocationVerified      bool   `gorm:"not null;default:false"`
	FCMToken              string `gorm:"type:text"`
	Available             bool   `gorm:"not null;default:true;index:idx_donors_group_available"`
	AvailabilityUpdatedAt *time.Time
	LastNotifiedAt        *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonorModel) TableName() string {
	return "donors"
}

// PatientModel is the GORM-specific struct for the 'patients' table.
type PatientModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	BloodGroup string    `gorm:"type:varchar(3);not null"`
	Phone      string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
