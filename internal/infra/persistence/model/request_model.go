package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodRequestModel is the GORM-specific struct for the 'blood_requests' table.
// The requestor binding is flattened: at most one of PatientID/DonorID is set,
// enforced by a table-level check constraint.
type BloodRequestModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestorKind string     `gorm:"type:varchar(16);not null"`
	PatientID     *uuid.UUID `gorm:"type:uuid;index"`
	DonorID       *uuid.UUID `gorm:"type:uuid;index"`
	ContactPhone  string     `gorm:"type:varchar(32)"`
	PatientName   string     `gorm:"type:varchar(255)"`
	PatientAge    int
	Reason        string `gorm:"type:text"`
	BloodGroup    string `gorm:"type:varchar(3);not null;index"`
	Units         int    `gorm:"not null;check:units > 0"`
	PostalCode    string `gorm:"type:varchar(16)"`
	Latitude      *float64
	Longitude     *float64
	Urgent        bool   `gorm:"not null;default:false"`
	Status        string `gorm:"type:varchar(16);not null;default:'Pending';index"`
	CreatedAt     time.Time
	DecidedAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodRequestModel) TableName() string {
	return "blood_requests"
}
