// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Donor represents a registered donor profile. Coordinates are resolved
// upstream (geocoding happens before the record reaches the matcher) and
// LastNotifiedAt is mutated exclusively by the alert dispatcher.
type Donor struct {
	ID                    uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the donor.
	Name                  string     `json:"name"`        // Display name.
	BloodGroup            BloodGroup `json:"blood_group"` // Donor blood group.
	Phone                 string     `json:"phone"`       // Raw phone number; normalized to E.164 before any send.
	Address               string     `json:"address"`     // Free-text street address.
	PostalCode            string     `json:"postal_code"` // Postal code used for coarse matching.
	Latitude              *float64   `json:"latitude"`    // Resolved coordinates, if geocoding succeeded.
	Longitude             *float64   `json:"longitude"`
	LocationVerified      bool       `json:"location_verified"`       // True once coordinates were confirmed against the map.
	FCMToken              string     `json:"fcm_token,omitempty"`     // Optional device token; enables the push channel.
	Available             bool       `json:"available"`               // Whether the donor accepts alerts right now.
	AvailabilityUpdatedAt *time.Time `json:"availability_updated_at"` // Timestamp of the last availability toggle.
	LastNotifiedAt        *time.Time `json:"last_notified_at"`        // Timestamp of the last alert claimed for this donor.
	CreatedAt             time.Time  `json:"created_at"`              // Timestamp of when this record was created.
	UpdatedAt             time.Time  `json:"updated_at"`              // Timestamp of the last modification.
}

// HasLocation reports whether the donor carries resolved coordinates.
func (d *Donor) HasLocation() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// Patient represents the slim patient profile the core needs for
// requestor bindings and decision notifications.
type Patient struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the patient.
	Name       string     `json:"name"`        // Display name.
	BloodGroup BloodGroup `json:"blood_group"` // Patient blood group.
	Phone      string     `json:"phone"`       // Contact number for decision notifications.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this record was created.
}
