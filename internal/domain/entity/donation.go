// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodDonation represents an offered donation awaiting an admin decision.
// Donations are never anonymous; DonorID is always populated.
type BloodDonation struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the donation.
	DonorID    uuid.UUID  `json:"donor_id"`    // The donor offering the blood.
	Disease    string     `json:"disease"`     // Self-reported condition from the intake form.
	Age        int        `json:"age"`         // Donor age at submission time.
	BloodGroup BloodGroup `json:"blood_group"` // Offered blood group.
	Units      int        `json:"units"`       // Offered amount in ml; always positive.
	Status     Status     `json:"status"`      // Pending until approved or rejected; then immutable.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this record was created.
	DecidedAt  *time.Time `json:"decided_at"`  // Timestamp of the approve/reject decision, if any.
}
