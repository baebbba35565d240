// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodRequest represents a request for blood units awaiting an admin decision.
type BloodRequest struct {
	ID          uuid.UUID    `json:"id"`           // The Global Unique Identifier (GUID) for the request.
	Requestor   RequestorRef `json:"requestor"`    // Who submitted the request (patient, donor, or anonymous).
	PatientName string       `json:"patient_name"` // Name of the person the blood is for.
	PatientAge  int          `json:"patient_age"`  // Age of the person the blood is for.
	Reason      string       `json:"reason"`       // Free-text reason given on the submission form.
	BloodGroup  BloodGroup   `json:"blood_group"`  // Requested blood group.
	Units       int          `json:"units"`        // Requested amount in ml; always positive.
	PostalCode  string       `json:"postal_code"`  // Postal code of the requesting hospital/location, if known.
	Latitude    *float64     `json:"latitude"`     // Resolved request coordinates; written upstream, never by the core.
	Longitude   *float64     `json:"longitude"`
	Urgent      bool         `json:"urgent"`     // Urgent requests trigger donor matching on submission.
	Status      Status       `json:"status"`     // Pending until approved or rejected; then immutable.
	CreatedAt   time.Time    `json:"created_at"` // Timestamp of when this record was created.
	DecidedAt   *time.Time   `json:"decided_at"` // Timestamp of the approve/reject decision, if any.
}

// HasLocation reports whether the request carries resolved coordinates.
func (r *BloodRequest) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}
