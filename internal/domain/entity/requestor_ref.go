// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// RequestorKind tags which variant of a RequestorRef is populated.
type RequestorKind string

const (
	// RequestorPatient means the request was submitted from a patient account.
	RequestorPatient RequestorKind = "patient"
	// RequestorDonor means the request was submitted from a donor account.
	RequestorDonor RequestorKind = "donor"
	// RequestorAnonymous marks quick requests submitted without an account.
	// These carry neither a patient nor a donor reference.
	RequestorAnonymous RequestorKind = "anonymous"
)

// String returns the string representation of the RequestorKind.
func (k RequestorKind) String() string {
	return string(k)
}

// IsValid checks if the RequestorKind is a valid value.
func (k RequestorKind) IsValid() bool {
	switch k {
	case RequestorPatient, RequestorDonor, RequestorAnonymous:
		return true
	default:
		return false
	}
}

// RequestorRef is a tagged union identifying who submitted a blood request.
// Exactly one of PatientID/DonorID is populated for the non-anonymous kinds;
// anonymous requests carry neither and instead hold the raw contact number
// captured on the quick-request form.
type RequestorRef struct {
	Kind         RequestorKind `json:"kind"`
	PatientID    *uuid.UUID    `json:"patient_id,omitempty"`
	DonorID      *uuid.UUID    `json:"donor_id,omitempty"`
	ContactPhone string        `json:"contact_phone,omitempty"`
}

// IsWellFormed reports whether the tagged union has exactly the bindings
// its kind demands. Two populated variants, or a non-anonymous kind with
// no binding, are both malformed.
func (r RequestorRef) IsWellFormed() bool {
	switch r.Kind {
	case RequestorPatient:
		return r.PatientID != nil && r.DonorID == nil
	case RequestorDonor:
		return r.DonorID != nil && r.PatientID == nil
	case RequestorAnonymous:
		return r.PatientID == nil && r.DonorID == nil
	default:
		return false
	}
}
