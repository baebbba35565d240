// Package entity contains the core business objects of the project.
package entity

// Status is the approval state shared by blood requests and donations.
type Status string

const (
	// StatusPending is the initial state of every submission.
	StatusPending Status = "Pending"
	// StatusApproved is terminal; reaching it debits or credits the ledger.
	StatusApproved Status = "Approved"
	// StatusRejected is terminal and has no ledger effect.
	StatusRejected Status = "Rejected"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo enforces the one-way transition table:
// Pending may move to Approved or Rejected; terminal states are immutable.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}
