// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertChannel identifies the outbound channel an alert job uses.
type AlertChannel string

const (
	// AlertChannelSMS delivers through the SMS port (AWS SNS in production).
	AlertChannelSMS AlertChannel = "sms"
	// AlertChannelPush delivers through FCM to a registered device token.
	AlertChannelPush AlertChannel = "push"
)

// String returns the string representation of the AlertChannel.
func (c AlertChannel) String() string {
	return string(c)
}

// AlertJobState is the delivery state of a single alert job.
type AlertJobState string

const (
	// AlertJobPending means the job is claimed but not yet sent.
	AlertJobPending AlertJobState = "pending"
	// AlertJobSent means the channel accepted the message.
	AlertJobSent AlertJobState = "sent"
	// AlertJobFailed means the channel rejected or timed out; jobs are not retried.
	AlertJobFailed AlertJobState = "failed"
)

// String returns the string representation of the AlertJobState.
func (s AlertJobState) String() string {
	return string(s)
}

// IsActive reports whether the job still blocks re-dispatch for its
// (donor, request) idempotency key. Failed jobs do not.
func (s AlertJobState) IsActive() bool {
	return s == AlertJobPending || s == AlertJobSent
}

// AlertJob is one queued notification for one donor about one request.
// At most one Pending/Sent job may exist per (DonorID, RequestID) pair;
// a unique index on that pair backs the idempotency key.
type AlertJob struct {
	ID           uuid.UUID     `json:"id"`            // The Global Unique Identifier (GUID) for the job.
	DonorID      uuid.UUID     `json:"donor_id"`      // Target donor.
	RequestID    uuid.UUID     `json:"request_id"`    // Originating blood request.
	Channel      AlertChannel  `json:"channel"`       // Channel chosen at dispatch time.
	Recipient    string        `json:"recipient"`     // E.164 number or device token, per channel.
	Message      string        `json:"message"`       // Rendered message body.
	Status       AlertJobState `json:"status"`        // pending, sent, or failed.
	ErrorMessage string        `json:"error_message"` // Channel error when the job failed.
	EnqueuedAt   time.Time     `json:"enqueued_at"`   // Timestamp of when the job was claimed.
	SentAt       *time.Time    `json:"sent_at"`       // Timestamp of the send attempt outcome, if any.
}
