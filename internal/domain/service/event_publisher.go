package service

import (
	"context"
)

// Alert event kinds consumed by the alert worker.
const (
	// AlertEventUrgentRequest asks the worker to match donors for an urgent
	// request and dispatch alert jobs to them.
	AlertEventUrgentRequest = "urgent_request"
	// AlertEventRequestDecided asks the worker to notify the requestor of an
	// approve/reject decision.
	AlertEventRequestDecided = "request_decided"
	// AlertEventDonationDecided asks the worker to notify the donor of an
	// approve/reject decision.
	AlertEventDonationDecided = "donation_decided"
)

// AlertEvent represents a unit of notification work handed across the
// asynchronous boundary. Submissions and approvals publish events and
// return; all channel I/O happens on the worker side.
type AlertEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Kind       string `json:"kind"`
	BloodReqID string `json:"blood_request_id,omitempty"`
	DonationID string `json:"donation_id,omitempty"`
	Decision   string `json:"decision,omitempty"` // Approved or Rejected, for decided events
	Reason     string `json:"reason,omitempty"`   // Optional admin-supplied rejection reason
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
