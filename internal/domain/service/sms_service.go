package service

import (
	"context"
)

// SMSService defines the interface for the outbound SMS channel.
// It is invoked only by the alert worker, never inline with an
// approval transaction.
type SMSService interface {
	// SendSMS delivers one message to an E.164 phone number. The returned
	// error describes a channel failure; the caller logs it and marks the
	// job failed without retrying.
	SendSMS(ctx context.Context, phoneNumber, message string) error
}

// PushService defines the interface for push notification delivery to a
// registered device token.
type PushService interface {
	// SendPush delivers one push notification to a device token.
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}
