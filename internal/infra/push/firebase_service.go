// Package push delivers alert notifications through Firebase Cloud Messaging.
package push

import (
	"context"
	"fmt"
	"log/slog"

	"bloodbridge/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendPush sends a push notification to a single device token
func (s *firebaseService) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// logPushService logs pushes instead of delivering them. It stands in for
// FCM in development and when no credentials are configured.
type logPushService struct {
	logger *slog.Logger
}

// NewLogPushService creates a push service that only logs.
func NewLogPushService(logger *slog.Logger) service.PushService {
	return &logPushService{logger: logger}
}

// SendPush logs the notification and reports success.
func (s *logPushService) SendPush(_ context.Context, token, title, body string, _ map[string]string) error {
	s.logger.Info("[LogPush] push notification",
		slog.String("token", token),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}
