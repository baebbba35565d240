package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bloodbridge/config"
	deliverycontext "bloodbridge/internal/delivery/context"
	"bloodbridge/internal/domain/constants"
	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/service"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// AlertHandler handles Pub/Sub push messages carrying alert events
type AlertHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	alertSvc       usecase.AlertUsecase
}

// AlertHandlerParams holds dependencies for the AlertHandler
type AlertHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	AlertSvc usecase.AlertUsecase
}

// NewAlertHandler creates a new Pub/Sub push handler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	// Only Google-delivered pushes outside development carry a verifiable token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &AlertHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		alertSvc:       params.AlertSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *AlertHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse alert event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("kind", event.Kind),
		slog.String("blood_request_id", event.BloodReqID),
		slog.String("donation_id", event.DonationID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; 200 acknowledges events that
		// would fail the same way on every retry
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed", slog.String("kind", event.Kind))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *AlertHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlertEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent dispatches one alert event to the matching usecase operation
func (h *AlertHandler) processEvent(ctx context.Context, event *service.AlertEvent) error {
	switch event.Kind {
	case service.AlertEventUrgentRequest:
		requestID, err := uuid.Parse(event.BloodReqID)
		if err != nil {
			return errors.WithStack(err)
		}

		return wrapRetryable(h.alertSvc.HandleUrgentRequest(ctx, requestID))

	case service.AlertEventRequestDecided:
		requestID, err := uuid.Parse(event.BloodReqID)
		if err != nil {
			return errors.WithStack(err)
		}

		decision := entity.Status(event.Decision)
		if !decision.IsValid() || !decision.IsTerminal() {
			return errors.Errorf("invalid decision %q", event.Decision)
		}

		return wrapRetryable(h.alertSvc.NotifyRequestDecided(ctx, requestID, decision, event.Reason))

	case service.AlertEventDonationDecided:
		donationID, err := uuid.Parse(event.DonationID)
		if err != nil {
			return errors.WithStack(err)
		}

		decision := entity.Status(event.Decision)
		if !decision.IsValid() || !decision.IsTerminal() {
			return errors.Errorf("invalid decision %q", event.Decision)
		}

		return wrapRetryable(h.alertSvc.NotifyDonationDecided(ctx, donationID, decision, event.Reason))

	default:
		return errors.Errorf("unknown alert event kind %q", event.Kind)
	}
}

// wrapRetryable marks processing failures as retryable unless the referenced
// record no longer exists, which no amount of redelivery will fix
func wrapRetryable(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domainerrors.ErrRequestNotFound) ||
		errors.Is(err, domainerrors.ErrDonationNotFound) ||
		errors.Is(err, domainerrors.ErrDonorNotFound) {
		return err
	}

	return newRetryableError(err)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
