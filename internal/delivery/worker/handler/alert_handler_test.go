package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloodbridge/config"
	"bloodbridge/internal/domain/constants"
	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAlertUsecase records which operation ran and returns a canned error.
type recordingAlertUsecase struct {
	urgentID   uuid.UUID
	decidedID  uuid.UUID
	donationID uuid.UUID
	decision   entity.Status
	reason     string
	err        error
}

func (r *recordingAlertUsecase) HandleUrgentRequest(_ context.Context, requestID uuid.UUID) error {
	r.urgentID = requestID

	return r.err
}

func (r *recordingAlertUsecase) NotifyRequestDecided(_ context.Context, requestID uuid.UUID, decision entity.Status, reason string) error {
	r.decidedID = requestID
	r.decision = decision
	r.reason = reason

	return r.err
}

func (r *recordingAlertUsecase) NotifyDonationDecided(_ context.Context, donationID uuid.UUID, decision entity.Status, reason string) error {
	r.donationID = donationID
	r.decision = decision
	r.reason = reason

	return r.err
}

func newTestHandler(t *testing.T, svc *recordingAlertUsecase) *AlertHandler {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
	}
	cfg.Env.Env = constants.EnvDevelop

	return NewAlertHandler(AlertHandlerParams{
		Config:   cfg,
		Logger:   slog.Default(),
		AlertSvc: svc,
	})
}

func pushRequest(t *testing.T, event *service.AlertEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.Attributes = map[string]string{"kind": event.Kind}

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandlePush_UrgentRequest(t *testing.T) {
	t.Parallel()

	svc := &recordingAlertUsecase{}
	h := newTestHandler(t, svc)
	requestID := uuid.New()

	c, rec := pushRequest(t, &service.AlertEvent{
		Kind:       service.AlertEventUrgentRequest,
		BloodReqID: requestID.String(),
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, requestID, svc.urgentID)
}

func TestHandlePush_RequestDecided(t *testing.T) {
	t.Parallel()

	svc := &recordingAlertUsecase{}
	h := newTestHandler(t, svc)
	requestID := uuid.New()

	c, rec := pushRequest(t, &service.AlertEvent{
		Kind:       service.AlertEventRequestDecided,
		BloodReqID: requestID.String(),
		Decision:   entity.StatusRejected.String(),
		Reason:     "stock reserved for surgery",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, requestID, svc.decidedID)
	assert.Equal(t, entity.StatusRejected, svc.decision)
	assert.Equal(t, "stock reserved for surgery", svc.reason)
}

func TestHandlePush_DonationDecided(t *testing.T) {
	t.Parallel()

	svc := &recordingAlertUsecase{}
	h := newTestHandler(t, svc)
	donationID := uuid.New()

	c, rec := pushRequest(t, &service.AlertEvent{
		Kind:       service.AlertEventDonationDecided,
		DonationID: donationID.String(),
		Decision:   entity.StatusApproved.String(),
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, donationID, svc.donationID)
	assert.Equal(t, entity.StatusApproved, svc.decision)
}

func TestHandlePush_RetryableFailureReturns503(t *testing.T) {
	t.Parallel()

	svc := &recordingAlertUsecase{err: errors.New("database unavailable")}
	h := newTestHandler(t, svc)

	c, rec := pushRequest(t, &service.AlertEvent{
		Kind:       service.AlertEventUrgentRequest,
		BloodReqID: uuid.NewString(),
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MissingRecordAcksMessage(t *testing.T) {
	t.Parallel()

	svc := &recordingAlertUsecase{err: domainerrors.ErrRequestNotFound}
	h := newTestHandler(t, svc)

	c, rec := pushRequest(t, &service.AlertEvent{
		Kind:       service.AlertEventUrgentRequest,
		BloodReqID: uuid.NewString(),
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UnknownKindAcksMessage(t *testing.T) {
	t.Parallel()

	svc := &recordingAlertUsecase{}
	h := newTestHandler(t, svc)

	c, rec := pushRequest(t, &service.AlertEvent{Kind: "resync_everything"})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedBodyRejected(t *testing.T) {
	t.Parallel()

	svc := &recordingAlertUsecase{}
	h := newTestHandler(t, svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message":{"data":"not-base64!!"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
