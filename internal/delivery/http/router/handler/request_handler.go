// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bloodbridge/internal/delivery/http/response"
	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/domain/service"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// pageParams reads limit/offset query parameters with sane bounds.
func pageParams(c echo.Context) (limit, offset int) {
	limit = defaultPageLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxPageLimit)
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

// pathID parses the :id path parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// resolveCoordinates fills missing coordinates from a free-text address via
// the geocoder. Resolution is best-effort: a miss or provider failure leaves
// the coordinates empty and the submission proceeds without them.
func resolveCoordinates(c echo.Context, geocoder service.Geocoder, logger *slog.Logger, address string, lat, lon *float64) (*float64, *float64) {
	if lat != nil && lon != nil {
		return lat, lon
	}
	if address == "" {
		return nil, nil
	}

	coords, err := geocoder.Resolve(c.Request().Context(), address)
	if err != nil {
		if !errors.Is(err, service.ErrAddressNotFound) {
			logger.Warn("Geocoding failed", slog.String("address", address), slog.Any("error", err))
		}

		return nil, nil
	}

	return &coords.Latitude, &coords.Longitude
}

// RequestHandler holds dependencies for blood request handlers.
type RequestHandler struct {
	uc       usecase.RequestUsecase
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, geocoder service.Geocoder, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:       uc,
		geocoder: geocoder,
		logger:   logger,
	}
}

type submitRequestPayload struct {
	RequestorKind string     `json:"requestor_kind" validate:"required,oneof=patient donor anonymous"`
	PatientID     *uuid.UUID `json:"patient_id"`
	DonorID       *uuid.UUID `json:"donor_id"`
	ContactPhone  string     `json:"contact_phone"`
	PatientName   string     `json:"patient_name" validate:"required"`
	PatientAge    int        `json:"patient_age" validate:"gte=0"`
	Reason        string     `json:"reason"`
	BloodGroup    string     `json:"blood_group" validate:"required"`
	Units         int        `json:"units" validate:"required,gt=0"`
	Address       string     `json:"address"`
	PostalCode    string     `json:"postal_code"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	Urgent        bool       `json:"urgent"`
}

// Submit handles a blood request submission.
func (h *RequestHandler) Submit(c echo.Context) error {
	var payload submitRequestPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request submission")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	lat, lon := resolveCoordinates(c, h.geocoder, h.logger, payload.Address, payload.Latitude, payload.Longitude)

	input := usecase.SubmitRequestInput{
		Requestor: entity.RequestorRef{
			Kind:         entity.RequestorKind(payload.RequestorKind),
			PatientID:    payload.PatientID,
			DonorID:      payload.DonorID,
			ContactPhone: payload.ContactPhone,
		},
		PatientName: payload.PatientName,
		PatientAge:  payload.PatientAge,
		Reason:      payload.Reason,
		BloodGroup:  entity.BloodGroup(payload.BloodGroup),
		Units:       payload.Units,
		PostalCode:  payload.PostalCode,
		Latitude:    lat,
		Longitude:   lon,
		Urgent:      payload.Urgent,
	}

	request, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Blood request submitted")
}

// Get returns one blood request by ID.
func (h *RequestHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Request ID must be a UUID")
	}

	request, err := h.uc.GetRequest(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "")
}

// Pending lists requests awaiting a decision.
func (h *RequestHandler) Pending(c echo.Context) error {
	limit, offset := pageParams(c)

	requests, err := h.uc.PendingRequests(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// History lists decided requests, newest first.
func (h *RequestHandler) History(c echo.Context) error {
	limit, offset := pageParams(c)

	requests, err := h.uc.RequestHistory(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Approve debits the ledger and marks the request approved.
func (h *RequestHandler) Approve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Request ID must be a UUID")
	}

	if err := h.uc.Approve(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Blood request approved")
}

type rejectPayload struct {
	Reason string `json:"reason"`
}

// Reject marks the request rejected with an optional reason.
func (h *RequestHandler) Reject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Request ID must be a UUID")
	}

	var payload rejectPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := h.uc.Reject(c.Request().Context(), id, payload.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Blood request rejected")
}
