package handler

import (
	"log/slog"
	"net/http"

	"bloodbridge/internal/delivery/http/response"
	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/domain/service"
	"bloodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DonorHandler holds dependencies for donor profile handlers.
type DonorHandler struct {
	uc       usecase.DonorUsecase
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewDonorHandler is the constructor for DonorHandler, injected by Fx.
func NewDonorHandler(uc usecase.DonorUsecase, geocoder service.Geocoder, logger *slog.Logger) *DonorHandler {
	return &DonorHandler{
		uc:       uc,
		geocoder: geocoder,
		logger:   logger,
	}
}

type registerDonorPayload struct {
	Name       string   `json:"name" validate:"required"`
	BloodGroup string   `json:"blood_group" validate:"required"`
	Phone      string   `json:"phone" validate:"required"`
	Address    string   `json:"address"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	FCMToken   string   `json:"fcm_token"`
}

// Register creates a donor profile. Coordinates missing from the payload
// are resolved from the street address before the profile reaches the core.
func (h *DonorHandler) Register(c echo.Context) error {
	var payload registerDonorPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor registration")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	lat, lon := resolveCoordinates(c, h.geocoder, h.logger, payload.Address, payload.Latitude, payload.Longitude)

	donor, err := h.uc.Register(c.Request().Context(), usecase.RegisterDonorInput{
		Name:       payload.Name,
		BloodGroup: entity.BloodGroup(payload.BloodGroup),
		Phone:      payload.Phone,
		Address:    payload.Address,
		PostalCode: payload.PostalCode,
		Latitude:   lat,
		Longitude:  lon,
		FCMToken:   payload.FCMToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, donor, "Donor registered")
}

// Get returns one donor profile by ID.
func (h *DonorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Donor ID must be a UUID")
	}

	donor, err := h.uc.GetDonor(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donor, "")
}

type availabilityPayload struct {
	Available *bool `json:"available" validate:"required"`
}

// MarkAvailability toggles whether the donor accepts alerts.
func (h *DonorHandler) MarkAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Donor ID must be a UUID")
	}

	var payload availabilityPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.MarkAvailability(c.Request().Context(), id, *payload.Available); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Donor availability updated")
}

type updateLocationPayload struct {
	Address    string   `json:"address"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// UpdateLocation writes fresh coordinates onto the profile, geocoding the
// address when the payload does not carry them.
func (h *DonorHandler) UpdateLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Donor ID must be a UUID")
	}

	var payload updateLocationPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	lat, lon := resolveCoordinates(c, h.geocoder, h.logger, payload.Address, payload.Latitude, payload.Longitude)
	if lat == nil || lon == nil {
		return response.BadRequest(c, "ADDRESS_NOT_RESOLVED", "Coordinates missing and the address could not be resolved")
	}

	// Coordinates passed through an explicit payload count as verified;
	// geocoded ones stay unverified until confirmed on the map.
	verified := payload.Latitude != nil && payload.Longitude != nil

	if err := h.uc.UpdateLocation(c.Request().Context(), id, *lat, *lon, payload.PostalCode, verified); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Donor location updated")
}
