package handler

import (
	"net/http"

	"bloodbridge/internal/delivery/http/response"
	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DonationHandler holds dependencies for blood donation handlers.
type DonationHandler struct {
	uc usecase.DonationUsecase
}

// NewDonationHandler is the constructor for DonationHandler, injected by Fx.
func NewDonationHandler(uc usecase.DonationUsecase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

type submitDonationPayload struct {
	DonorID    uuid.UUID `json:"donor_id" validate:"required"`
	Disease    string    `json:"disease"`
	Age        int       `json:"age" validate:"gte=0"`
	BloodGroup string    `json:"blood_group" validate:"required"`
	Units      int       `json:"units" validate:"required,gt=0"`
}

// Submit handles a donation offer submission.
func (h *DonationHandler) Submit(c echo.Context) error {
	var payload submitDonationPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation submission")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	donation, err := h.uc.Submit(c.Request().Context(), usecase.SubmitDonationInput{
		DonorID:    payload.DonorID,
		Disease:    payload.Disease,
		Age:        payload.Age,
		BloodGroup: entity.BloodGroup(payload.BloodGroup),
		Units:      payload.Units,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, donation, "Blood donation submitted")
}

// Get returns one donation by ID.
func (h *DonationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Donation ID must be a UUID")
	}

	donation, err := h.uc.GetDonation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donation, "")
}

// Pending lists donations awaiting a decision.
func (h *DonationHandler) Pending(c echo.Context) error {
	limit, offset := pageParams(c)

	donations, err := h.uc.PendingDonations(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donations, "")
}

// ByDonor lists one donor's donations, newest first.
func (h *DonationHandler) ByDonor(c echo.Context) error {
	donorID, err := uuid.Parse(c.Param("donorId"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Donor ID must be a UUID")
	}

	limit, offset := pageParams(c)

	donations, err := h.uc.DonorDonations(c.Request().Context(), donorID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donations, "")
}

// Approve credits the ledger and marks the donation approved.
func (h *DonationHandler) Approve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Donation ID must be a UUID")
	}

	if err := h.uc.Approve(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Blood donation approved")
}

// Reject marks the donation rejected with an optional reason.
func (h *DonationHandler) Reject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Donation ID must be a UUID")
	}

	var payload rejectPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := h.uc.Reject(c.Request().Context(), id, payload.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Blood donation rejected")
}
