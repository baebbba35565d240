package handler

import (
	"net/http"

	"bloodbridge/internal/delivery/http/response"
	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StockHandler holds dependencies for stock ledger handlers.
type StockHandler struct {
	uc usecase.StockUsecase
}

// NewStockHandler is the constructor for StockHandler, injected by Fx.
func NewStockHandler(uc usecase.StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Snapshot returns the balance of every blood group.
func (h *StockHandler) Snapshot(c echo.Context) error {
	snapshot, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}

// Balance returns the balance of one blood group.
func (h *StockHandler) Balance(c echo.Context) error {
	group := entity.BloodGroup(c.Param("group"))

	units, err := h.uc.Balance(c.Request().Context(), group)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"blood_group": group,
		"units":       units,
	}, "")
}

type adjustStockPayload struct {
	BloodGroup string `json:"blood_group" validate:"required"`
	Delta      int    `json:"delta" validate:"required"`
}

// Adjust applies a manual correction to one blood group's balance.
func (h *StockHandler) Adjust(c echo.Context) error {
	var payload adjustStockPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock adjustment")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	group := entity.BloodGroup(payload.BloodGroup)
	if err := h.uc.Adjust(c.Request().Context(), group, payload.Delta); err != nil {
		return errors.WithStack(err)
	}

	units, err := h.uc.Balance(c.Request().Context(), group)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"blood_group": group,
		"units":       units,
	}, "Stock adjusted")
}
