package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// CatalogHandler serves the province and blood-type reference data.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type createBloodTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListProvinces handles GET /api/provinces.
func (h *CatalogHandler) ListProvinces(c echo.Context) error {
	provinces, err := h.service.ListProvinces(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, provinces)
}

// GetProvince handles GET /api/provinces/:id.
func (h *CatalogHandler) GetProvince(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	province, err := h.service.GetProvince(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, province)
}

// ListBloodTypes handles GET /api/bloodtypes, ordered by name.
func (h *CatalogHandler) ListBloodTypes(c echo.Context) error {
	types, err := h.service.ListBloodTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// CreateBloodType handles POST /api/bloodtypes.
func (h *CatalogHandler) CreateBloodType(c echo.Context) error {
	var req createBloodTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bt, err := h.service.CreateBloodType(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bt)
}
