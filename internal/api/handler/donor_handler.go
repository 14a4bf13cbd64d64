package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// DonorHandler handles HTTP requests for donor records.
type DonorHandler struct {
	service ports.DonorService
}

func NewDonorHandler(service ports.DonorService) *DonorHandler {
	return &DonorHandler{service: service}
}

// List handles GET /api/donors.
func (h *DonorHandler) List(c echo.Context) error {
	donors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donors)
}

// Get handles GET /api/donors/:id.
func (h *DonorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	donor, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donor)
}

// Create handles POST /api/donors.
func (h *DonorHandler) Create(c echo.Context) error {
	var req createDonorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donor, err := h.service.Create(c.Request().Context(), &domain.Donor{
		Name:         req.DonorName,
		BloodType:    req.BloodType,
		ProfileImage: req.ProfileImage,
		UserID:       req.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, donor)
}

// Update handles PUT /api/donors/:id.
func (h *DonorHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateDonorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donor, err := h.service.Update(c.Request().Context(), id, ports.DonorUpdateInput{
		Name:         req.DonorName,
		BloodType:    req.BloodType,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donor)
}

// Delete handles DELETE /api/donors/:id.
func (h *DonorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "donor deleted successfully"})
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
