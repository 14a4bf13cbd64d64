package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// BranchHandler handles HTTP requests for branch management.
type BranchHandler struct {
	service ports.BranchService
}

func NewBranchHandler(service ports.BranchService) *BranchHandler {
	return &BranchHandler{service: service}
}

// List handles GET /api/branches. Each row carries the joined province name.
func (h *BranchHandler) List(c echo.Context) error {
	branches, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, branches)
}

// Create handles POST /api/branches. The creating identity comes from the
// verified token, never from the body.
func (h *BranchHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req branchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	branch, err := h.service.Create(c.Request().Context(), ports.BranchInput{
		BranchName: req.BranchName,
		Location:   req.Location,
		ProvinceID: req.ProvinceID,
		Status:     domain.BranchStatus(req.Status),
	}, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, branch)
}

// Update handles PUT /api/branches/:id.
func (h *BranchHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req branchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	branch, err := h.service.Update(c.Request().Context(), id, ports.BranchInput{
		BranchName: req.BranchName,
		Location:   req.Location,
		ProvinceID: req.ProvinceID,
		Status:     domain.BranchStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, branch)
}

// UpdateStatus handles PATCH /api/branches/:id/status.
func (h *BranchHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req branchStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), id, domain.BranchStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "branch status updated successfully"})
}

// Delete handles DELETE /api/branches/:id.
func (h *BranchHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "branch deleted successfully"})
}
