package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

// CampaignHandler handles HTTP requests for donation campaigns.
type CampaignHandler struct {
	service ports.CampaignService
}

func NewCampaignHandler(service ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

type createCampaignRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"start_date"  validate:"required"`
	EndDate     time.Time `json:"end_date"    validate:"required,gtefield=StartDate"`
}

// List handles GET /api/campaigns. An empty campaign board is a 404, which
// the mobile clients rely on.
func (h *CampaignHandler) List(c echo.Context) error {
	campaigns, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaigns)
}

// Create handles POST /api/campaigns.
func (h *CampaignHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	campaign, err := h.service.Create(c.Request().Context(), &domain.Campaign{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, campaign)
}
