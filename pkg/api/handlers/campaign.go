package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/campaign"
	"github.com/summitfg/summit-api/pkg/metrics"
)

// CampaignHandler handles marketing content generation.
type CampaignHandler struct {
	campaigns *campaign.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewCampaignHandler creates a new campaign handler.
func NewCampaignHandler(campaignService *campaign.Service, m *metrics.Metrics) *CampaignHandler {
	return &CampaignHandler{
		campaigns: campaignService,
		metrics:   m,
		validator: validator.New(),
	}
}

// GenerateEmailCampaign produces an email drip sequence. Generation never
// fails outright; template content answers when the LLM cannot.
func (h *CampaignHandler) GenerateEmailCampaign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 45*time.Second)
	defer cancel()

	var req campaign.EmailCampaignRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result := h.campaigns.GenerateEmailCampaign(ctx, req)

	if h.metrics != nil {
		h.metrics.RecordCampaignBuilt("email", result.AIGenerated)
	}

	return c.JSON(http.StatusOK, result)
}

// GenerateLeadGenText produces outreach messages in the requested language.
func (h *CampaignHandler) GenerateLeadGenText(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 45*time.Second)
	defer cancel()

	var req campaign.LeadGenTextRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result := h.campaigns.GenerateLeadGenText(ctx, req)

	if h.metrics != nil {
		h.metrics.RecordCampaignBuilt("leadgen", result.AIGenerated)
	}

	return c.JSON(http.StatusOK, result)
}
