package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/assignment"
	"github.com/summitfg/summit-api/pkg/leads"
	"github.com/summitfg/summit-api/pkg/metrics"
	"github.com/summitfg/summit-api/pkg/models"
)

// LeadHandler handles lead CRUD and the external capture webhook.
type LeadHandler struct {
	leads      *leads.Service
	assignment *assignment.Service
	metrics    *metrics.Metrics
	validator  *validator.Validate
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadService *leads.Service, assignmentService *assignment.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		leads:      leadService,
		assignment: assignmentService,
		metrics:    m,
		validator:  validator.New(),
	}
}

// CreateLead creates a lead. When auto_assign is set and no owner was given,
// the next owner from the rotation is attached before insert.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if req.AutoAssign && req.OwnerEmail == "" {
		owner, err := h.assignment.GetNextOwner(ctx)
		if err != nil {
			log.Printf("⚠️ Rotation unavailable, creating lead unassigned: %v", err)
		} else if owner != "" {
			req.OwnerEmail = owner
			if h.metrics != nil {
				h.metrics.RecordLeadAssigned()
			}
		}
	}

	lead, err := h.leads.Create(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLeadCreated(req.Source)
	}

	return c.JSON(http.StatusCreated, lead)
}

// LeadWebhook accepts leads from external capture forms. Always auto-assigns
// and never requires authentication, so the payload is validated strictly.
func (h *LeadHandler) LeadWebhook(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	// Webhook callers never pick their own owner
	req.OwnerEmail = ""
	if req.Source == "" {
		req.Source = "webhook"
	}

	owner, err := h.assignment.GetNextOwner(ctx)
	if err != nil {
		log.Printf("⚠️ Rotation unavailable for webhook lead: %v", err)
	} else if owner != "" {
		req.OwnerEmail = owner
		if h.metrics != nil {
			h.metrics.RecordLeadAssigned()
		}
	}

	lead, err := h.leads.Create(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLeadCreated(req.Source)
	}

	return c.JSON(http.StatusCreated, lead)
}

// ListLeads returns the leads visible to the authenticated requester.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Get("user_email").(string)
	role, _ := c.Get("user_role").(string)

	results, err := h.leads.List(ctx, email, role)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.LeadListResponse{
		Leads: results,
		Total: len(results),
	})
}

// GetLead returns a single lead by id.
func (h *LeadHandler) GetLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := parseLeadID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	lead, err := h.leads.GetByID(ctx, id)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if lead == nil {
		return apierrors.NotFoundError(c, "lead")
	}

	return c.JSON(http.StatusOK, lead)
}

// UpdateLead applies a partial update to a lead.
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := parseLeadID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	var req models.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.leads.Update(ctx, id, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if lead == nil {
		return apierrors.NotFoundError(c, "lead")
	}

	return c.JSON(http.StatusOK, lead)
}

// DeleteLead removes a lead. An unknown id reports deleted=false, not an
// error, so retries are harmless.
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := parseLeadID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	deleted, err := h.leads.Delete(ctx, id)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

func parseLeadID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
