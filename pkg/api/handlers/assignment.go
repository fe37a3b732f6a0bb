package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/assignment"
	"github.com/summitfg/summit-api/pkg/metrics"
	"github.com/summitfg/summit-api/pkg/models"
)

// AssignmentHandler exposes the round-robin rotation config and cursor.
type AssignmentHandler struct {
	assignment *assignment.Service
	metrics    *metrics.Metrics
	validator  *validator.Validate
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(assignmentService *assignment.Service, m *metrics.Metrics) *AssignmentHandler {
	return &AssignmentHandler{
		assignment: assignmentService,
		metrics:    m,
		validator:  validator.New(),
	}
}

// GetConfig returns the current rotation configuration.
func (h *AssignmentHandler) GetConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	config, err := h.assignment.GetConfig(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if config == nil {
		return apierrors.NotFoundError(c, "rotation config")
	}

	return c.JSON(http.StatusOK, config)
}

// UpdateConfig replaces the owner rotation list and resets the cursor.
func (h *AssignmentHandler) UpdateConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.UpdateRoundRobinRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	config, err := h.assignment.SetOwners(ctx, req.OwnerEmails)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, config)
}

// NextOwner advances the rotation and returns the owner that was selected.
func (h *AssignmentHandler) NextOwner(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	owner, err := h.assignment.GetNextOwner(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if owner == "" {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "rotation_empty",
			Message: "No owners are configured for assignment.",
		})
	}

	if h.metrics != nil {
		h.metrics.RecordLeadAssigned()
	}

	return c.JSON(http.StatusOK, map[string]string{"owner_email": owner})
}
