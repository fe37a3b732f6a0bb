package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/inquiry"
	"github.com/summitfg/summit-api/pkg/metrics"
	"github.com/summitfg/summit-api/pkg/models"
)

// InquiryHandler handles contact-form submissions.
type InquiryHandler struct {
	inquiries *inquiry.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(inquiryService *inquiry.Service, m *metrics.Metrics) *InquiryHandler {
	return &InquiryHandler{
		inquiries: inquiryService,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreateInquiry stores a contact-form submission and notifies the team inbox.
func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.inquiries.Create(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordInquiry()
	}

	return c.JSON(http.StatusCreated, result)
}

// ListInquiries returns all inquiries, newest first. Founder only.
func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	results, err := h.inquiries.List(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, results)
}
