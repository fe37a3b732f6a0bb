package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/summitfg/summit-api/pkg/resources"
)

// ResourcesHandler serves the downloadable resource catalog.
type ResourcesHandler struct {
	resources *resources.Service
}

// NewResourcesHandler creates a new resources handler.
func NewResourcesHandler(resourceService *resources.Service) *ResourcesHandler {
	return &ResourcesHandler{resources: resourceService}
}

// ListResources returns the resource catalog.
func (h *ResourcesHandler) ListResources(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	return c.JSON(http.StatusOK, h.resources.List(ctx))
}
