package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

type serviceRequest struct {
	Icon        string `json:"icon"        validate:"required"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

type aboutRequest struct {
	Description string          `json:"description"`
	Mission     string          `json:"mission"`
	Vision      string          `json:"vision"`
	Values      string          `json:"values"`
	Leadership  []domain.Leader `json:"leadership"`
}

// CatalogHandler serves the marketing content: service catalog and about page.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListServices handles GET /api/services.
//
// @Summary      List catalog services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /api/services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.service.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/services (admin). Unknown icon tags are
// coerced to the fallback rather than rejected.
//
// @Summary      Create a catalog service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/services [post]
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service, err := h.service.CreateService(c.Request().Context(), ports.ServiceInput{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, service)
}

// UpdateService handles PUT /api/services/:id (admin).
//
// @Summary      Update a catalog service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Router       /api/services/{id} [put]
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), ports.ServiceInput{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service)
}

// DeleteService handles DELETE /api/services/:id (admin).
//
// @Summary      Delete a catalog service
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAbout handles GET /api/about.
//
// @Summary      Get about-page content
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  domain.About
// @Router       /api/about [get]
func (h *CatalogHandler) GetAbout(c echo.Context) error {
	about, err := h.service.GetAbout(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, about)
}

// UpdateAbout handles PUT /api/about (admin, upsert).
//
// @Summary      Update about-page content
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      aboutRequest  true  "About content"
// @Success      200   {object}  domain.About
// @Failure      403   {object}  map[string]string
// @Router       /api/about [put]
func (h *CatalogHandler) UpdateAbout(c echo.Context) error {
	var req aboutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	about, err := h.service.UpdateAbout(c.Request().Context(), ports.AboutInput{
		Description: req.Description,
		Mission:     req.Mission,
		Vision:      req.Vision,
		Values:      req.Values,
		Leadership:  req.Leadership,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, about)
}
