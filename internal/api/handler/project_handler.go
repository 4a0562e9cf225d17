package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for projects: the public showcase,
// the client portal listing, and admin CRUD.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListPublic handles GET /api/projects — the marketing showcase. Only
// projects without an owner are returned here.
//
// @Summary      List public showcase projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /api/projects [get]
func (h *ProjectHandler) ListPublic(c echo.Context) error {
	projects, err := h.service.PublicProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// ListMine handles GET /api/projects/my — projects owned by the caller.
//
// @Summary      List the caller's projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  map[string]string
// @Router       /api/projects/my [get]
func (h *ProjectHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.service.MyProjects(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id. Public projects are open to everyone;
// owned projects require the owner's token or an admin.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.GetProject(c.Request().Context(), c.Param("id"), ctxOptionalIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /api/projects (admin).
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.CreateProject(c.Request().Context(), toProjectInput(req), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /api/projects/:id (admin).
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.UpdateProject(c.Request().Context(), c.Param("id"), toProjectInput(req), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id (admin).
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProject(c.Request().Context(), c.Param("id"), identity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProjectInput(req projectRequest) ports.ProjectInput {
	docs := make([]ports.DocumentInput, len(req.Documents))
	for i, d := range req.Documents {
		docs[i] = ports.DocumentInput{Title: d.Title, URL: d.URL}
	}
	return ports.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		Status:       req.Status,
		Progress:     req.Progress,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ClientID:     req.ClientID,
		Documents:    docs,
	}
}
