package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/api/metrics"
	"github.com/spyweb/portal-api/internal/core/ports"
)

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

// ContactHandler serves the public contact form and the back-office inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contacts — the public contact form.
//
// @Summary      Submit a contact form
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  map[string]string
// @Router       /api/contacts [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, contact)
}

// List handles GET /api/contacts (admin).
//
// @Summary      List contact submissions
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Contact
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.service.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// SetStatus handles PUT /api/contacts/:id (admin).
//
// @Summary      Update a contact's triage status
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Contact id"
// @Param        body  body      contactStatusRequest  true  "New status"
// @Success      200   {object}  domain.Contact
// @Failure      404   {object}  map[string]string
// @Router       /api/contacts/{id} [put]
func (h *ContactHandler) SetStatus(c echo.Context) error {
	var req contactStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/:id (admin).
//
// @Summary      Delete a contact submission
// @Tags         contacts
// @Security     BearerAuth
// @Param        id  path  string  true  "Contact id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteContact(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
