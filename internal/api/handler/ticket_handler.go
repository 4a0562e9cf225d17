package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/api/metrics"
	"github.com/spyweb/portal-api/internal/core/ports"
)

type ticketRequest struct {
	Subject string `json:"subject" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type ticketReplyRequest struct {
	Reply  string `json:"reply"  validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=New 'In Progress' Resolved"`
}

// TicketHandler serves the client support inbox and the back-office queue.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Open handles POST /api/messages — a client opens a ticket.
//
// @Summary      Open a support ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ticketRequest  true  "Ticket details"
// @Success      201   {object}  domain.Ticket
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/messages [post]
func (h *TicketHandler) Open(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ticketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.service.Open(c.Request().Context(), identity, ports.TicketInput{
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.TicketsOpenedTotal.Inc()
	return c.JSON(http.StatusCreated, ticket)
}

// ListMine handles GET /api/messages — the caller's own tickets.
//
// @Summary      List the caller's tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Ticket
// @Failure      401  {object}  map[string]string
// @Router       /api/messages [get]
func (h *TicketHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tickets, err := h.service.MyTickets(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// ListAll handles GET /api/messages/admin/all (admin).
//
// @Summary      List all tickets with client details
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.TicketWithClient
// @Router       /api/messages/admin/all [get]
func (h *TicketHandler) ListAll(c echo.Context) error {
	tickets, err := h.service.AllTickets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// Reply handles PUT /api/messages/:id/reply (admin).
//
// @Summary      Reply to a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Ticket id"
// @Param        body  body      ticketReplyRequest  true  "Reply and status"
// @Success      200   {object}  domain.Ticket
// @Failure      404   {object}  map[string]string
// @Router       /api/messages/{id}/reply [put]
func (h *TicketHandler) Reply(c echo.Context) error {
	var req ticketReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.service.Reply(c.Request().Context(), c.Param("id"), ports.TicketReplyInput{
		Reply:  req.Reply,
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}
