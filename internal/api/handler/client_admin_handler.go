package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

type clientRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	Status   string `json:"status"   validate:"omitempty,oneof=active inactive"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// clientResponse is the directory row the back office renders. Like every
// other document it keys on _id.
type clientResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toClientResponse(account *domain.Account) clientResponse {
	return clientResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Company:   account.Company,
		Phone:     account.Phone,
		Address:   account.Address,
		Role:      account.Role,
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ClientAdminHandler is the back-office client directory.
type ClientAdminHandler struct {
	service ports.AccountService
}

func NewClientAdminHandler(service ports.AccountService) *ClientAdminHandler {
	return &ClientAdminHandler{service: service}
}

// List handles GET /api/clients (admin).
//
// @Summary      List client accounts
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  clientResponse
// @Router       /api/clients [get]
func (h *ClientAdminHandler) List(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		rows = append(rows, toClientResponse(client))
	}
	return c.JSON(http.StatusOK, rows)
}

// Create handles POST /api/clients (admin). Password is required here; the
// admin hands the credentials to the client out of band.
//
// @Summary      Provision a client account
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientAdminHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}

	account, err := h.service.ProvisionClient(c.Request().Context(), toClientInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toClientResponse(account))
}

// Update handles PUT /api/clients/:id (admin). An empty password leaves the
// stored credential untouched.
//
// @Summary      Update a client account
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Account id"
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  clientResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/clients/{id} [put]
func (h *ClientAdminHandler) Update(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), toClientInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(account))
}

// Delete handles DELETE /api/clients/:id (admin).
//
// @Summary      Delete a client account
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [delete]
func (h *ClientAdminHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toClientInput(req clientRequest) ports.ClientInput {
	return ports.ClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Address:  req.Address,
		Status:   req.Status,
		Password: req.Password,
	}
}
