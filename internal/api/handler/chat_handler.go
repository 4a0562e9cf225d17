package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/api/metrics"
	"github.com/spyweb/portal-api/internal/core/ports"
)

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler serves the public chat widget.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /api/ai/chat.
//
// @Summary      Get an assistant reply
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Visitor message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/ai/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.service.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}

	metrics.ChatRepliesTotal.Inc()
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
