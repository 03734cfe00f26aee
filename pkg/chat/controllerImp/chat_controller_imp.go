package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shoopaholic/pkg/chat/service"
)

type ChatCtrl struct {
	s service.ChatService
}

type chatReq struct {
	Query string `json:"query"`
}

func New(s service.ChatService) *ChatCtrl { return &ChatCtrl{s: s} }

func (h *ChatCtrl) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "query is required"})
	}
	answer := h.s.Answer(c.Request().Context(), req.Query)
	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}
