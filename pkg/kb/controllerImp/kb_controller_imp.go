package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shoopaholic/pkg/kb/service"
)

type KBCtrl struct {
	s service.KBService
}

type updateReq struct {
	ShopDataText string `json:"shop_data_text"`
}

func New(s service.KBService) *KBCtrl { return &KBCtrl{s: s} }

func (h *KBCtrl) UpdateKnowledge(c echo.Context) error {
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(req.ShopDataText) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Data cannot be empty"})
	}

	if err := h.s.Rebuild(c.Request().Context(), req.ShopDataText); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Knowledge base updated successfully.",
	})
}
