package controllerImp

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthCtrl struct {
	username string
	password string
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func New(username, password string) *AuthCtrl {
	return &AuthCtrl{username: username, password: password}
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid json: " + err.Error()})
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
