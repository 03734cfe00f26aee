package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	chatCtrl interface{ Chat(echo.Context) error },
	kbCtrl interface{ UpdateKnowledge(echo.Context) error },
	authCtrl interface{ Login(echo.Context) error },
	uploadCtrl interface{ Upload(echo.Context) error },
	analyticsCtrl interface {
		Analytics(echo.Context) error
		Recommendations(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/chat", chatCtrl.Chat)

	admin := e.Group("/admin")
	admin.POST("/login", authCtrl.Login)
	admin.POST("/update_knowledge", kbCtrl.UpdateKnowledge)
	admin.POST("/upload", uploadCtrl.Upload)

	e.GET("/analytics", analyticsCtrl.Analytics)
	e.GET("/recommendations", analyticsCtrl.Recommendations)
	e.GET("/health", healthCtrl.Health)

	return e
}
