package routes

import (
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/handlers"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/gin-gonic/gin"
)

type EmotionRoutes struct {
	handler  *handlers.EmotionHandler
	sessions session.Service
}

func NewEmotionRoutes(handler *handlers.EmotionHandler, sessions session.Service) *EmotionRoutes {
	return &EmotionRoutes{
		handler:  handler,
		sessions: sessions,
	}
}

// RegisterRoutes sets up emotion routes. Scenario and tip lookups are
// public; logging and status require a session.
func (er *EmotionRoutes) RegisterRoutes(router *gin.Engine) {
	emotions := router.Group("/api/emotions")
	{
		emotions.GET("/scenario", er.handler.GetScenario)
		emotions.GET("/tip", er.handler.MoodTip)

		protected := emotions.Group("")
		protected.Use(middleware.NewAuthMiddleware(er.sessions))
		{
			protected.POST("/log", er.handler.LogEmotion)
			protected.GET("/status", er.handler.EmotionStatus)
		}
	}
}
