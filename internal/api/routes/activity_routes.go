package routes

import (
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/handlers"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/gin-gonic/gin"
)

type ActivityRoutes struct {
	handler  *handlers.ActivityHandler
	sessions session.Service
}

func NewActivityRoutes(handler *handlers.ActivityHandler, sessions session.Service) *ActivityRoutes {
	return &ActivityRoutes{
		handler:  handler,
		sessions: sessions,
	}
}

// RegisterRoutes sets up the hydration, brushing, breathing and
// daily-reset routes. All of them require a valid session.
func (ar *ActivityRoutes) RegisterRoutes(router *gin.Engine) {
	authRequired := middleware.NewAuthMiddleware(ar.sessions)

	hydration := router.Group("/api/hydration")
	hydration.Use(authRequired)
	{
		hydration.POST("/log", ar.handler.LogHydration)
		hydration.GET("/status", ar.handler.HydrationStatus)
		hydration.POST("/reset", ar.handler.ResetHydration)
	}

	brushing := router.Group("/api/brushing")
	brushing.Use(authRequired)
	{
		brushing.POST("/log", ar.handler.LogBrushing)
		brushing.GET("/status", ar.handler.BrushingStatus)
		brushing.GET("/status/detailed", ar.handler.BrushingDetail)
		brushing.POST("/reset", ar.handler.ResetBrushing)
	}

	breathing := router.Group("/api/breathing")
	breathing.Use(authRequired)
	{
		breathing.POST("/log", ar.handler.LogBreathing)
		breathing.GET("/status", ar.handler.BreathingStatus)
	}

	stats := router.Group("/api/stats")
	stats.Use(authRequired)
	{
		stats.POST("/reset", ar.handler.ResetAllStats)
	}
}
