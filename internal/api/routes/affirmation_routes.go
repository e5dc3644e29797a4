package routes

import (
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/handlers"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/gin-gonic/gin"
)

type AffirmationRoutes struct {
	handler  *handlers.AffirmationHandler
	sessions session.Service
}

func NewAffirmationRoutes(handler *handlers.AffirmationHandler, sessions session.Service) *AffirmationRoutes {
	return &AffirmationRoutes{
		handler:  handler,
		sessions: sessions,
	}
}

// RegisterRoutes sets up affirmation routes. The word bank and the
// generator are public so users can try the builder before signing up;
// saving and history require a session.
func (ar *AffirmationRoutes) RegisterRoutes(router *gin.Engine) {
	affirmations := router.Group("/api/affirmations")
	{
		affirmations.GET("/words", ar.handler.WordBank)
		affirmations.POST("/generate", ar.handler.Generate)

		protected := affirmations.Group("")
		protected.Use(middleware.NewAuthMiddleware(ar.sessions))
		{
			protected.POST("/submit", ar.handler.SubmitAffirmation)
			protected.GET("/status", ar.handler.AffirmationStatus)
			protected.GET("/history", ar.handler.AffirmationHistory)
		}
	}
}
