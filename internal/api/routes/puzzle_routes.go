package routes

import (
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/handlers"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/gin-gonic/gin"
)

type PuzzleRoutes struct {
	handler  *handlers.PuzzleHandler
	sessions session.Service
}

func NewPuzzleRoutes(handler *handlers.PuzzleHandler, sessions session.Service) *PuzzleRoutes {
	return &PuzzleRoutes{
		handler:  handler,
		sessions: sessions,
	}
}

// RegisterRoutes sets up puzzle routes. The puzzle list is public;
// submissions and scores require a session.
func (pr *PuzzleRoutes) RegisterRoutes(router *gin.Engine) {
	puzzles := router.Group("/api/puzzles")
	{
		puzzles.GET("", pr.handler.ListPuzzles)

		protected := puzzles.Group("")
		protected.Use(middleware.NewAuthMiddleware(pr.sessions))
		{
			protected.POST("/submit", pr.handler.SubmitPuzzle)
			protected.GET("/status", pr.handler.PuzzleStatus)
		}
	}
}
