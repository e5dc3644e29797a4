package routes

import (
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/handlers"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

type UserRoutes struct {
	userHandler *handlers.UserHandler
	sessions    session.Service
	rateLimiter auth.RateLimiter
}

func NewUserRoutes(userHandler *handlers.UserHandler, sessions session.Service, rateLimiter auth.RateLimiter) *UserRoutes {
	return &UserRoutes{
		userHandler: userHandler,
		sessions:    sessions,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes sets up account and session routes
func (ur *UserRoutes) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Credential endpoints get stricter rate limiting than the rest
		// of the API
		public := api.Group("")
		if ur.rateLimiter != nil {
			public.Use(middleware.RateLimitMiddleware(ur.rateLimiter))
		}
		{
			public.POST("/register", ur.userHandler.Register)
			public.POST("/login", ur.userHandler.Login)
			public.POST("/logout", ur.userHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(middleware.NewAuthMiddleware(ur.sessions))
		{
			protected.GET("/profile", ur.userHandler.Profile)
		}
	}
}
