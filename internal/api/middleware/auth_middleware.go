package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/user"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/logger"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/security/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.NewLogger()

// NewAuthMiddleware resolves the Authorization header to a user through
// the session store. Expired tokens are revoked during validation, so a
// rejected request also cleans up its own session row.
func NewAuthMiddleware(sessions session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := sessions.ValidateBearer(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			log.Warn("Session validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			c.Abort()
			return
		}

		c.Set("user_id", u.ID)
		c.Set("username", u.Username)
		c.Next()
	}
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrMissingCredential):
		return "authorization header is required"
	case errors.Is(err, session.ErrMalformedCredential):
		return "invalid authorization header format"
	case errors.Is(err, session.ErrSessionExpired):
		return "session has expired"
	case errors.Is(err, session.ErrNotAuthenticated), errors.Is(err, user.ErrUserNotFound):
		return "invalid session token"
	default:
		return "not authenticated"
	}
}

// RateLimitMiddleware creates a middleware for rate limiting using Redis
func RateLimitMiddleware(limiter auth.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		path := c.Request.URL.Path
		key := fmt.Sprintf("%s:%s", ip, path)

		allowed, remaining, resetTime, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Error("Rate limiter error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", resetTime.String())

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":    "rate limit exceeded",
				"reset_in": time.Until(resetTime).String(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUsername retrieves the authenticated user's name from the context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	return username.(string), true
}
