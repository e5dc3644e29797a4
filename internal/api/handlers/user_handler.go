package handlers

import (
	"errors"
	"net/http"

	"github.com/AbdullahKhetran/wellness-arcade/internal/api/dto"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/user"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// UserHandler handles HTTP requests for account and session operations
type UserHandler struct {
	userService    user.Service
	sessionService session.Service
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService user.Service, sessionService session.Service) *UserHandler {
	return &UserHandler{
		userService:    userService,
		sessionService: sessionService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with username, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.RegisterResponse "Account created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Username or email taken"
// @Router /api/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.userService.Register(c.Request.Context(), user.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, user.ErrUsernameExists), errors.Is(err, user.ErrEmailExists):
			statusCode = http.StatusConflict
		case errors.Is(err, user.ErrInvalidInput):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	log.Infof("User registered: %s", created.Username)
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:       created.ID.String(),
		Username: created.Username,
		Email:    created.Email,
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue an opaque session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse "Session issued"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.sessionService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, session.ErrInvalidCredentials) {
			statusCode = http.StatusUnauthorized
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		SessionToken: sess.Token,
		Username:     req.Username,
		ExpiresAt:    sess.ExpiresAt.Unix(),
	})
}

// Logout godoc
// @Summary Log out
// @Description Invalidate a session token. Succeeds even for unknown tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.LogoutRequest true "Logout request"
// @Success 200 {object} map[string]string "Logged out"
// @Router /api/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	// Missing or malformed body is treated the same as an unknown token
	_ = c.ShouldBindJSON(&req)

	if err := h.sessionService.Logout(c.Request.Context(), req.SessionToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse "Profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	u, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, user.ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, UserToProfile(u))
}
