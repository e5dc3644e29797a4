package dto

import "time"

// RegisterRequest carries the fields needed to create an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries username/password credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the opaque session token for subsequent requests
type LoginResponse struct {
	SessionToken string `json:"session_token"`
	Username     string `json:"username"`
	ExpiresAt    int64  `json:"expires_at"`
}

// LogoutRequest carries the token to invalidate
type LogoutRequest struct {
	SessionToken string `json:"session_token"`
}

// RegisterResponse confirms account creation
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProfileResponse describes the authenticated user
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
