package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/pkg/security/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Common errors
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrInvalidInput   = errors.New("invalid input")
)

// RegisterInput represents the input for registering a new user
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service interface
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func validateRegisterInput(input RegisterInput) error {
	if input.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if input.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

// Register creates a new account. Username and email must both be unused;
// the password is stored only as a bcrypt digest.
func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("checking username existence: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	existing, err = s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("checking email existence: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: digest,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("User registered", zap.String("username", user.Username))

	return user, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}
