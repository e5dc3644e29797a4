package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/user"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/security/auth"
	"go.uber.org/zap"
)

// Authentication errors. Unknown username and wrong password produce the
// same ErrInvalidCredentials so login responses cannot be used to probe
// which usernames exist.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingCredential   = errors.New("not authenticated")
	ErrMalformedCredential = errors.New("invalid authorization header")
	ErrNotAuthenticated    = errors.New("session not recognized")
	ErrSessionExpired      = errors.New("session expired")
)

const bearerSchema = "Bearer "

// Service issues, validates and revokes session tokens.
type Service interface {
	// Login verifies the credentials and mints a fresh session. Prior
	// sessions for the same user stay valid.
	Login(ctx context.Context, username, password string) (*Session, error)
	// Validate resolves a raw token to its owning identity. An expired
	// token is deleted as a side effect before the error is returned.
	Validate(ctx context.Context, token string) (*user.User, error)
	// ValidateBearer extracts the token from an Authorization header
	// value and validates it.
	ValidateBearer(ctx context.Context, header string) (*user.User, error)
	// Logout deletes the token; deleting an unknown token succeeds.
	Logout(ctx context.Context, token string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	ttl      time.Duration
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, ttl time.Duration, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		ttl:      ttl,
		logger:   logger,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !auth.VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &Session{
		Token:     token,
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.logger.Info("Session created", zap.String("username", u.Username))

	return sess, nil
}

func (s *service) Validate(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrMissingCredential
	}

	sess, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("looking up session: %w", err)
	}

	if sess.Expired(time.Now().UTC()) {
		// Lazy expiry: the token is removed here so it stays unusable
		// even if the clock is later rolled back.
		if err := s.repo.DeleteByToken(ctx, token); err != nil {
			s.logger.Error("Failed to delete expired session", zap.Error(err))
		}
		return nil, ErrSessionExpired
	}

	u, err := s.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Orphaned session: the account was deleted underneath it.
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolving session user: %w", err)
	}

	return u, nil
}

func (s *service) ValidateBearer(ctx context.Context, header string) (*user.User, error) {
	if header == "" {
		return nil, ErrMissingCredential
	}
	if !strings.HasPrefix(header, bearerSchema) {
		return nil, ErrMalformedCredential
	}
	token := strings.TrimSpace(header[len(bearerSchema):])
	if token == "" {
		return nil, ErrMalformedCredential
	}
	return s.Validate(ctx, token)
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}
