package session

import (
	"context"
	"errors"

	"github.com/AbdullahKhetran/wellness-arcade/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Repository defines the interface for session persistence operations
type Repository interface {
	Create(ctx context.Context, session *Session) error
	FindByToken(ctx context.Context, token string) (*Session, error)
	// DeleteByToken removes the session if present. Deleting an absent
	// token is not an error.
	DeleteByToken(ctx context.Context, token string) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, session *Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) FindByToken(ctx context.Context, token string) (*Session, error) {
	var session Session
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, result.Error
	}
	return &session, nil
}

func (r *repository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&Session{}).Error
}
