package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session binds an opaque token to a user identity for a fixed lifetime.
// A user may hold any number of concurrent sessions; logging in never
// invalidates earlier ones.
type Session struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Token     string    `json:"token" gorm:"uniqueIndex:idx_session_token;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_session_user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// TableName specifies the table name for the Session model
func (Session) TableName() string {
	return "user_sessions"
}

// BeforeCreate is called before creating a new session record
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return nil
}

// Expired reports whether the session passed its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
