package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = errors.New("activity record not found")
	ErrInvalidType    = errors.New("unknown activity type")
)

// Repository defines the interface for daily activity record persistence.
// Implementations must serialize creation per (user, day, type) key so
// concurrent first accesses converge on a single record, and must make
// Append and Reset atomic read-modify-write operations: the counter is
// never incremented without its entry appended, and vice versa.
type Repository interface {
	// GetOrCreate returns the record for the triple, creating an empty
	// one first if absent. Safe under concurrent first access.
	GetOrCreate(ctx context.Context, userID uuid.UUID, day string, activityType Type) (*Record, error)
	// Append atomically increments the counter and appends the entry,
	// creating the record first if needed. Returns the new state.
	Append(ctx context.Context, userID uuid.UUID, day string, activityType Type, increment int, entry Entry) (*Record, error)
	// Reset atomically clears the day's counter and entries. The record
	// itself survives (created first if absent).
	Reset(ctx context.Context, userID uuid.UUID, day string, activityType Type) (*Record, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) GetOrCreate(ctx context.Context, userID uuid.UUID, day string, activityType Type) (*Record, error) {
	if !activityType.Valid() {
		return nil, ErrInvalidType
	}

	record := &Record{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         day,
		ActivityType: activityType,
		Count:        0,
	}

	// The unique index on (user_id, date, activity_type) arbitrates
	// concurrent first accesses: losers of the insert race fall through
	// to the fetch and observe the winner's row.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "activity_type"}},
			DoNothing: true,
		}).
		Create(record).Error
	if err != nil {
		return nil, fmt.Errorf("creating activity record: %w", err)
	}

	return r.find(ctx, r.db.DB, userID, day, activityType, false)
}

func (r *repository) Append(ctx context.Context, userID uuid.UUID, day string, activityType Type, increment int, entry Entry) (*Record, error) {
	if _, err := r.GetOrCreate(ctx, userID, day, activityType); err != nil {
		return nil, err
	}

	var updated *Record
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := r.find(ctx, tx, userID, day, activityType, true)
		if err != nil {
			return err
		}

		entries, err := record.DecodeEntries()
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		if err := record.EncodeEntries(entries); err != nil {
			return err
		}

		record.Count += increment
		record.UpdatedAt = time.Now().UTC()

		if err := tx.Save(record).Error; err != nil {
			return fmt.Errorf("saving activity record: %w", err)
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *repository) Reset(ctx context.Context, userID uuid.UUID, day string, activityType Type) (*Record, error) {
	if _, err := r.GetOrCreate(ctx, userID, day, activityType); err != nil {
		return nil, err
	}

	var updated *Record
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := r.find(ctx, tx, userID, day, activityType, true)
		if err != nil {
			return err
		}

		record.Count = 0
		if err := record.EncodeEntries([]Entry{}); err != nil {
			return err
		}
		record.UpdatedAt = time.Now().UTC()

		if err := tx.Save(record).Error; err != nil {
			return fmt.Errorf("resetting activity record: %w", err)
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *repository) find(ctx context.Context, tx *gorm.DB, userID uuid.UUID, day string, activityType Type, forUpdate bool) (*Record, error) {
	var record Record
	query := tx.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	result := query.
		Where("user_id = ? AND date = ? AND activity_type = ?", userID, day, activityType).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &record, nil
}
