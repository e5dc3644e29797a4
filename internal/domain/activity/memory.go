package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type recordKey struct {
	userID       uuid.UUID
	day          string
	activityType Type
}

// MemoryRepository is a mutex-guarded in-memory Repository. One lock
// covers the whole map, which gives the same per-key serialization the
// SQL implementation gets from its unique index and row locks.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[recordKey]*Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[recordKey]*Record),
	}
}

func (m *MemoryRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, day string, activityType Type) (*Record, error) {
	if !activityType.Valid() {
		return nil, ErrInvalidType
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	record := m.getOrCreateLocked(userID, day, activityType)
	clone := *record
	return &clone, nil
}

func (m *MemoryRepository) Append(ctx context.Context, userID uuid.UUID, day string, activityType Type, increment int, entry Entry) (*Record, error) {
	if !activityType.Valid() {
		return nil, ErrInvalidType
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	record := m.getOrCreateLocked(userID, day, activityType)

	entries, err := record.DecodeEntries()
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	if err := record.EncodeEntries(entries); err != nil {
		return nil, err
	}
	record.Count += increment
	record.UpdatedAt = time.Now().UTC()

	clone := *record
	return &clone, nil
}

func (m *MemoryRepository) Reset(ctx context.Context, userID uuid.UUID, day string, activityType Type) (*Record, error) {
	if !activityType.Valid() {
		return nil, ErrInvalidType
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	record := m.getOrCreateLocked(userID, day, activityType)
	record.Count = 0
	if err := record.EncodeEntries([]Entry{}); err != nil {
		return nil, err
	}
	record.UpdatedAt = time.Now().UTC()

	clone := *record
	return &clone, nil
}

func (m *MemoryRepository) getOrCreateLocked(userID uuid.UUID, day string, activityType Type) *Record {
	key := recordKey{userID: userID, day: day, activityType: activityType}
	if record, ok := m.records[key]; ok {
		return record
	}
	now := time.Now().UTC()
	record := &Record{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         day,
		ActivityType: activityType,
		Count:        0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	record.EncodeEntries([]Entry{})
	m.records[key] = record
	return record
}
