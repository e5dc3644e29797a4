package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidIncrement = errors.New("increment must be positive")
)

// BrushingDetail is the expanded view of today's brushing record
type BrushingDetail struct {
	Count            int
	MorningCompleted bool
	NightCompleted   bool
	Sessions         []Entry
}

// ResetOutcome reports the per-type result of a reset-all request. When
// Failed is empty the reset covered every activity type.
type ResetOutcome struct {
	Reset  []Type
	Failed []Type
}

// Service is the daily activity ledger. Every operation is scoped to the
// current server-local calendar day; day rollover needs no job because
// the date is part of the record key.
type Service interface {
	// Status returns today's record, creating an empty one if this is
	// the first access of the day.
	Status(ctx context.Context, userID uuid.UUID, activityType Type) (*Record, error)
	// Log increments today's counter and appends an entry carrying a
	// server-assigned timestamp.
	Log(ctx context.Context, userID uuid.UUID, activityType Type, increment int, entry Entry) (*Record, error)
	// Reset clears today's record for one activity type only.
	Reset(ctx context.Context, userID uuid.UUID, activityType Type) error
	// ResetAll resets every activity type for today. On partial failure
	// the outcome lists which types were reset and which were not.
	ResetAll(ctx context.Context, userID uuid.UUID) (*ResetOutcome, error)
	// Entries returns today's entry log in insertion order.
	Entries(ctx context.Context, userID uuid.UUID, activityType Type) ([]Entry, error)
	// PuzzleHighScore computes today's longest consecutive-correct streak.
	PuzzleHighScore(ctx context.Context, userID uuid.UUID) (int, error)
	// BrushingStatus computes today's brushing count, completion flags
	// and session list.
	BrushingStatus(ctx context.Context, userID uuid.UUID) (*BrushingDetail, error)
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

func (s *service) Status(ctx context.Context, userID uuid.UUID, activityType Type) (*Record, error) {
	return s.repo.GetOrCreate(ctx, userID, Today(), activityType)
}

func (s *service) Log(ctx context.Context, userID uuid.UUID, activityType Type, increment int, entry Entry) (*Record, error) {
	if increment <= 0 {
		return nil, ErrInvalidIncrement
	}

	entry.Timestamp = time.Now().UTC()

	record, err := s.repo.Append(ctx, userID, Today(), activityType, increment, entry)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Activity logged",
		zap.String("activity_type", string(activityType)),
		zap.Int("count", record.Count),
	)

	return record, nil
}

func (s *service) Reset(ctx context.Context, userID uuid.UUID, activityType Type) error {
	if _, err := s.repo.Reset(ctx, userID, Today(), activityType); err != nil {
		return err
	}

	s.logger.Info("Activity reset", zap.String("activity_type", string(activityType)))
	return nil
}

func (s *service) ResetAll(ctx context.Context, userID uuid.UUID) (*ResetOutcome, error) {
	day := Today()
	outcome := &ResetOutcome{}
	var failures []string

	for _, activityType := range AllTypes {
		if _, err := s.repo.Reset(ctx, userID, day, activityType); err != nil {
			s.logger.Error("Reset failed for activity type",
				zap.String("activity_type", string(activityType)),
				zap.Error(err),
			)
			outcome.Failed = append(outcome.Failed, activityType)
			failures = append(failures, string(activityType))
			continue
		}
		outcome.Reset = append(outcome.Reset, activityType)
	}

	if len(outcome.Failed) > 0 {
		return outcome, fmt.Errorf("reset failed for: %s", strings.Join(failures, ", "))
	}
	return outcome, nil
}

func (s *service) Entries(ctx context.Context, userID uuid.UUID, activityType Type) ([]Entry, error) {
	record, err := s.repo.GetOrCreate(ctx, userID, Today(), activityType)
	if err != nil {
		return nil, err
	}
	return record.DecodeEntries()
}

func (s *service) PuzzleHighScore(ctx context.Context, userID uuid.UUID) (int, error) {
	entries, err := s.Entries(ctx, userID, TypePuzzles)
	if err != nil {
		return 0, err
	}
	return PuzzleHighScore(entries), nil
}

func (s *service) BrushingStatus(ctx context.Context, userID uuid.UUID) (*BrushingDetail, error) {
	record, err := s.repo.GetOrCreate(ctx, userID, Today(), TypeBrushing)
	if err != nil {
		return nil, err
	}
	entries, err := record.DecodeEntries()
	if err != nil {
		return nil, err
	}
	morning, night := BrushingCompletion(entries)
	return &BrushingDetail{
		Count:            record.Count,
		MorningCompleted: morning,
		NightCompleted:   night,
		Sessions:         entries,
	}, nil
}
