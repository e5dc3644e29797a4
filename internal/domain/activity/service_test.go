package activity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() Service {
	return NewService(NewMemoryRepository(), zap.NewNop())
}

func boolPtr(b bool) *bool { return &b }

func TestStatusCreatesEmptyRecord(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	record, err := svc.Status(context.Background(), userID, TypeHydration)
	require.NoError(t, err)
	assert.Equal(t, 0, record.Count)

	entries, err := record.DecodeEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLogAccumulatesCountAndEntries(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	increments := []int{2, 1, 3}
	var record *Record
	var err error
	for _, glasses := range increments {
		record, err = svc.Log(ctx, userID, TypeHydration, glasses, Entry{Glasses: glasses})
		require.NoError(t, err)
	}

	assert.Equal(t, 6, record.Count)

	entries, err := record.DecodeEntries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, glasses := range increments {
		assert.Equal(t, glasses, entries[i].Glasses)
		assert.False(t, entries[i].Timestamp.IsZero(), "entry %d should carry a server timestamp", i)
	}
}

func TestLogRejectsNonPositiveIncrement(t *testing.T) {
	svc := newTestService()

	_, err := svc.Log(context.Background(), uuid.New(), TypeHydration, 0, Entry{})
	assert.ErrorIs(t, err, ErrInvalidIncrement)

	_, err = svc.Log(context.Background(), uuid.New(), TypeHydration, -2, Entry{})
	assert.ErrorIs(t, err, ErrInvalidIncrement)
}

func TestLogRejectsUnknownType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Log(context.Background(), uuid.New(), Type("napping"), 1, Entry{})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestResetClearsOnlyTargetType(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.Log(ctx, userID, TypeHydration, 4, Entry{Glasses: 4})
	require.NoError(t, err)
	_, err = svc.Log(ctx, userID, TypeBrushing, 1, Entry{SessionType: SessionMorning})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, userID, TypeHydration))

	hydration, err := svc.Status(ctx, userID, TypeHydration)
	require.NoError(t, err)
	assert.Equal(t, 0, hydration.Count)
	entries, err := hydration.DecodeEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	brushing, err := svc.Status(ctx, userID, TypeBrushing)
	require.NoError(t, err)
	assert.Equal(t, 1, brushing.Count)
}

func TestResetDoesNotAffectOtherUsers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Log(ctx, alice, TypeHydration, 2, Entry{Glasses: 2})
	require.NoError(t, err)
	_, err = svc.Log(ctx, bob, TypeHydration, 5, Entry{Glasses: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, alice, TypeHydration))

	record, err := svc.Status(ctx, bob, TypeHydration)
	require.NoError(t, err)
	assert.Equal(t, 5, record.Count)
}

func TestResetAllCoversEveryType(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.Log(ctx, userID, TypeHydration, 3, Entry{Glasses: 3})
	require.NoError(t, err)
	_, err = svc.Log(ctx, userID, TypeEmotions, 1, Entry{ScenarioID: "scenario_1", SelectedMood: "happy"})
	require.NoError(t, err)

	outcome, err := svc.ResetAll(ctx, userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, AllTypes, outcome.Reset)
	assert.Empty(t, outcome.Failed)

	for _, activityType := range AllTypes {
		record, err := svc.Status(ctx, userID, activityType)
		require.NoError(t, err)
		assert.Equal(t, 0, record.Count, "type %s should be reset", activityType)
	}
}

func TestPuzzleHighScoreIsLongestStreak(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	// true, true, false, true: the longest run is the first two
	for _, correct := range []bool{true, true, false, true} {
		_, err := svc.Log(ctx, userID, TypePuzzles, 1, Entry{
			PuzzleID:     "puzzle_1",
			UserSequence: []int{2, 4, 6},
			Correct:      boolPtr(correct),
		})
		require.NoError(t, err)
	}

	highScore, err := svc.PuzzleHighScore(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, highScore)
}

func TestPuzzleHighScoreEmptyDay(t *testing.T) {
	svc := newTestService()

	highScore, err := svc.PuzzleHighScore(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, highScore)
}

func TestBrushingStatusFlagsPresenceNotCount(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.Log(ctx, userID, TypeBrushing, 1, Entry{SessionType: SessionMorning})
	require.NoError(t, err)
	_, err = svc.Log(ctx, userID, TypeBrushing, 1, Entry{SessionType: SessionMorning})
	require.NoError(t, err)

	detail, err := svc.BrushingStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Count)
	assert.True(t, detail.MorningCompleted)
	assert.False(t, detail.NightCompleted)
	assert.Len(t, detail.Sessions, 2)
}

func TestEntriesPreserveInsertionOrder(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	moods := []string{"calm", "happy", "anxious"}
	for _, mood := range moods {
		_, err := svc.Log(ctx, userID, TypeEmotions, 1, Entry{ScenarioID: "scenario_2", SelectedMood: mood})
		require.NoError(t, err)
	}

	entries, err := svc.Entries(ctx, userID, TypeEmotions)
	require.NoError(t, err)
	require.Len(t, entries, len(moods))
	for i, mood := range moods {
		assert.Equal(t, mood, entries[i].SelectedMood)
	}
}
