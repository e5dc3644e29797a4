package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodTipKnownMoods(t *testing.T) {
	for _, mood := range []string{"happy", "sad", "frustrated", "anxious", "calm", "excited"} {
		tip := MoodTip(mood)
		assert.NotEmpty(t, tip, "mood %s should have a tip", mood)
		assert.NotEqual(t, genericMoodTip, tip, "mood %s should have its own tip", mood)
	}
}

func TestMoodTipUnknownMoodGetsGenericTip(t *testing.T) {
	assert.Equal(t, genericMoodTip, MoodTip("bewildered"))
	assert.Equal(t, genericMoodTip, MoodTip(""))
}

func TestPuzzlesAreStable(t *testing.T) {
	puzzles := Puzzles()
	require.Len(t, puzzles, 3)

	seen := make(map[string]bool)
	for _, p := range puzzles {
		assert.False(t, seen[p.ID], "duplicate puzzle id %s", p.ID)
		seen[p.ID] = true
		assert.Equal(t, "sequence", p.Type)
		assert.Positive(t, p.Difficulty)
	}
}

func TestPuzzlesReturnsCopy(t *testing.T) {
	first := Puzzles()
	first[0].ID = "mutated"
	assert.NotEqual(t, "mutated", Puzzles()[0].ID)
}

func TestRandomScenarioIsFromTheFixedSet(t *testing.T) {
	known := make(map[string]bool)
	for _, s := range Scenarios() {
		known[s.ID] = true
	}
	require.Len(t, known, 5)

	for i := 0; i < 20; i++ {
		s := RandomScenario()
		assert.True(t, known[s.ID], "unexpected scenario %s", s.ID)
		assert.NotEmpty(t, s.Text)
	}
}

func TestAffirmationWordBank(t *testing.T) {
	words := AffirmationWords()
	assert.Len(t, words, 30)

	seen := make(map[string]bool)
	for _, w := range words {
		assert.False(t, seen[w], "duplicate word %s", w)
		seen[w] = true
	}
}

func TestRandomDailyTipIsFromTheFixedSet(t *testing.T) {
	known := make(map[string]bool)
	for _, tip := range dailyTips {
		known[tip] = true
	}

	for i := 0; i < 20; i++ {
		assert.True(t, known[RandomDailyTip()])
	}
}
