package activity

// Derived views computed from a day's entry log. These never mutate state.

// PuzzleHighScore returns the length of the longest run of consecutive
// correct puzzle entries in insertion order. Any incorrect entry breaks
// the run back to zero.
func PuzzleHighScore(entries []Entry) int {
	highScore := 0
	current := 0
	for _, e := range entries {
		if e.Correct != nil && *e.Correct {
			current++
			if current > highScore {
				highScore = current
			}
		} else {
			current = 0
		}
	}
	return highScore
}

// BrushingCompletion reports whether any entry marks a morning or night
// brushing session. Presence only; repeated sessions do not matter here.
func BrushingCompletion(entries []Entry) (morning, night bool) {
	for _, e := range entries {
		switch e.SessionType {
		case SessionMorning:
			morning = true
		case SessionNight:
			night = true
		}
	}
	return morning, night
}
