package dto

// PuzzleResponse describes one static puzzle definition
type PuzzleResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Difficulty int    `json:"difficulty"`
}

// ScenarioResponse is one emotion scenario the user reacts to
type ScenarioResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MoodTipResponse is a short static tip for a mood
type MoodTipResponse struct {
	Mood string `json:"mood"`
	Tip  string `json:"tip"`
}

// WordBankResponse is the fixed affirmation word list
type WordBankResponse struct {
	Words []string `json:"words"`
}

// DailyTipResponse is one general wellness tip
type DailyTipResponse struct {
	Tip string `json:"tip"`
}
