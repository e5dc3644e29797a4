package dto

import "time"

// --- hydration ---

// HydrationLogRequest logs glasses of water drunk; defaults to 1 when
// glasses is omitted
type HydrationLogRequest struct {
	Glasses int `json:"glasses" binding:"omitempty,min=1"`
}

// HydrationStatusResponse reports today's hydration progress
type HydrationStatusResponse struct {
	GlassesToday int `json:"glasses_today"`
	Goal         int `json:"goal"`
}

// --- brushing ---

// BrushingLogRequest logs a tooth-brushing session
type BrushingLogRequest struct {
	SessionType string `json:"session_type" binding:"required,oneof=morning night"`
}

// BrushingStatusResponse reports today's brushing count and goal
type BrushingStatusResponse struct {
	Count            int  `json:"count"`
	Goal             int  `json:"goal"`
	MorningCompleted bool `json:"morning_completed"`
	NightCompleted   bool `json:"night_completed"`
}

// BrushingDetailResponse adds the day's full session list
type BrushingDetailResponse struct {
	BrushingStatusResponse
	Sessions []EntryResponse `json:"sessions"`
}

// --- breathing ---

// BreathingLogRequest logs a completed breathing exercise
type BreathingLogRequest struct {
	DurationSeconds int `json:"duration_seconds" binding:"required,min=1"`
}

// BreathingStatusResponse reports today's completed exercises
type BreathingStatusResponse struct {
	SessionsToday int `json:"sessions_today"`
}

// --- puzzles ---

// PuzzleSubmitRequest records one puzzle attempt
type PuzzleSubmitRequest struct {
	PuzzleID     string `json:"puzzle_id" binding:"required"`
	UserSequence []int  `json:"user_sequence" binding:"required"`
	Correct      *bool  `json:"correct" binding:"required"`
}

// PuzzleSubmitResponse echoes the correctness of the attempt
type PuzzleSubmitResponse struct {
	Message string `json:"message"`
	Correct bool   `json:"correct"`
}

// PuzzleStatusResponse reports the day's best streak of correct attempts
type PuzzleStatusResponse struct {
	HighScoreToday int `json:"high_score_today"`
	AttemptsToday  int `json:"attempts_today"`
}

// --- emotions ---

// EmotionLogRequest records the mood picked for a scenario
type EmotionLogRequest struct {
	ScenarioID   string `json:"scenario_id" binding:"required"`
	SelectedMood string `json:"selected_mood" binding:"required"`
}

// EmotionStatusResponse reports today's completed scenarios
type EmotionStatusResponse struct {
	ScenariosToday int `json:"scenarios_today"`
}

// --- affirmations ---

// AffirmationGenerateRequest asks for generated text from selected words
type AffirmationGenerateRequest struct {
	Words string `json:"words" binding:"required"`
}

// AffirmationGenerateResponse carries the generated affirmation
type AffirmationGenerateResponse struct {
	Affirmation string `json:"affirmation"`
}

// AffirmationSubmitRequest saves a composed affirmation for today
type AffirmationSubmitRequest struct {
	Words                []string `json:"words" binding:"required,min=1"`
	GeneratedAffirmation string   `json:"generated_affirmation" binding:"required"`
}

// AffirmationStatusResponse reports today's saved affirmations
type AffirmationStatusResponse struct {
	Count int `json:"count"`
}

// AffirmationHistoryResponse lists today's saved affirmations in order
type AffirmationHistoryResponse struct {
	Count        int             `json:"count"`
	Affirmations []EntryResponse `json:"affirmations"`
}

// --- shared ---

// EntryResponse is the wire form of one logged event. Only the fields
// relevant to the entry's activity type are populated.
type EntryResponse struct {
	Glasses              int       `json:"glasses,omitempty"`
	SessionType          string    `json:"session_type,omitempty"`
	DurationSeconds      int       `json:"duration_seconds,omitempty"`
	PuzzleID             string    `json:"puzzle_id,omitempty"`
	UserSequence         []int     `json:"user_sequence,omitempty"`
	Correct              *bool     `json:"correct,omitempty"`
	ScenarioID           string    `json:"scenario_id,omitempty"`
	SelectedMood         string    `json:"selected_mood,omitempty"`
	Words                []string  `json:"words,omitempty"`
	GeneratedAffirmation string    `json:"generated_affirmation,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
}

// LogResponse confirms a log call and reports the day's running total
type LogResponse struct {
	Message    string `json:"message"`
	TotalToday int    `json:"total_today"`
}

// ResetResponse confirms a single-activity reset
type ResetResponse struct {
	Message string `json:"message"`
}

// ResetAllResponse confirms a full daily reset and lists the types reset
type ResetAllResponse struct {
	Message string   `json:"message"`
	Reset   []string `json:"reset"`
	Failed  []string `json:"failed,omitempty"`
}
