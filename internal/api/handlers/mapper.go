package handlers

import (
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/dto"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/activity"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/user"
)

// UserToProfile converts a domain user to its API representation
func UserToProfile(u *user.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// EntryToResponse converts one logged event to its API representation
func EntryToResponse(e activity.Entry) dto.EntryResponse {
	return dto.EntryResponse{
		Glasses:              e.Glasses,
		SessionType:          e.SessionType,
		DurationSeconds:      e.DurationSeconds,
		PuzzleID:             e.PuzzleID,
		UserSequence:         e.UserSequence,
		Correct:              e.Correct,
		ScenarioID:           e.ScenarioID,
		SelectedMood:         e.SelectedMood,
		Words:                e.Words,
		GeneratedAffirmation: e.GeneratedAffirmation,
		Timestamp:            e.Timestamp,
	}
}

// EntriesToResponse converts a day's entry log preserving insertion order
func EntriesToResponse(entries []activity.Entry) []dto.EntryResponse {
	out := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryToResponse(e))
	}
	return out
}
