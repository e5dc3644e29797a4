package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Type identifies one of the tracked wellness behaviors
type Type string

const (
	TypeHydration    Type = "hydration"
	TypeBrushing     Type = "brushing"
	TypeBreathing    Type = "breathing"
	TypePuzzles      Type = "puzzles"
	TypeEmotions     Type = "emotions"
	TypeAffirmations Type = "affirmations"
)

// AllTypes lists every tracked activity type
var AllTypes = []Type{
	TypeHydration,
	TypeBrushing,
	TypeBreathing,
	TypePuzzles,
	TypeEmotions,
	TypeAffirmations,
}

// Valid reports whether t is one of the known activity types
func (t Type) Valid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Brushing session markers
const (
	SessionMorning = "morning"
	SessionNight   = "night"
)

// Entry is one logged event within a day's record. Which fields are set
// depends on the record's activity type; Timestamp is always assigned by
// the server at append time. Entries are serialized into the record's
// JSON column and never mutated individually.
type Entry struct {
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

// Record is the daily ledger for one (user, day, activity type) triple:
// a monotonic counter plus an append-only log of entries. At most one
// record exists per triple, enforced by the composite unique index.
// Reset clears the record's content but never deletes the row.
type Record struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_day_type,priority:1"`
	Date         string         `json:"date" gorm:"size:10;not null;uniqueIndex:idx_user_day_type,priority:2"`
	ActivityType Type           `json:"activity_type" gorm:"size:50;not null;uniqueIndex:idx_user_day_type,priority:3"`
	Count        int            `json:"count" gorm:"not null;default:0"`
	Entries      datatypes.JSON `json:"entries" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName specifies the table name for the Record model
func (Record) TableName() string {
	return "daily_activity_records"
}

// BeforeCreate is called before creating a new activity record
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if len(r.Entries) == 0 {
		r.Entries = datatypes.JSON("[]")
	}
	return nil
}

// DecodeEntries unpacks the record's serialized entry log in insertion
// order. An empty column decodes to an empty slice.
func (r *Record) DecodeEntries() ([]Entry, error) {
	if len(r.Entries) == 0 {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal(r.Entries, &entries); err != nil {
		return nil, fmt.Errorf("decoding entries for record %s: %w", r.ID, err)
	}
	return entries, nil
}

// EncodeEntries replaces the record's serialized entry log
func (r *Record) EncodeEntries(entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding entries for record %s: %w", r.ID, err)
	}
	r.Entries = datatypes.JSON(raw)
	return nil
}

// DayKey formats a point in time as the calendar-day key used in the
// composite record key. The server's local calendar defines day
// boundaries.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today returns the day key for the current server-local date
func Today() string {
	return DayKey(time.Now())
}
