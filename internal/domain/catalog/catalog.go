// Package catalog holds the fixed content served by the public content
// endpoints: the puzzle list, emotion scenarios, mood tips, the
// affirmation word bank and the rotating daily wellness tips.
package catalog

import "math/rand"

// Puzzle describes one cognitive puzzle offered to users
type Puzzle struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Difficulty int    `json:"difficulty"`
}

// Scenario is a short situation used in the emotional awareness exercise
type Scenario struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

var puzzles = []Puzzle{
	{ID: "sequence_1", Type: "sequence", Difficulty: 1},
	{ID: "sequence_2", Type: "sequence", Difficulty: 2},
	{ID: "sequence_3", Type: "sequence", Difficulty: 3},
}

var scenarios = []Scenario{
	{ID: "scenario_1", Text: "You missed the bus this morning and had to walk to work in the rain."},
	{ID: "scenario_2", Text: "Your friend surprised you with your favorite coffee."},
	{ID: "scenario_3", Text: "You received a compliment from your boss about your recent project."},
	{ID: "scenario_4", Text: "You're stuck in traffic and running late for an important meeting."},
	{ID: "scenario_5", Text: "You found a $20 bill on the sidewalk."},
}

var moodTips = map[string]string{
	"happy":      "It's wonderful to feel happy! Try to savor these positive moments and share your joy with others.",
	"sad":        "It's okay to feel sad sometimes. Consider talking to someone you trust or doing something that usually brings you comfort.",
	"anxious":    "Anxiety is a normal emotion. Try deep breathing exercises or grounding techniques to help manage these feelings.",
	"calm":       "Feeling calm is great for your well-being. This is a good time for reflection or mindfulness practices.",
	"excited":    "Excitement can be energizing! Channel this positive energy into productive activities or creative pursuits.",
	"frustrated": "Frustration is a natural response. Try to identify what's causing it and take small steps to address the situation.",
}

const genericMoodTip = "All emotions are valid. Take time to understand and process your feelings."

var affirmationWords = []string{
	"I", "am", "strong", "capable", "worthy", "loved", "brave", "confident", "peaceful", "grateful",
	"will", "can", "deserve", "choose", "believe", "create", "achieve", "grow", "heal", "thrive",
	"today", "always", "everyday", "moment", "journey", "life", "future", "present", "past", "now",
}

var dailyTips = []string{
	"Stay hydrated! Your brain is 75% water - keep it functioning at its best.",
	"Take deep breaths throughout the day to reduce stress and improve focus.",
	"Regular exercise boosts mood and energy levels naturally.",
	"A good night's sleep is essential for both physical and mental health.",
	"Practice gratitude daily - it can improve your overall well-being.",
	"Limit screen time before bed for better sleep quality.",
	"Connect with nature regularly to reduce stress and improve mood.",
}

// Puzzles returns the fixed puzzle list
func Puzzles() []Puzzle {
	out := make([]Puzzle, len(puzzles))
	copy(out, puzzles)
	return out
}

// RandomScenario picks one emotion scenario at random
func RandomScenario() Scenario {
	return scenarios[rand.Intn(len(scenarios))]
}

// Scenarios returns the fixed scenario set
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// MoodTip returns the tip for the given mood, or a generic tip for moods
// outside the known set.
func MoodTip(mood string) string {
	if tip, ok := moodTips[mood]; ok {
		return tip
	}
	return genericMoodTip
}

// AffirmationWords returns the fixed word bank
func AffirmationWords() []string {
	out := make([]string, len(affirmationWords))
	copy(out, affirmationWords)
	return out
}

// RandomDailyTip picks one general wellness tip at random
func RandomDailyTip() string {
	return dailyTips[rand.Intn(len(dailyTips))]
}
