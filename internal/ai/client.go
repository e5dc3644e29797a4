package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/AbdullahKhetran/wellness-arcade/pkg/config"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var log = logger.NewLogger()

// Generator produces 1-2 sentences of encouraging text from the words a
// user selected. Implementations never fail: when the external service
// is unreachable or misbehaves the deterministic local fallback is used,
// so callers see generated text either way.
type Generator interface {
	Generate(ctx context.Context, words []string) string
}

const fallbackSuffix = ` - You have the power to create positive change in your life.`

// Fallback deterministically builds an affirmation by quoting the words
// joined by spaces followed by a fixed encouragement. Pure and
// side-effect free; it never fails.
func Fallback(words []string) string {
	return fmt.Sprintf("%q%s", strings.Join(words, " ")+".", fallbackSuffix)
}

const prompt = `You are a compassionate wellness coach whose only task is to create short, positive, and empowering affirmations.

You will be given a list of words that a user selects based on their feelings. Generate a motivational affirmation that reflects these feelings.

IMPORTANT RULES:
- Output exactly 1-2 sentences.
- Do NOT give advice, instructions, or steps.
- Do NOT apologize or explain anything.
- Focus entirely on encouragement and positivity.

User words: %s`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls an external chat-completions API to generate affirmations
type Client struct {
	http  *resty.Client
	model string
}

// NewClient creates a client for the configured text-generation service
func NewClient(cfg config.AIConfig) *Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		http.SetTimeout(cfg.Timeout)
	}
	return &Client{
		http:  http,
		model: cfg.Model,
	}
}

// Generate asks the external service for an affirmation. Any transport
// error, non-2xx status or empty completion falls back locally; the
// dependency failure is absorbed here and never reaches the caller.
func (c *Client) Generate(ctx context.Context, words []string) string {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(prompt, strings.Join(words, ", "))},
		},
		Temperature: 0.2,
	}

	var result chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		log.Error("Affirmation generation request failed", zap.Error(err))
		return Fallback(words)
	}
	if resp.IsError() {
		log.Error("Affirmation generation returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return Fallback(words)
	}

	if len(result.Choices) > 0 {
		if text := strings.TrimSpace(result.Choices[0].Message.Content); text != "" {
			return text
		}
	}

	log.Warn("Affirmation generation returned no content, using fallback")
	return Fallback(words)
}
