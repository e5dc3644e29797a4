package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuotesWordsWithSuffix(t *testing.T) {
	got := Fallback([]string{"brave", "today"})
	assert.Equal(t, `"brave today." - You have the power to create positive change in your life.`, got)
}

func TestFallbackSingleWord(t *testing.T) {
	got := Fallback([]string{"strong"})
	assert.Equal(t, `"strong." - You have the power to create positive change in your life.`, got)
}

func TestGeneratorWithoutKeyNeverCallsOut(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	gen := NewGenerator(config.AIConfig{BaseURL: server.URL, APIKey: "", Model: "gpt-4o-mini"})

	got := gen.Generate(context.Background(), []string{"brave", "today"})
	assert.Equal(t, Fallback([]string{"brave", "today"}), got)
	assert.Zero(t, atomic.LoadInt32(&calls), "disabled generator must not reach the network")
}

func TestClientReturnsCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"You are capable of wonderful things."}}]}`))
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})

	got := client.Generate(context.Background(), []string{"capable", "wonderful"})
	assert.Equal(t, "You are capable of wonderful things.", got)
}

func TestClientFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4o-mini"})

	got := client.Generate(context.Background(), []string{"brave", "today"})
	assert.Equal(t, Fallback([]string{"brave", "today"}), got)
}

func TestClientFallsBackOnEmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4o-mini"})

	got := client.Generate(context.Background(), []string{"calm"})
	assert.Equal(t, Fallback([]string{"calm"}), got)
}

func TestClientFallsBackWhenUnreachable(t *testing.T) {
	client := NewClient(config.AIConfig{
		BaseURL: "http://127.0.0.1:1",
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		Timeout: time.Second,
	})

	got := client.Generate(context.Background(), []string{"brave", "today"})
	assert.Equal(t, Fallback([]string{"brave", "today"}), got)
}
