package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/internal/ai"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/handlers"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/activity"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/user"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	userRepo := user.NewMemoryRepository()
	sessionRepo := session.NewMemoryRepository()
	activityRepo := activity.NewMemoryRepository()

	userService := user.NewService(userRepo, logger)
	sessionService := session.NewService(sessionRepo, userRepo, time.Hour, logger)
	activityService := activity.NewService(activityRepo, logger)
	generator := ai.NewGenerator(config.AIConfig{})

	userHandler := handlers.NewUserHandler(userService, sessionService)
	activityHandler := handlers.NewActivityHandler(activityService)
	puzzleHandler := handlers.NewPuzzleHandler(activityService)
	emotionHandler := handlers.NewEmotionHandler(activityService)
	affirmationHandler := handlers.NewAffirmationHandler(activityService, generator)

	router := gin.New()
	SetupHealthRoutes(router)
	NewUserRoutes(userHandler, sessionService, nil).RegisterRoutes(router)
	NewActivityRoutes(activityHandler, sessionService).RegisterRoutes(router)
	NewPuzzleRoutes(puzzleHandler, sessionService).RegisterRoutes(router)
	NewEmotionRoutes(emotionHandler, sessionService).RegisterRoutes(router)
	NewAffirmationRoutes(affirmationHandler, sessionService).RegisterRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	payload := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"pw12345678"}`, username, username)
	w := doRequest(router, http.MethodPost, "/api/register", payload, "")
	require.Equal(t, http.StatusCreated, w.Code, "register: %s", w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/login", fmt.Sprintf(`{"username":%q,"password":"pw12345678"}`, username), "")
	require.Equal(t, http.StatusOK, w.Code, "login: %s", w.Body.String())

	token, ok := decodeBody(t, w)["session_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterConflicts(t *testing.T) {
	router := newTestRouter()

	payload := `{"username":"sana","email":"sana@example.com","password":"pw12345678"}`
	w := doRequest(router, http.MethodPost, "/api/register", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/register", payload, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, http.MethodPost, "/api/register", `{"username":"other","email":"sana@example.com","password":"pw12345678"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter()
	registerAndLogin(t, router, "sana")

	w := doRequest(router, http.MethodPost, "/api/login", `{"username":"sana","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/login", `{"username":"ghost","password":"pw12345678"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedEndpointsRequireSession(t *testing.T) {
	router := newTestRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/hydration/log"},
		{http.MethodGet, "/api/hydration/status"},
		{http.MethodPost, "/api/brushing/log"},
		{http.MethodPost, "/api/puzzles/submit"},
		{http.MethodPost, "/api/emotions/log"},
		{http.MethodPost, "/api/affirmations/submit"},
		{http.MethodPost, "/api/stats/reset"},
	}

	for _, ep := range protected {
		w := doRequest(router, ep.method, ep.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without token", ep.method, ep.path)

		w = doRequest(router, ep.method, ep.path, "", "session_123_forged")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with forged token", ep.method, ep.path)
	}
}

func TestHydrationLifecycle(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "sana")

	w := doRequest(router, http.MethodPost, "/api/hydration/log", `{"glasses":3}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(3), decodeBody(t, w)["total_today"])

	// Omitted glasses defaults to one
	w = doRequest(router, http.MethodPost, "/api/hydration/log", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), decodeBody(t, w)["total_today"])

	w = doRequest(router, http.MethodGet, "/api/hydration/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(4), body["glasses_today"])
	assert.Equal(t, float64(8), body["goal"])

	w = doRequest(router, http.MethodPost, "/api/hydration/reset", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/hydration/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["glasses_today"])
}

func TestBrushingCompletionFlags(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "sana")

	w := doRequest(router, http.MethodPost, "/api/brushing/log", `{"session_type":"morning"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/brushing/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(2), body["goal"])
	assert.Equal(t, true, body["morning_completed"])
	assert.Equal(t, false, body["night_completed"])

	w = doRequest(router, http.MethodGet, "/api/brushing/status/detailed", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	sessions, ok := decodeBody(t, w)["sessions"].([]any)
	require.True(t, ok)
	assert.Len(t, sessions, 1)

	// session_type outside morning/night is rejected at the boundary
	w = doRequest(router, http.MethodPost, "/api/brushing/log", `{"session_type":"noon"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPuzzleListAndHighScore(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/puzzles", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	puzzles, ok := decodeBody(t, w)["puzzles"].([]any)
	require.True(t, ok)
	assert.Len(t, puzzles, 3)

	token := registerAndLogin(t, router, "sana")
	for _, correct := range []bool{true, true, false, true} {
		payload := fmt.Sprintf(`{"puzzle_id":"sequence_1","user_sequence":[2,4,6],"correct":%t}`, correct)
		w = doRequest(router, http.MethodPost, "/api/puzzles/submit", payload, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = doRequest(router, http.MethodGet, "/api/puzzles/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["high_score_today"])
	assert.Equal(t, float64(4), body["attempts_today"])
}

func TestEmotionScenarioLogAndTip(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/emotions/scenario", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["text"])

	w = doRequest(router, http.MethodGet, "/api/emotions/tip?mood=happy", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	happyTip := decodeBody(t, w)["tip"]

	w = doRequest(router, http.MethodGet, "/api/emotions/tip?mood=unheard-of", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	genericTip := decodeBody(t, w)["tip"]
	assert.NotEqual(t, happyTip, genericTip)

	token := registerAndLogin(t, router, "sana")
	w = doRequest(router, http.MethodPost, "/api/emotions/log", `{"scenario_id":"scenario_1","selected_mood":"happy"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/emotions/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["scenarios_today"])
}

func TestAffirmationGenerateUsesFallbackWhenDisabled(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodPost, "/api/affirmations/generate", `{"words":"brave, today"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`"brave today." - You have the power to create positive change in your life.`,
		decodeBody(t, w)["affirmation"],
	)
}

func TestAffirmationSubmitAndHistory(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "sana")

	payload := `{"words":["I","am","strong"],"generated_affirmation":"I am strong."}`
	w := doRequest(router, http.MethodPost, "/api/affirmations/submit", payload, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/affirmations/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])

	w = doRequest(router, http.MethodGet, "/api/affirmations/history", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	history, ok := decodeBody(t, w)["affirmations"].([]any)
	require.True(t, ok)
	require.Len(t, history, 1)
	first, ok := history[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "I am strong.", first["generated_affirmation"])
}

func TestResetAllStats(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "sana")

	w := doRequest(router, http.MethodPost, "/api/hydration/log", `{"glasses":5}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodPost, "/api/breathing/log", `{"duration_seconds":120}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/stats/reset", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	reset, ok := decodeBody(t, w)["reset"].([]any)
	require.True(t, ok)
	assert.Len(t, reset, 6)

	w = doRequest(router, http.MethodGet, "/api/hydration/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["glasses_today"])

	w = doRequest(router, http.MethodGet, "/api/breathing/status", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["sessions_today"])
}

func TestLogoutInvalidatesSession(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "sana")

	w := doRequest(router, http.MethodGet, "/api/profile", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/logout", fmt.Sprintf(`{"session_token":%q}`, token), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/profile", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logging out an already dead token still succeeds
	w = doRequest(router, http.MethodPost, "/api/logout", fmt.Sprintf(`{"session_token":%q}`, token), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileReturnsAccountDetails(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "sana")

	w := doRequest(router, http.MethodGet, "/api/profile", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "sana", body["username"])
	assert.Equal(t, "sana@example.com", body["email"])
	assert.NotEmpty(t, body["created_at"])
}

func TestPingAndDailyTip(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/ping", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "pong", body["message"])
	assert.NotEmpty(t, body["timestamp"])

	w = doRequest(router, http.MethodGet, "/api/tip", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["tip"])
}
