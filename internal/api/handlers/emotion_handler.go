package handlers

import (
	"net/http"

	"github.com/AbdullahKhetran/wellness-arcade/internal/api/dto"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/activity"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// EmotionHandler handles HTTP requests for emotion scenarios and tips
type EmotionHandler struct {
	service activity.Service
}

// NewEmotionHandler creates a new EmotionHandler instance
func NewEmotionHandler(service activity.Service) *EmotionHandler {
	return &EmotionHandler{service: service}
}

// GetScenario godoc
// @Summary Get a random emotion scenario
// @Tags emotions
// @Produce json
// @Success 200 {object} dto.ScenarioResponse "One scenario"
// @Router /api/emotions/scenario [get]
func (h *EmotionHandler) GetScenario(c *gin.Context) {
	scenario := catalog.RandomScenario()
	c.JSON(http.StatusOK, dto.ScenarioResponse{
		ID:   scenario.ID,
		Text: scenario.Text,
	})
}

// LogEmotion godoc
// @Summary Record the mood picked for a scenario
// @Tags emotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body dto.EmotionLogRequest true "Scenario response"
// @Success 200 {object} dto.LogResponse "Updated total"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/emotions/log [post]
func (h *EmotionHandler) LogEmotion(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.EmotionLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.Log(c.Request.Context(), userID, activity.TypeEmotions, 1, activity.Entry{
		ScenarioID:   req.ScenarioID,
		SelectedMood: req.SelectedMood,
	})
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	middleware.CountActivityLog(string(activity.TypeEmotions))
	c.JSON(http.StatusOK, dto.LogResponse{
		Message:    "Emotion logged",
		TotalToday: record.Count,
	})
}

// EmotionStatus godoc
// @Summary Get today's completed scenarios
// @Tags emotions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.EmotionStatusResponse "Today's count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/emotions/status [get]
func (h *EmotionHandler) EmotionStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.service.Status(c.Request.Context(), userID, activity.TypeEmotions)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.EmotionStatusResponse{ScenariosToday: record.Count})
}

// MoodTip godoc
// @Summary Get a short tip for a mood
// @Description Unknown moods get a generic tip rather than an error
// @Tags emotions
// @Produce json
// @Param mood query string false "Mood name"
// @Success 200 {object} dto.MoodTipResponse "Tip"
// @Router /api/emotions/tip [get]
func (h *EmotionHandler) MoodTip(c *gin.Context) {
	mood := c.Query("mood")
	c.JSON(http.StatusOK, dto.MoodTipResponse{
		Mood: mood,
		Tip:  catalog.MoodTip(mood),
	})
}
