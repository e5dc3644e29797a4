package handlers

import (
	"errors"
	"net/http"

	"github.com/AbdullahKhetran/wellness-arcade/internal/api/dto"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/activity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Daily targets shown alongside the counters
const (
	hydrationGoal = 8
	brushingGoal  = 2
)

// ActivityHandler handles HTTP requests for the hydration, brushing and
// breathing trackers plus the combined daily reset
type ActivityHandler struct {
	service activity.Service
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(service activity.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func activityStatusCode(err error) int {
	switch {
	case errors.Is(err, activity.ErrInvalidIncrement), errors.Is(err, activity.ErrInvalidType):
		return http.StatusBadRequest
	case errors.Is(err, activity.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

// LogHydration godoc
// @Summary Log glasses of water
// @Description Add one or more glasses to today's hydration count
// @Tags hydration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body dto.HydrationLogRequest false "Glasses to add, default 1"
// @Success 200 {object} dto.LogResponse "Updated total"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/hydration/log [post]
func (h *ActivityHandler) LogHydration(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.HydrationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Glasses == 0 {
		req.Glasses = 1
	}

	record, err := h.service.Log(c.Request.Context(), userID, activity.TypeHydration, req.Glasses, activity.Entry{
		Glasses: req.Glasses,
	})
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	middleware.CountActivityLog(string(activity.TypeHydration))
	c.JSON(http.StatusOK, dto.LogResponse{
		Message:    "Hydration logged",
		TotalToday: record.Count,
	})
}

// HydrationStatus godoc
// @Summary Get today's hydration progress
// @Tags hydration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.HydrationStatusResponse "Today's count and goal"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/hydration/status [get]
func (h *ActivityHandler) HydrationStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.service.Status(c.Request.Context(), userID, activity.TypeHydration)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.HydrationStatusResponse{
		GlassesToday: record.Count,
		Goal:         hydrationGoal,
	})
}

// ResetHydration godoc
// @Summary Reset today's hydration count
// @Tags hydration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResetResponse "Reset confirmation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/hydration/reset [post]
func (h *ActivityHandler) ResetHydration(c *gin.Context) {
	h.resetOne(c, activity.TypeHydration, "Hydration reset for today")
}

// LogBrushing godoc
// @Summary Log a tooth-brushing session
// @Tags brushing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body dto.BrushingLogRequest true "Morning or night session"
// @Success 200 {object} dto.LogResponse "Updated total"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/brushing/log [post]
func (h *ActivityHandler) LogBrushing(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.BrushingLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.Log(c.Request.Context(), userID, activity.TypeBrushing, 1, activity.Entry{
		SessionType: req.SessionType,
	})
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	middleware.CountActivityLog(string(activity.TypeBrushing))
	c.JSON(http.StatusOK, dto.LogResponse{
		Message:    "Brushing session logged",
		TotalToday: record.Count,
	})
}

// BrushingStatus godoc
// @Summary Get today's brushing count and completion flags
// @Tags brushing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BrushingStatusResponse "Today's progress"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/brushing/status [get]
func (h *ActivityHandler) BrushingStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	detail, err := h.service.BrushingStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BrushingStatusResponse{
		Count:            detail.Count,
		Goal:             brushingGoal,
		MorningCompleted: detail.MorningCompleted,
		NightCompleted:   detail.NightCompleted,
	})
}

// BrushingDetail godoc
// @Summary Get today's brushing progress with the full session list
// @Tags brushing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BrushingDetailResponse "Today's sessions"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/brushing/status/detailed [get]
func (h *ActivityHandler) BrushingDetail(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	detail, err := h.service.BrushingStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BrushingDetailResponse{
		BrushingStatusResponse: dto.BrushingStatusResponse{
			Count:            detail.Count,
			Goal:             brushingGoal,
			MorningCompleted: detail.MorningCompleted,
			NightCompleted:   detail.NightCompleted,
		},
		Sessions: EntriesToResponse(detail.Sessions),
	})
}

// ResetBrushing godoc
// @Summary Reset today's brushing record
// @Tags brushing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResetResponse "Reset confirmation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/brushing/reset [post]
func (h *ActivityHandler) ResetBrushing(c *gin.Context) {
	h.resetOne(c, activity.TypeBrushing, "Brushing record reset for today")
}

// LogBreathing godoc
// @Summary Log a completed breathing exercise
// @Tags breathing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body dto.BreathingLogRequest true "Exercise duration"
// @Success 200 {object} dto.LogResponse "Updated total"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/breathing/log [post]
func (h *ActivityHandler) LogBreathing(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.BreathingLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.Log(c.Request.Context(), userID, activity.TypeBreathing, 1, activity.Entry{
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	middleware.CountActivityLog(string(activity.TypeBreathing))
	c.JSON(http.StatusOK, dto.LogResponse{
		Message:    "Breathing exercise logged",
		TotalToday: record.Count,
	})
}

// BreathingStatus godoc
// @Summary Get today's completed breathing exercises
// @Tags breathing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BreathingStatusResponse "Today's count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/breathing/status [get]
func (h *ActivityHandler) BreathingStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.service.Status(c.Request.Context(), userID, activity.TypeBreathing)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BreathingStatusResponse{SessionsToday: record.Count})
}

// ResetAllStats godoc
// @Summary Reset every activity record for today
// @Description Clears each of the six trackers for the current day. On
// partial failure the response lists which types were reset.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResetAllResponse "Reset confirmation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.ResetAllResponse "Partial reset"
// @Router /api/stats/reset [post]
func (h *ActivityHandler) ResetAllStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	outcome, err := h.service.ResetAll(c.Request.Context(), userID)
	resp := dto.ResetAllResponse{
		Message: "All stats reset for today",
		Reset:   typeNames(outcome.Reset),
		Failed:  typeNames(outcome.Failed),
	}
	if err != nil {
		resp.Message = "Some stats could not be reset"
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ActivityHandler) resetOne(c *gin.Context, activityType activity.Type, message string) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.Reset(c.Request.Context(), userID, activityType); err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ResetResponse{Message: message})
}

func typeNames(types []activity.Type) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}
