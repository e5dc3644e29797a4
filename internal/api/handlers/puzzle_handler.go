package handlers

import (
	"net/http"

	"github.com/AbdullahKhetran/wellness-arcade/internal/api/dto"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/activity"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// PuzzleHandler handles HTTP requests for cognitive puzzles
type PuzzleHandler struct {
	service activity.Service
}

// NewPuzzleHandler creates a new PuzzleHandler instance
func NewPuzzleHandler(service activity.Service) *PuzzleHandler {
	return &PuzzleHandler{service: service}
}

// ListPuzzles godoc
// @Summary List the available puzzles
// @Tags puzzles
// @Produce json
// @Success 200 {array} dto.PuzzleResponse "Puzzle definitions"
// @Router /api/puzzles [get]
func (h *PuzzleHandler) ListPuzzles(c *gin.Context) {
	puzzles := catalog.Puzzles()
	out := make([]dto.PuzzleResponse, 0, len(puzzles))
	for _, p := range puzzles {
		out = append(out, dto.PuzzleResponse{
			ID:         p.ID,
			Type:       p.Type,
			Difficulty: p.Difficulty,
		})
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": out})
}

// SubmitPuzzle godoc
// @Summary Record a puzzle attempt
// @Tags puzzles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body dto.PuzzleSubmitRequest true "Attempt"
// @Success 200 {object} dto.PuzzleSubmitResponse "Attempt recorded"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/puzzles/submit [post]
func (h *PuzzleHandler) SubmitPuzzle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.PuzzleSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.service.Log(c.Request.Context(), userID, activity.TypePuzzles, 1, activity.Entry{
		PuzzleID:     req.PuzzleID,
		UserSequence: req.UserSequence,
		Correct:      req.Correct,
	})
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	middleware.CountActivityLog(string(activity.TypePuzzles))
	c.JSON(http.StatusOK, dto.PuzzleSubmitResponse{
		Message: "Puzzle attempt recorded",
		Correct: *req.Correct,
	})
}

// PuzzleStatus godoc
// @Summary Get today's puzzle high score
// @Description The high score is the longest run of consecutive correct
// attempts today, in submission order.
// @Tags puzzles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PuzzleStatusResponse "Today's high score"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/puzzles/status [get]
func (h *PuzzleHandler) PuzzleStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.service.Status(c.Request.Context(), userID, activity.TypePuzzles)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}
	highScore, err := h.service.PuzzleHighScore(c.Request.Context(), userID)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PuzzleStatusResponse{
		HighScoreToday: highScore,
		AttemptsToday:  record.Count,
	})
}
