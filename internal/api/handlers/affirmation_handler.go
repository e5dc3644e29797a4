package handlers

import (
	"net/http"
	"strings"

	"github.com/AbdullahKhetran/wellness-arcade/internal/ai"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/dto"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/activity"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// AffirmationHandler handles HTTP requests for the affirmation builder
type AffirmationHandler struct {
	service   activity.Service
	generator ai.Generator
}

// NewAffirmationHandler creates a new AffirmationHandler instance
func NewAffirmationHandler(service activity.Service, generator ai.Generator) *AffirmationHandler {
	return &AffirmationHandler{
		service:   service,
		generator: generator,
	}
}

// WordBank godoc
// @Summary Get the affirmation word bank
// @Tags affirmations
// @Produce json
// @Success 200 {object} dto.WordBankResponse "Word list"
// @Router /api/affirmations/words [get]
func (h *AffirmationHandler) WordBank(c *gin.Context) {
	c.JSON(http.StatusOK, dto.WordBankResponse{Words: catalog.AffirmationWords()})
}

// Generate godoc
// @Summary Generate an affirmation from selected words
// @Description Generation never fails: when the external service is
// unavailable a deterministic local fallback is used.
// @Tags affirmations
// @Accept json
// @Produce json
// @Param words body dto.AffirmationGenerateRequest true "Comma-joined words"
// @Success 200 {object} dto.AffirmationGenerateResponse "Generated text"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/affirmations/generate [post]
func (h *AffirmationHandler) Generate(c *gin.Context) {
	var req dto.AffirmationGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	words := splitWords(req.Words)
	if len(words) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no words selected"})
		return
	}

	c.JSON(http.StatusOK, dto.AffirmationGenerateResponse{
		Affirmation: h.generator.Generate(c.Request.Context(), words),
	})
}

// SubmitAffirmation godoc
// @Summary Save a composed affirmation for today
// @Tags affirmations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body dto.AffirmationSubmitRequest true "Affirmation"
// @Success 200 {object} dto.LogResponse "Updated total"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/affirmations/submit [post]
func (h *AffirmationHandler) SubmitAffirmation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AffirmationSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.Log(c.Request.Context(), userID, activity.TypeAffirmations, 1, activity.Entry{
		Words:                req.Words,
		GeneratedAffirmation: req.GeneratedAffirmation,
	})
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	middleware.CountActivityLog(string(activity.TypeAffirmations))
	c.JSON(http.StatusOK, dto.LogResponse{
		Message:    "Affirmation saved",
		TotalToday: record.Count,
	})
}

// AffirmationStatus godoc
// @Summary Get today's saved affirmation count
// @Tags affirmations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AffirmationStatusResponse "Today's count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/affirmations/status [get]
func (h *AffirmationHandler) AffirmationStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.service.Status(c.Request.Context(), userID, activity.TypeAffirmations)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AffirmationStatusResponse{Count: record.Count})
}

// AffirmationHistory godoc
// @Summary List today's saved affirmations in order
// @Tags affirmations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AffirmationHistoryResponse "Today's affirmations"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/affirmations/history [get]
func (h *AffirmationHandler) AffirmationHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.service.Entries(c.Request.Context(), userID, activity.TypeAffirmations)
	if err != nil {
		c.JSON(activityStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AffirmationHistoryResponse{
		Count:        len(entries),
		Affirmations: EntriesToResponse(entries),
	})
}

func splitWords(raw string) []string {
	var words []string
	for _, w := range strings.Split(raw, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
