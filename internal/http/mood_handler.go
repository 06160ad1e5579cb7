package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-listener/internal/service"
)

// MoodHandler expone el registro manual de ánimo.
type MoodHandler struct {
	logger   *zap.Logger
	moodServ *service.MoodService
}

func NewMoodHandler(logger *zap.Logger, moodServ *service.MoodService) *MoodHandler {
	return &MoodHandler{logger: logger, moodServ: moodServ}
}

// Log maneja POST /api/mood.
func (h *MoodHandler) Log(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req struct {
		Emotion   string   `json:"emotion" binding:"required"`
		Intensity *float64 `json:"intensity"`
		Note      string   `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mood request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, err := h.moodServ.Log(c.Request.Context(), userID, service.MoodInput{
		Emotion:   req.Emotion,
		Intensity: req.Intensity,
		Note:      req.Note,
	})
	if err != nil {
		if errors.Is(err, service.ErrMoodInvalidEmotion) || errors.Is(err, service.ErrMoodInvalidIntensity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("mood log failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log mood"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// History maneja GET /api/mood/history.
func (h *MoodHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entries, err := h.moodServ.History(c.Request.Context(), userID, queryLimit(c))
	if err != nil {
		h.logger.Error("mood history failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load mood history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moods": entries})
}

// Summary maneja GET /api/mood/summary.
func (h *MoodHandler) Summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	summary, err := h.moodServ.Summary(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("mood summary failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load mood summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
