package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-listener/internal/service"
)

// AnalyzeHandler expone el pipeline sin estado ni autenticación.
type AnalyzeHandler struct {
	logger       *zap.Logger
	analysisServ *service.AnalysisService
}

func NewAnalyzeHandler(logger *zap.Logger, analysisServ *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{logger: logger, analysisServ: analysisServ}
}

// Analyze maneja POST /api/analyze. Un mensaje vacío es válido.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	reply, err := h.analysisServ.Analyze(req.Message)
	if err != nil {
		h.logger.Error("analyze failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze message"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// AnalyzeBatch maneja POST /api/analyze/batch.
func (h *AnalyzeHandler) AnalyzeBatch(c *gin.Context) {
	var req struct {
		Messages []string `json:"messages" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	replies, err := h.analysisServ.AnalyzeBatch(c.Request.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, service.ErrBatchSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("batch analyze failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": replies})
}
