package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-listener/internal/service"
)

type ExtrasHandler struct {
	logger     *zap.Logger
	extrasServ *service.ExtrasService
}

func NewExtrasHandler(logger *zap.Logger, extrasServ *service.ExtrasService) *ExtrasHandler {
	return &ExtrasHandler{logger: logger, extrasServ: extrasServ}
}

// Quote maneja GET /api/extras/quote.
func (h *ExtrasHandler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, h.extrasServ.RandomQuote())
}

// EmergencyResources maneja GET /api/extras/emergency-resources.
func (h *ExtrasHandler) EmergencyResources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": h.extrasServ.EmergencyResources()})
}

// Assistant maneja POST /api/extras/sal.
func (h *ExtrasHandler) Assistant(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assistant request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": h.extrasServ.Assist(req.Message)})
}
