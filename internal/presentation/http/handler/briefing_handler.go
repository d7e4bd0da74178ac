package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shipos/shipos-api/internal/application/service"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/response"
)

// BriefingHandler handles the AI morning briefing HTTP requests
type BriefingHandler struct {
	briefingService *service.BriefingService
}

// NewBriefingHandler creates a new briefing handler
func NewBriefingHandler(briefingService *service.BriefingService) *BriefingHandler {
	return &BriefingHandler{briefingService: briefingService}
}

// GetBriefing generates the morning briefing for the current store
func (h *BriefingHandler) GetBriefing(c *gin.Context) {
	briefing, err := h.briefingService.GenerateBriefing(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Briefing generated successfully", briefing)
}
