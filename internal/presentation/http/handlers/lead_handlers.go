package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/application/services"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
	"github.com/luckyspin/spinwheel-go/internal/presentation/http/middleware"
)

// LeadHandlers contains the lead capture HTTP handlers
type LeadHandlers struct {
	leadService *services.LeadService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewLeadHandlers creates lead handlers with injected dependencies
func NewLeadHandlers(leadService *services.LeadService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *LeadHandlers {
	return &LeadHandlers{
		leadService: leadService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// PostLead handles POST /api/v1/users - contact form submission
func (h *LeadHandlers) PostLead(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("post_lead_request")
	defer marker.Complete()

	var input services.LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Leads().Debug("Lead request JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	meta := middleware.ExtractClientMeta(c)

	result, err := h.leadService.CreateLead(input, meta)
	if err != nil {
		h.logger.Leads().Error("Lead creation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !result.Success {
		if result.Duplicate {
			c.JSON(http.StatusConflict, gin.H{"error": result.Error})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error, "fields": result.Fields})
		return
	}

	h.logger.Leads().Info("Lead submission accepted", "leadId", result.LeadID, "duration", time.Since(start))
	marker.SetSuccess(true)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      result.LeadID,
		"message": "Thank you! Your information has been submitted.",
	})
}
