package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/application/services"
	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
	"github.com/luckyspin/spinwheel-go/internal/presentation/http/middleware"
)

// TrackingHandlers contains the visitor tracking HTTP handlers
type TrackingHandlers struct {
	trackingService *services.TrackingService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewTrackingHandlers creates tracking handlers with injected dependencies
func NewTrackingHandlers(trackingService *services.TrackingService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *TrackingHandlers {
	return &TrackingHandlers{
		trackingService: trackingService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// PostPageView handles POST /api/v1/tracking - page view beacon ingestion
func (h *TrackingHandlers) PostPageView(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_page_view_request")
	defer marker.Complete()

	var input services.PageViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Tracking().Debug("Beacon JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	meta := middleware.ExtractClientMeta(c)

	if err := h.trackingService.RecordPageView(input, meta); err != nil {
		if errors.Is(err, user.ErrInvalidBeacon) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and page are required"})
			return
		}
		h.logger.Tracking().Error("Beacon processing failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
