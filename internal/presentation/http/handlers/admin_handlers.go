package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/application/services"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
)

// AdminHandlers contains the JWT-protected dashboard data handlers
type AdminHandlers struct {
	leadService     *services.LeadService
	trackingService *services.TrackingService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewAdminHandlers creates admin handlers with injected dependencies
func NewAdminHandlers(leadService *services.LeadService, trackingService *services.TrackingService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AdminHandlers {
	return &AdminHandlers{
		leadService:     leadService,
		trackingService: trackingService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// GetLeads handles GET /api/v1/admin/users - paginated lead listing
func (h *AdminHandlers) GetLeads(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("get_leads_request")
	defer marker.Complete()

	page, limit := pageParams(c)

	result, err := h.leadService.ListLeads(page, limit)
	if err != nil {
		h.logger.Analytics().Error("Lead listing failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Analytics().Debug("Lead listing served",
		"page", result.Pagination.CurrentPage, "count", len(result.Leads), "duration", time.Since(start))
	marker.SetSuccess(true)

	c.JSON(http.StatusOK, gin.H{
		"users":      result.Leads,
		"pagination": paginationPayload(result.Pagination, "totalUsers"),
	})
}

// GetTracking handles GET /api/v1/admin/tracking - paginated session listing with stats
func (h *AdminHandlers) GetTracking(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("get_tracking_request")
	defer marker.Complete()

	page, limit := pageParams(c)

	result, err := h.trackingService.ListSessions(page, limit)
	if err != nil {
		h.logger.Analytics().Error("Session listing failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Analytics().Debug("Session listing served",
		"page", result.Pagination.CurrentPage, "count", len(result.Sessions), "duration", time.Since(start))
	marker.SetSuccess(true)

	c.JSON(http.StatusOK, gin.H{
		"trackingData": result.Sessions,
		"stats":        result.Stats,
		"pagination":   paginationPayload(result.Pagination, "totalRecords"),
	})
}

// pageParams reads the page and limit query parameters, leaving bounds
// enforcement to the service layer.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// paginationPayload shapes the pagination block; the total-count key differs
// between the users and tracking listings.
func paginationPayload(p services.Pagination, totalKey string) gin.H {
	return gin.H{
		"currentPage": p.CurrentPage,
		"totalPages":  p.TotalPages,
		totalKey:      p.TotalRecords,
		"hasNextPage": p.HasNextPage,
		"hasPrevPage": p.HasPrevPage,
	}
}
