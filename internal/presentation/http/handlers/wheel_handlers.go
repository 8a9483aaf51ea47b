package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/domain/wheel"
)

// WheelHandlers serves the static prize catalog.
type WheelHandlers struct{}

// NewWheelHandlers creates wheel handlers
func NewWheelHandlers() *WheelHandlers {
	return &WheelHandlers{}
}

// GetPrizes handles GET /api/v1/wheel/prizes - the ordered segment catalog
func (h *WheelHandlers) GetPrizes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"prizes":       wheel.Prizes,
		"segmentAngle": wheel.SegmentAngle(),
	})
}
