package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/presentation/templates"
)

// PageHandlers serves the server-rendered HTML pages.
type PageHandlers struct{}

// NewPageHandlers creates page handlers
func NewPageHandlers() *PageHandlers {
	return &PageHandlers{}
}

// GetWheelPage handles GET / - the public prize wheel landing page
func (h *PageHandlers) GetWheelPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(templates.WheelPage()))
}

// GetAdminLoginPage handles GET /admin/login
func (h *PageHandlers) GetAdminLoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(templates.AdminLoginPage()))
}

// GetAdminDashboardPage handles GET /admin/dashboard
func (h *PageHandlers) GetAdminDashboardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(templates.AdminDashboardPage()))
}
