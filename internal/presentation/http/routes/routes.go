// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/application/container"
	"github.com/luckyspin/spinwheel-go/internal/presentation/http/handlers"
	"github.com/luckyspin/spinwheel-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	pageHandlers := handlers.NewPageHandlers()
	wheelHandlers := handlers.NewWheelHandlers()
	trackingHandlers := handlers.NewTrackingHandlers(container.TrackingService, container.Logger, container.PerfTracker)
	leadHandlers := handlers.NewLeadHandlers(container.LeadService, container.Logger, container.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger, container.PerfTracker)
	adminHandlers := handlers.NewAdminHandlers(container.LeadService, container.TrackingService, container.Logger, container.PerfTracker)
	liveHandlers := handlers.NewLiveHandlers(container.Broadcaster, container.Logger)

	// Server-rendered pages
	r.GET("/", pageHandlers.GetWheelPage)
	r.GET("/admin/login", pageHandlers.GetAdminLoginPage)
	r.GET("/admin/dashboard", pageHandlers.GetAdminDashboardPage)

	api := r.Group("/api/v1")
	{
		// Public ingestion endpoints
		api.POST("/tracking", trackingHandlers.PostPageView)
		api.POST("/users", leadHandlers.PostLead)
		api.GET("/wheel/prizes", wheelHandlers.GetPrizes)

		// Admin authentication
		api.POST("/admin/login", authHandlers.PostLogin)

		// JWT-protected dashboard data
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(container.AuthService))
		{
			admin.GET("/users", adminHandlers.GetLeads)
			admin.GET("/tracking", adminHandlers.GetTracking)
			admin.GET("/live", liveHandlers.GetLiveFeed)
		}
	}

	return r
}
