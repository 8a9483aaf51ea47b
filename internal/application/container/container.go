// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/luckyspin/spinwheel-go/internal/application/services"
	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/email"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/messaging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/performance"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/persistence/database"
	persistence "github.com/luckyspin/spinwheel-go/internal/infrastructure/persistence/user"
	"github.com/luckyspin/spinwheel-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Infrastructure
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
	DB          *database.DB
	Broadcaster messaging.Broadcaster

	// Repositories
	LeadRepo    user.LeadRepository
	SessionRepo user.VisitorSessionRepository
	AdminRepo   user.AdminRepository

	// Application Services (stateless singletons)
	AuthService     *services.AuthService
	LeadService     *services.LeadService
	TrackingService *services.TrackingService

	// EmailService is nil when Resend is not configured; lead capture then
	// skips the notification.
	EmailService email.Service
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.DB) (*Container, error) {
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.LogDirectory = config.LogDirectory
	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return nil, err
	}

	trackerConfig := performance.DefaultTrackerConfig()
	trackerConfig.SlowResponseThreshold = config.SlowRequestAlert
	perfTracker := performance.NewTracker(trackerConfig)

	broadcaster := messaging.NewFeedBroadcaster(logger)

	leadRepo := persistence.NewSQLLeadRepository(db, logger)
	sessionRepo := persistence.NewSQLVisitorSessionRepository(db, logger)
	adminRepo := persistence.NewSQLAdminRepository(db, logger)

	emailService, err := email.NewService()
	if err != nil {
		logger.Email().Info("Lead email notifications disabled", "reason", err.Error())
		emailService = nil
	}

	return &Container{
		Logger:      logger,
		PerfTracker: perfTracker,
		DB:          db,
		Broadcaster: broadcaster,

		LeadRepo:    leadRepo,
		SessionRepo: sessionRepo,
		AdminRepo:   adminRepo,

		AuthService:     services.NewAuthService(logger, perfTracker, adminRepo),
		LeadService:     services.NewLeadService(logger, perfTracker, leadRepo, sessionRepo, emailService, broadcaster),
		TrackingService: services.NewTrackingService(logger, perfTracker, sessionRepo, broadcaster),

		EmailService: emailService,
	}, nil
}
