// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/application/container"
	schema "github.com/luckyspin/spinwheel-go/internal/infrastructure/database"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/persistence/database"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/security"
	"github.com/luckyspin/spinwheel-go/internal/presentation/http/server"
	"github.com/luckyspin/spinwheel-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("\033[32m" + `

   ███████ ██████  ██ ███    ██ ██     ██ ██   ██ ███████ ███████ ██
   ██      ██   ██ ██ ████   ██ ██     ██ ██   ██ ██      ██      ██
   ███████ ██████  ██ ██ ██  ██ ██  █  ██ ███████ █████   █████   ██
        ██ ██      ██ ██  ██ ██ ██ ███ ██ ██   ██ ██      ██      ██
   ███████ ██      ██ ██   ████  ███ ███  ██   ██ ███████ ███████ ███████
` + "\033[0m")

	// Step 1: Ensure a JWT secret exists before anything mints tokens
	log.Println("Initializing...")
	if config.JWTSecret == "" {
		secret, err := security.GenerateSecureKey(64)
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		config.JWTSecret = secret
		log.Println("JWT_SECRET not set - generated an ephemeral secret; tokens will not survive a restart")
	}

	// Step 2: Connect to the database
	log.Printf("Connecting to database (driver=%s)...", config.DBDriver)
	if config.DBDriver == "libsql" {
		if err := database.TestTursoConnection(config.TursoDatabase, config.TursoAuthToken); err != nil {
			return fmt.Errorf("turso connection test failed: %w", err)
		}
		log.Println("✓ Turso connection verified")
	}
	dsn := database.BuildDSN(config.DBDriver)
	db, err := database.NewConnection(config.DBDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("✓ Database connection established")

	// Step 3: Create schema
	log.Println("Creating database schema...")
	tableCreator := schema.NewTableCreator()
	if err := tableCreator.CreateSchema(db.DB); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}
	log.Println("✓ Schema ready")

	// Step 4: Seed the default admin account
	if err := tableCreator.SeedDefaultAdmin(db.DB, config.SeedAdminUsername, config.SeedAdminEmail, config.SeedAdminPassword); err != nil {
		return fmt.Errorf("admin seeding failed: %w", err)
	}
	if config.SeedAdminPassword != "" {
		log.Printf("✓ Default admin account ensured: %s", config.SeedAdminUsername)
	} else {
		log.Println("SEED_ADMIN_PASSWORD not set - skipping admin seeding")
	}

	// Step 5: Create dependency injection container (THIS IS WHERE LOGGER IS CREATED!)
	log.Println("Initializing dependency injection container...")
	appContainer, err := container.NewContainer(db)
	if err != nil {
		return fmt.Errorf("container initialization failed: %w", err)
	}
	log.Println("✓ Dependency injection container created with singleton services.")

	// NOW USE THE LOGGER FROM CONTAINER
	logger := appContainer.Logger
	logger.Startup().Info("Container initialization complete - switching to channeled logging")

	// Step 6: Start HTTP server
	logger.Startup().Info("Starting HTTP server...")
	startServerTime := time.Now()

	port := config.Port
	httpServer := server.New(port, appContainer)

	logger.Startup().Info("HTTP server initialized", "port", port, "duration", time.Since(startServerTime))

	// Step 7: Setup graceful shutdown
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	totalStartupTime := time.Since(start)
	logger.Startup().Info("Application startup complete",
		"totalDuration", totalStartupTime,
		"driver", config.DBDriver,
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	// Stop server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	// Close database
	logger.Shutdown().Info("Closing database connection...")
	if err := db.Close(); err != nil {
		logger.Shutdown().Error("Error closing database", "error", err.Error())
	} else {
		logger.Shutdown().Info("Database connection closed successfully")
	}

	tracker := appContainer.PerfTracker
	logger.Shutdown().Info("Performance summary",
		"uptime", tracker.Uptime(),
		"completedOperations", tracker.CompletedOperations(),
		"slowResponseAlerts", len(tracker.Alerts()))

	elapsed := time.Since(start)
	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", elapsed,
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
