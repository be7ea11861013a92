package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eldercare-manager-api/config"
	deliveryHttp "eldercare-manager-api/internal/delivery/http"
	"eldercare-manager-api/internal/delivery/http/handler"
	"eldercare-manager-api/internal/delivery/http/middleware"
	"eldercare-manager-api/internal/infrastructure/cache"
	"eldercare-manager-api/internal/infrastructure/database"
	"eldercare-manager-api/internal/repository"
	"eldercare-manager-api/internal/service"
	"eldercare-manager-api/internal/usecase"
	"eldercare-manager-api/pkg/jwt"
	"eldercare-manager-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	healthDataRepo := repository.NewHealthDataRepository()
	deviceRepo := repository.NewHealthDeviceRepository()
	reminderRepo := repository.NewReminderRepository()
	emergencyRepo := repository.NewEmergencyCallRepository()
	configRepo := repository.NewSystemConfigRepository()
	timbreRepo := repository.NewVoiceTimbreRepository()
	agentRepo := repository.NewAgentRepository()

	// Initialize services
	latestCache := service.NewLatestHealthCache(redisClient, log)
	voiceNotifier := service.NewLogVoiceNotifier(log)
	emergencyDialer := service.NewLogEmergencyDialer(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	healthDataUsecase := usecase.NewHealthDataUsecase(db, log, healthDataRepo, deviceRepo, latestCache)
	deviceUsecase := usecase.NewHealthDeviceUsecase(db, log, deviceRepo)
	reminderUsecase := usecase.NewReminderUsecase(db, log, reminderRepo, voiceNotifier)
	emergencyUsecase := usecase.NewEmergencyCallUsecase(db, log, emergencyRepo, emergencyDialer)
	configUsecase := usecase.NewSystemConfigUsecase(db, log, configRepo)
	monitorUsecase := usecase.NewMonitorUsecase(db, log, healthDataRepo, reminderRepo, emergencyRepo, deviceRepo, latestCache)
	agentUsecase := usecase.NewAgentUsecase(db, log, agentRepo, userRepo)
	voiceUsecase := usecase.NewVoiceUsecase(db, log, timbreRepo, cfg.Upload.Path)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	healthHandler := handler.NewHealthDataHandler(healthDataUsecase, customValidator)
	deviceHandler := handler.NewHealthDeviceHandler(deviceUsecase, customValidator)
	reminderHandler := handler.NewReminderHandler(reminderUsecase, customValidator)
	emergencyHandler := handler.NewEmergencyCallHandler(emergencyUsecase, customValidator)
	configHandler := handler.NewSystemConfigHandler(configUsecase, customValidator)
	monitorHandler := handler.NewMonitorHandler(monitorUsecase)
	agentHandler := handler.NewAgentHandler(agentUsecase, customValidator)
	voiceHandler := handler.NewVoiceHandler(voiceUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		healthHandler,
		deviceHandler,
		reminderHandler,
		emergencyHandler,
		configHandler,
		monitorHandler,
		agentHandler,
		voiceHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
