package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpapi "github.com/GriffinCanCode/Scratchpad/backend/internal/http"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/api/middleware"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/providers/scratchpad"
	systemProvider "github.com/GriffinCanCode/Scratchpad/backend/internal/providers/system"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/sandbox"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	resolver *sandbox.Resolver
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	logger := logging.ForService(cfg.Logging.Level, cfg.Logging.Development)

	logger.Info("Initializing Scratchpad Server",
		zap.String("port", cfg.Server.Port),
		zap.String("scratch_dir", cfg.Scratch.Dir),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	// Initialize sandbox resolver (creates the scratch directory)
	resolver, err := sandbox.New(cfg.Scratch.Dir, logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scratch directory: %w", err)
	}
	logger.Info("Scratch directory ready", zap.String("root", resolver.Root()))

	// Register service providers
	registry := service.NewRegistry()
	if err := registry.Register(scratchpad.NewProvider(resolver, logger.Logger)); err != nil {
		return nil, fmt.Errorf("failed to register scratchpad provider: %w", err)
	}
	if err := registry.Register(systemProvider.NewProvider()); err != nil {
		return nil, fmt.Errorf("failed to register system provider: %w", err)
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := httpapi.NewHandlers(registry, resolver, metrics, logger)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		resolver: resolver,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
