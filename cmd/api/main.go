package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbdullahKhetran/wellness-arcade/internal/ai"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/handlers"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/middleware"
	"github.com/AbdullahKhetran/wellness-arcade/internal/api/routes"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/activity"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/session"
	"github.com/AbdullahKhetran/wellness-arcade/internal/domain/user"
	"github.com/AbdullahKhetran/wellness-arcade/internal/infrastructure/cache"
	"github.com/AbdullahKhetran/wellness-arcade/internal/infrastructure/persistence/postgres/connection"
	"github.com/AbdullahKhetran/wellness-arcade/internal/infrastructure/persistence/postgres/migrations"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/config"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/logger"
	"github.com/AbdullahKhetran/wellness-arcade/pkg/security/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Type",
			"Authorization",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := user.NewRepository(db)
	sessionRepo := session.NewRepository(db)
	activityRepo := activity.NewRepository(db)

	// Initialize Redis
	redisConfig := cache.NewConfigFromEnv(cfg)
	redisClient, err := cache.NewRedisClient(redisConfig)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize rate limiter with Redis client
	rateLimiter := auth.NewRedisRateLimiter(redisClient.GetClient(), 1*time.Minute, 100)

	// Initialize services
	userService := user.NewService(userRepo, log.Logger)
	sessionService := session.NewService(sessionRepo, userRepo, cfg.Auth.SessionTTL(), log.Logger)
	activityService := activity.NewService(activityRepo, log.Logger)
	affirmationGenerator := ai.NewGenerator(cfg.AI)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, sessionService)
	activityHandler := handlers.NewActivityHandler(activityService)
	puzzleHandler := handlers.NewPuzzleHandler(activityService)
	emotionHandler := handlers.NewEmotionHandler(activityService)
	affirmationHandler := handlers.NewAffirmationHandler(activityService, affirmationGenerator)

	// Register routes
	routes.SetupHealthRoutes(router)
	routes.NewUserRoutes(userHandler, sessionService, rateLimiter).RegisterRoutes(router)
	routes.NewActivityRoutes(activityHandler, sessionService).RegisterRoutes(router)
	routes.NewPuzzleRoutes(puzzleHandler, sessionService).RegisterRoutes(router)
	routes.NewEmotionRoutes(emotionHandler, sessionService).RegisterRoutes(router)
	routes.NewAffirmationRoutes(affirmationHandler, sessionService).RegisterRoutes(router)

	for _, route := range router.Routes() {
		log.Debug("Route registered",
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
