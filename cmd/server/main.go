package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	_ "memorycompanion/docs"
	"memorycompanion/internal/cache"
	"memorycompanion/internal/config"
	"memorycompanion/internal/logging"
	"memorycompanion/internal/repository"
	"memorycompanion/internal/service"
	"memorycompanion/internal/transport/rest"
)

// @title Memory Companion Insights API
// @version 1.0
// @description Personal insights derived from a user's reflection history
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	db := mongoClient.Database(cfg.Mongo.Database)

	// Redis connection; the profile cache is optional
	var profileCache cache.ProfileCache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.URI})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Warn("Redis unavailable, profile cache disabled", zap.String("addr", cfg.Redis.URI), zap.Error(err))
	} else {
		profileCache = cache.NewProfileCache(rdb, cfg.Profile.CacheTTL)
		logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.URI))
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepo(db)
	reflectionRepo := repository.NewReflectionRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.Audience)
	insightSvc := service.NewInsightService(profileRepo, profileCache, reflectionRepo, cfg.Insight.WindowDays, logger)

	router := rest.NewRouter(&rest.Container{
		AuthService:    authSvc,
		InsightService: insightSvc,
		CORS:           cfg.CORS,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Server.Port),
			zap.Strings("endpoints", []string{"GET /v1/insights", "GET /health", "GET /metrics", "GET /swagger/doc.json"}),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
