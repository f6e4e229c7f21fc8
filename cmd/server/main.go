package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"lorewright/internal/config"
	"lorewright/internal/database"
	"lorewright/internal/generator"
	"lorewright/internal/handler"
	"lorewright/internal/llm"
	"lorewright/internal/logger"
	"lorewright/internal/prompt"
	"lorewright/internal/repository"
	"lorewright/internal/service"
	"lorewright/internal/vectorstore"
)

func main() {
	cfg, err := config.LoadConfig("./.env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized", zap.String("logLevel", cfg.LogLevel))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pgPool, err := database.Connect(ctx, cfg, log.Named("Postgres"))
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgPool.Close()

	if err := database.ApplyMigrations(pgPool, log.Named("Migrations")); err != nil {
		zap.L().Fatal("Failed to apply database migrations", zap.Error(err))
	}

	redisClient, err := setupRedis(cfg, log.Named("Redis"))
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Model providers. Credentials decide which backend serves each role.
	factory := llm.NewFactory(log)
	chat, err := factory.CreateChat(ctx)
	if err != nil {
		zap.L().Fatal("Failed to create chat model", zap.Error(err))
	}
	image, err := factory.CreateImageGenerator(ctx)
	if err != nil {
		zap.L().Fatal("Failed to create image model", zap.Error(err))
	}
	embedder, err := factory.CreateEmbedder(ctx)
	if err != nil {
		zap.L().Fatal("Failed to create embedder", zap.Error(err))
	}

	store, err := vectorstore.New(cfg.VectorDBPath, embedder, log)
	if err != nil {
		zap.L().Fatal("Failed to open vector store", zap.Error(err))
	}
	defer store.Close()

	vocab := prompt.DefaultVocabulary()
	characterGen := generator.NewCharacterGenerator(chat, image, store, vocab, cfg.AssetDir, log)
	worldGen := generator.NewWorldGenerator(chat, image, store, vocab, cfg.AssetDir, log)
	campaignGen := generator.NewCampaignGenerator(chat, store, vocab, log)

	userRepo := repository.NewPgUserRepository(pgPool, log)
	tokenRepo := repository.NewRedisTokenRepository(redisClient, log)
	authSvc := service.NewAuthService(userRepo, tokenRepo, cfg, log)

	h := handler.NewHandler(authSvc, characterGen, worldGen, campaignGen, store, cfg.AssetDir, log)

	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(handler.RequestLogger(log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.GetAllowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	h.RegisterRoutes(router)

	// Prometheus middleware goes on after route registration so it picks up
	// the registered paths.
	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}

// setupRedis initializes the Redis client with retry logic.
func setupRedis(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	const (
		maxRetries = 10
		retryDelay = 3 * time.Second
	)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		attempt := i + 1
		client := redis.NewClient(redisOpts)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err := client.Ping(pingCtx).Result()
		pingCancel()

		if err == nil {
			logger.Info("Connected to Redis", zap.Int("attempt", attempt))
			return client, nil
		}

		client.Close()
		lastErr = fmt.Errorf("unable to ping redis (attempt %d/%d): %w", attempt, maxRetries, err)
		logger.Warn("Redis ping failed, retrying...",
			zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, lastErr)
}
