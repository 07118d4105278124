package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tinysteps/backend/internal/api"
	"github.com/tinysteps/backend/internal/auth"
	"github.com/tinysteps/backend/internal/cache"
	"github.com/tinysteps/backend/internal/config"
	"github.com/tinysteps/backend/internal/decompose"
	"github.com/tinysteps/backend/internal/llm"
	"github.com/tinysteps/backend/internal/middleware"
	"github.com/tinysteps/backend/internal/ratelimit"
	"github.com/tinysteps/backend/internal/storage"

	_ "github.com/tinysteps/backend/docs" // swagger docs
)

// @title TinySteps API
// @version 1.0
// @description Backend for the TinySteps ADHD task-decomposition app: anonymous device registration, daily usage quota, and AI-assisted task breakdown with response caching.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your device token with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set, decomposition calls will fail")
	}

	// Connect to database
	log.Println("Connecting to database...")
	db, err := storage.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	log.Println("Running migrations...")
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	rateRepo := storage.NewRateLimitRepository(db)
	cacheRepo := storage.NewCacheRepository(db)
	deviceRepo := storage.NewDeviceRepository(db)

	// Start the expiry sweeper
	sweeper := storage.NewSweeper(rateRepo, cacheRepo)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start sweeper: %v", err)
	}

	// Initialize services
	tokens := auth.NewService(cfg.Auth)
	limiter := ratelimit.NewLimiter(rateRepo, cfg.RateLimit)
	resultCache := cache.New(cacheRepo, cfg.Cache)
	provider := llm.NewOpenAIProvider(cfg.OpenAI)
	decomposer := decompose.NewService(provider)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// Initialize API handlers and router
	handler := api.NewHandler(tokens, limiter, resultCache, decomposer, deviceRepo)
	router := api.NewRouter(handler, authMiddleware)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s:%d (%s)", cfg.Server.Host, cfg.Server.Port, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Stop sweeper
	sweeper.Stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
