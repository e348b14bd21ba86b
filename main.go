package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"videopecas-web/config"
	"videopecas-web/internal/api"
	"videopecas-web/internal/backend"
	"videopecas-web/internal/middleware"
	"videopecas-web/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration; refusing to start beats running half-configured
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Backend collaborator clients
	client := backend.NewClient(cfg.BackendURL, cfg.BackendAPIKey)

	var storage *backend.Storage
	if cfg.UploadsEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var err error
		storage, err = backend.NewStorage(ctx, cfg.StorageEndpoint, cfg.StorageAccessKey, cfg.StorageSecretKey, cfg.StoragePublicURL)
		if err != nil {
			log.Fatal("Failed to initialize file storage: ", err)
		}
	} else {
		log.Println("File storage not configured, comment video uploads disabled")
	}

	// Initialize services
	catalogService := services.NewCatalogService(client)
	commentService := services.NewCommentService(client, catalogService)
	purchaseService := services.NewPurchaseService(client)
	sessionService := services.NewSessionService(cfg.SessionSecret, time.Duration(cfg.SessionMaxAge)*time.Second)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.MaxRequestSize = cfg.MaxRequestSize
	securityConfig.RateLimitRequests = cfg.RateLimitRequests
	securityConfig.RateLimitWindow = time.Duration(cfg.RateLimitWindow) * time.Second
	router.Use(middleware.SecurityMiddleware(securityConfig))

	// Slow request logging
	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if duration := time.Since(start); duration > 5*time.Second {
			log.Printf("🚨 SLOW REQUEST: %s %s took %v", c.Request.Method, c.Request.URL.Path, duration)
		}
	})

	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./static")

	handlers := api.NewHandlers(cfg, catalogService, commentService, purchaseService, sessionService, storage)
	handlers.RegisterRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("videopecas storefront starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server shutdown complete")
}
