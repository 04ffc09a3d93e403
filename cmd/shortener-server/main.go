package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomwray13/url-shortener/pkg/shortener/auth"
	"github.com/tomwray13/url-shortener/pkg/shortener/cache"
	"github.com/tomwray13/url-shortener/pkg/shortener/config"
	"github.com/tomwray13/url-shortener/pkg/shortener/database"
	"github.com/tomwray13/url-shortener/pkg/shortener/links"
	"github.com/tomwray13/url-shortener/pkg/shortener/metrics"
	"github.com/tomwray13/url-shortener/pkg/shortener/middleware"
	"github.com/tomwray13/url-shortener/pkg/shortener/models"
	"github.com/tomwray13/url-shortener/pkg/shortener/redirect"
)

func main() {
	// Load .env for development; a missing file is fine in production
	_ = godotenv.Load()

	// HOST and API_KEY are required: the service cannot start without them
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Optional Redis cache for the redirect hot path
	var linkCache *cache.Cache
	if cfg.RedisAddr != "" {
		linkCache = cache.New(cfg.RedisAddr, cfg.CacheTTL)
		defer linkCache.Close()
		log.Printf("Redirect caching enabled via Redis at %s", cfg.RedisAddr)
	}

	metrics.Init()

	svc := links.NewService(db, linkCache, cfg.Host)

	// Set up Gin router
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), metrics.Middleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Link management routes (API key protected)
	linksHandler := links.NewHandler(svc)
	linksHandler.RegisterRoutes(r.Group("/url", auth.APIKeyMiddleware(cfg.APIKey)))

	// Redirect routes (public, must be registered LAST to avoid conflicts)
	redirectHandler := redirect.NewHandler(svc)
	redirectHandler.RegisterRoutes(r)

	log.Printf("Starting url-shortener on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
