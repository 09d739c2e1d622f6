package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/auth"
	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	publicHandler := NewPublicHandler(services, log)
	authHandler := NewAuthHandler(&cfg.Auth, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public read pipeline
		v1.GET("/categories", publicHandler.ListCategories)
		v1.GET("/articles", publicHandler.ListArticles)
		v1.GET("/articles/:slug", publicHandler.GetArticle)

		// Public contact form
		v1.POST("/messages", publicHandler.SubmitMessage)

		// Admin login
		v1.POST("/auth/login", authHandler.Login)

		// Admin console, one CRUD controller per taxonomy type
		adminGroup := v1.Group("/admin")
		adminGroup.Use(auth.Middleware(cfg.Auth.JWTSecret))
		{
			registerAdminRoutes(adminGroup, services, log)
			adminGroup.GET("/metrics", metricsHandler(services))
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "portfolio-content-api",
	})
}

// metricsHandler returns per-collection row counts for the admin dashboard
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		articlesCount, _ := services.Article.Count(ctx)
		categoriesCount, _ := services.Category.Count(ctx)
		tagsCount, _ := services.Tag.Count(ctx)
		messagesCount, _ := services.Message.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"articles":   articlesCount,
				"categories": categoriesCount,
				"tags":       tagsCount,
				"messages":   messagesCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
