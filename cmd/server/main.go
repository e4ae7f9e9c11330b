package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"nanotify/internal/api"       // Custom package for API handlers
	"nanotify/internal/config"    // Custom package for configuration
	"nanotify/internal/node"      // Nano node RPC client
	"nanotify/internal/recaptcha" // reCAPTCHA verification client
	"nanotify/internal/service"   // Business services
	"nanotify/internal/session"   // Session store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Optional reCAPTCHA gate on registration
	var verifier service.RecaptchaVerifier
	if cfg.RecaptchaSecret != "" {
		verifier = recaptcha.NewClient(cfg.RecaptchaSecret, "", nil)
	}

	// Wire services and the router
	r := api.NewRouter(api.Deps{
		Auth:             service.NewAuthService(db, verifier),   // Registration and login
		Subscriptions:    service.NewSubscriptionService(db),     // Watch list
		Settings:         service.NewSettingsService(db),         // Webhook settings
		Sessions:         session.NewStore(redisClient, cfg.SessionSecret), // Session store
		Node:             node.NewClient(cfg.NodeURL, nil),       // Ledger node proxy
		RecaptchaEnabled: cfg.RecaptchaSecret != "",              // Render CAPTCHA on register page
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
