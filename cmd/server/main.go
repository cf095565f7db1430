package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"onboarding-api/internal/cache"
	"onboarding-api/internal/catalog"
	"onboarding-api/internal/config"
	"onboarding-api/internal/event"
	"onboarding-api/internal/repository"
	"onboarding-api/internal/service"
	"onboarding-api/internal/transport/rest"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	agents := config.DefaultAgentConfig()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// RabbitMQ event publisher (optional)
	var publisher *event.Publisher
	if cfg.RabbitURI != "" {
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		log.Println("Connected to RabbitMQ")
	} else {
		log.Println("RabbitMQ not configured, completion events will not be published")
	}

	// Repositories and caches
	progressRepo := repository.NewProgressRepo(db)
	conversationRepo := repository.NewConversationRepo(db)
	conversationCache := cache.NewConversationCache(rdb)

	// Services
	questionCatalog := catalog.Default()
	validationSvc := service.NewValidationService(questionCatalog)
	conversationSvc := service.NewConversationService(conversationRepo, conversationCache)
	progressSvc := service.NewProgressService(progressRepo, validationSvc, publisher)
	webhookSvc := service.NewWebhookService(conversationSvc, progressSvc, validationSvc, questionCatalog)

	router := rest.NewRouter(&rest.Container{
		WebhookService:      webhookSvc,
		ProgressService:     progressSvc,
		ValidationService:   validationSvc,
		ConversationService: conversationSvc,
		Agents:              agents,
		Catalog:             questionCatalog,
		FrontendURL:         cfg.FrontendURL,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Frontend URL: %s", cfg.FrontendURL)
		log.Println("Endpoints:")
		log.Println("  POST /api/elevenlabs/webhook")
		log.Println("  POST /api/elevenlabs/start-conversation")
		log.Println("  GET  /api/elevenlabs/conversation/{conversationId}/status")
		log.Println("  POST /api/videos/{videoId}/complete")
		log.Println("  GET  /api/videos/{videoId}/progress")
		log.Println("  GET  /api/videos/progress")
		log.Println("  GET  /api/quiz/{videoId}/questions")
		log.Println("  POST /api/quiz/{videoId}/validate")
		log.Println("  GET  /api/agents")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
