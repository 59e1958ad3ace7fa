package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poetiq/internal/cache"
	"poetiq/internal/config"
	"poetiq/internal/repository"
	"poetiq/internal/service"
	"poetiq/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

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
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	questionnaireRepo := repository.NewQuestionnaireRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	facilityRepo := repository.NewFacilityRepo(db)

	// Initialize caches
	assessmentCache := cache.NewAssessmentCache(rdb)
	baselineCache := cache.NewBaselineCache(rdb)
	datasetCache := cache.NewDatasetCache(15 * time.Minute)

	// Initialize services
	assessmentSvc := service.NewAssessmentService(questionnaireRepo, responseRepo, assessmentCache)
	facilitySvc := service.NewFacilityService(facilityRepo, baselineCache, datasetCache)
	questionnaireSvc := service.NewQuestionnaireService(questionnaireRepo)

	container := &rest.Container{
		AssessmentService:    assessmentSvc,
		FacilityService:      facilitySvc,
		QuestionnaireService: questionnaireSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  PUT  /v1/sessions/{sessionId}/answers")
		log.Println("  GET  /v1/sessions/{sessionId}/assessment")
		log.Println("  GET  /v1/questionnaire")
		log.Println("  GET  /v1/facilities/scores")
		log.Println("  GET  /v1/facilities/baseline")
		log.Println("  POST /v1/facilities/baseline/refresh")

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
