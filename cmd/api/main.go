package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	analyticsHttp "group-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "group-analytics-service/internal/analytics/adapters/postgres"
	analyticsPorts "group-analytics-service/internal/analytics/core/ports"
	analyticsUsecase "group-analytics-service/internal/analytics/core/usecase"

	registryHttp "group-analytics-service/internal/registry/adapters/http/fiber"
	registryRepoPg "group-analytics-service/internal/registry/adapters/postgres"
	registryUsecase "group-analytics-service/internal/registry/core/usecase"

	complaintsHttp "group-analytics-service/internal/complaints/adapters/http/fiber"
	complaintsRepoPg "group-analytics-service/internal/complaints/adapters/postgres"
	complaintsUsecase "group-analytics-service/internal/complaints/core/usecase"

	"group-analytics-service/internal/ai"
	"group-analytics-service/internal/config"
	"group-analytics-service/internal/storage"

	_ "group-analytics-service/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Rotating DB pool; schema bootstrap runs against the first healthy
	// instance.
	pool := storage.NewPool(cfg.DatabaseURLs)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := pool.DB(ctx)
	if err == nil {
		err = storage.InitSchema(ctx, db)
	}
	cancel()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// AI collaborator: real endpoint when a key is configured, wordlist
	// substitute otherwise.
	var (
		classifier analyticsPorts.AbuseClassifierPort
		tipper     analyticsPorts.GrowthTipPort
	)
	if cfg.AIAPIKey != "" {
		client, err := ai.NewClient(ai.Config{
			APIKey:  cfg.AIAPIKey,
			BaseURL: cfg.AIBaseURL,
			Model:   cfg.AIModel,
			Timeout: cfg.AITimeout,
		})
		if err != nil {
			log.Fatalf("ai client: %v", err)
		}
		classifier, tipper = client, client
	} else {
		log.Println("AI_API_KEY not set, using wordlist classifier")
		wordlist := ai.NewWordlist()
		classifier, tipper = wordlist, wordlist
	}

	// Repositories
	groupRepository := registryRepoPg.NewGroupRepository(registryRepoPg.NewSQLDB(pool))
	analyticsDB := analyticsRepoPg.NewSQLDB(pool)
	observationRepository := analyticsRepoPg.NewObservationRepository(analyticsDB)
	counterRepository := analyticsRepoPg.NewCounterRepository(analyticsDB)
	complaintRepository := complaintsRepoPg.NewComplaintRepository(complaintsRepoPg.NewSQLDB(pool))

	// Usecases
	registerUC := registryUsecase.NewRegisterGroupUseCase(groupRepository, cfg.TrialDays)
	loginUC := registryUsecase.NewLoginUseCase(groupRepository)
	ingestUC := analyticsUsecase.NewIngestMessageUseCase(counterRepository, observationRepository, groupRepository, classifier)
	snapshotUC := analyticsUsecase.NewGetSnapshotUseCase(groupRepository, counterRepository, observationRepository, tipper)
	recordUC := analyticsUsecase.NewRecordObservationUseCase(observationRepository)
	complaintUC := complaintsUsecase.NewSubmitComplaintUseCase(complaintRepository, classifier)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	groupHandler := registryHttp.NewGroupHandler(registerUC, loginUC)
	app.Post("/api/login", groupHandler.Login)
	app.Get("/api/code/:code", groupHandler.ResolveCode)
	app.Post("/api/bot/register", groupHandler.RegisterGroup)

	analyticsHandler := analyticsHttp.NewAnalyticsHandler(snapshotUC, ingestUC, recordUC)
	app.Get("/api/data/:gc_id", analyticsHandler.GetData)
	app.Post("/api/bot/log_message", analyticsHandler.LogMessage)
	app.Post("/api/metrics", analyticsHandler.RecordObservation)

	complaintHandler := complaintsHttp.NewComplaintHandler(complaintUC)
	app.Post("/api/complaint", complaintHandler.SubmitComplaint)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
