package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	redisclient "github.com/talentbridge/talentbridge-backend/internal/clients/redis"
	"github.com/talentbridge/talentbridge-backend/internal/db"
	"github.com/talentbridge/talentbridge-backend/internal/handlers"
	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/platform/sendgrid"
	"github.com/talentbridge/talentbridge-backend/internal/repos"
	"github.com/talentbridge/talentbridge-backend/internal/scheduler"
	"github.com/talentbridge/talentbridge-backend/internal/server"
	"github.com/talentbridge/talentbridge-backend/internal/services"
	"github.com/talentbridge/talentbridge-backend/internal/sse"
	"github.com/talentbridge/talentbridge-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	siteBaseURL := utils.GetEnv("SITE_BASE_URL", "http://localhost:3000", log)
	matchCronHours := utils.GetEnvAsInt("MATCH_CRON_HOURS", 6, log)
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log), ",")

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	talentRepo := repos.NewTalentRepo(thePG, log)
	offerRepo := repos.NewOfferRepo(thePG, log)
	matchRepo := repos.NewMatchRepo(thePG, log)
	notificationRepo := repos.NewNotificationRepo(thePG, log)

	// SSE
	log.Info("Setting up SSE hub now...")
	sseHub := sse.NewSSEHub(log)

	// Redis match bus is optional: a single instance works without it, the
	// local hub still gets every event.
	var matchBus redisclient.MatchBus
	if bus, err := redisclient.NewMatchBus(log); err != nil {
		log.Warn("Redis match bus disabled", "error", err)
	} else {
		matchBus = bus
		if err := bus.StartForwarder(context.Background(), sseHub.Broadcast); err != nil {
			log.Warn("Redis match forwarder failed to start", "error", err)
		}
	}

	// Email is optional too: without a key the batch driver still persists
	// matches and creates in-app notifications.
	var mailer services.EmailSender
	if sgClient, err := sendgrid.NewFromEnv(log); err != nil {
		log.Warn("Sendgrid disabled", "error", err)
	} else {
		mailer = services.NewMatchAlertMailer(log, sgClient, siteBaseURL)
	}

	// Services
	log.Info("Setting up Services from main...")
	notifier := services.NewMatchNotifier(log, mailer, notificationRepo, matchBus, sseHub)
	matchingService := services.NewMatchingService(thePG, log, talentRepo, offerRepo, matchRepo, notifier, siteBaseURL)
	talentService := services.NewTalentService(thePG, log, talentRepo, matchingService)
	offerService := services.NewOfferService(thePG, log, offerRepo, matchingService)

	// Scheduler
	matchScheduler := scheduler.New(log, offerRepo, matchingService, matchCronHours)
	if err := matchScheduler.Start(context.Background()); err != nil {
		log.Error("Could not start match scheduler", "error", err)
		os.Exit(1)
	}
	defer matchScheduler.Stop()

	// Handlers
	log.Info("Setting up handlers from main...")
	matchingHandler := handlers.NewMatchingHandler(log, matchingService, talentService, offerService)
	sseHandler := handlers.NewSSEHandler(log, sseHub)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		MatchingHandler: matchingHandler,
		SSEHandler:      sseHandler,
		AllowOrigins:    allowOrigins,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
