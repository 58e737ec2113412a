package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gabevillegas628/dsap-backend/internal/db"
	"github.com/gabevillegas628/dsap-backend/internal/handlers"
	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/middleware"
	"github.com/gabevillegas628/dsap-backend/internal/realtime"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/server"
	"github.com/gabevillegas628/dsap-backend/internal/services"
	"github.com/gabevillegas628/dsap-backend/internal/sse"
	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/utils"
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
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	tokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)
	listenAddr := utils.GetEnv("LISTEN_ADDR", ":8080", log)
	allowOrigin := utils.GetEnv("CORS_ALLOW_ORIGIN", "http://localhost:3000", log)
	seedPath := utils.GetEnv("QUESTION_SEED_PATH", "", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	cloneRepo := repos.NewCloneRepo(thePG, log)
	questionRepo := repos.NewAnalysisQuestionRepo(thePG, log)
	helpTopicRepo := repos.NewHelpTopicRepo(thePG, log)
	progressRepo := repos.NewCloneProgressRepo(thePG, log)
	commentRepo := repos.NewReviewCommentRepo(thePG, log)
	messageRepo := repos.NewDiscussionMessageRepo(thePG, log)

	// Realtime
	log.Info("Setting up SSE hub...")
	sseHub := sse.NewSSEHub(log)
	var bus realtime.Bus
	if b, err := realtime.NewRedisBus(log); err != nil {
		log.Warn("Redis bus unavailable, SSE stays single-instance", "error", err)
	} else {
		bus = b
	}

	// Services
	log.Info("Setting up services...")
	policy := status.NewPolicy(log)
	authService := services.NewAuthService(log, jwtSecretKey, time.Duration(tokenTTL)*time.Second)
	notifier := services.NewSSENotifier(log, sseHub, bus)
	questionBank := services.NewQuestionBankService(log, questionRepo, helpTopicRepo)
	assignedStore := services.NewAssignedProgressStore(log, progressRepo)
	practiceStore := services.NewPracticeProgressStore(log, progressRepo)
	sessionService := services.NewSessionService(log, policy, questionBank, assignedStore, practiceStore, notifier)
	reviewService := services.NewReviewService(log, progressRepo, commentRepo, notifier)
	discussionService := services.NewDiscussionService(log, messageRepo, notifier)

	if seedPath != "" {
		seeder := services.NewQuestionSeeder(log, questionRepo)
		if err := seeder.SeedFromFile(context.Background(), seedPath); err != nil {
			log.Warn("Question seeding failed", "error", err)
		}
	}

	// Handlers
	authMiddleware := middleware.NewAuthMiddleware(log, authService)
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:    authMiddleware,
		AnalysisHandler:   handlers.NewAnalysisHandler(log, sessionService, policy),
		ReviewHandler:     handlers.NewReviewHandler(log, reviewService),
		DiscussionHandler: handlers.NewDiscussionHandler(log, discussionService),
		CloneHandler:      handlers.NewCloneHandler(log, cloneRepo, progressRepo),
		UserHandler:       handlers.NewUserHandler(log, userRepo),
		StatusHandler:     handlers.NewStatusHandler(policy),
		SSEHandler:        handlers.NewSSEHandler(log, sseHub),
		AllowOrigins:      []string{allowOrigin},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, gctx := errgroup.WithContext(ctx)
	if bus != nil {
		group.Go(func() error {
			return bus.StartForwarder(gctx, func(m sse.SSEMessage) {
				sseHub.Broadcast(m)
			})
		})
	}
	group.Go(func() error {
		log.Info("Starting HTTP server", "addr", listenAddr)
		return router.Run(listenAddr)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
