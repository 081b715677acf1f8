package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prepmate/interview/internal/ai"
	"prepmate/interview/internal/analytics"
	"prepmate/interview/internal/config"
	"prepmate/interview/internal/handlers"
	"prepmate/interview/internal/interview"
	"prepmate/interview/internal/jobs"
	"prepmate/interview/internal/llm"
	_ "prepmate/interview/internal/llm/gemini"
	_ "prepmate/interview/internal/llm/groq"
	"prepmate/interview/internal/middleware"
	"prepmate/interview/internal/models"
	"prepmate/interview/internal/prompts"
	"prepmate/interview/internal/repositories"
	"prepmate/interview/internal/routers"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.InterviewSession{},
		&models.Question{},
		&models.Answer{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// buildAIClient wires the configured provider into the AI client. A missing
// credential degrades the client instead of failing startup: sessions can
// still be created, just without generated questions.
func buildAIClient(cfg *config.Config, promptManager *prompts.PromptManager, logger *zap.Logger) *ai.Client {
	if !cfg.AIConfigured() {
		logger.Warn("no AI credential configured, running with degraded AI features",
			zap.String("provider", cfg.Provider))
		return ai.Unconfigured(promptManager, logger)
	}

	provider, err := llm.NewProvider(cfg.Provider, cfg.ProviderSettings())
	if err != nil {
		logger.Warn("failed to initialize AI provider, running with degraded AI features",
			zap.String("provider", cfg.Provider),
			zap.Error(err))
		return ai.Unconfigured(promptManager, logger)
	}

	logger.Info("AI provider initialized", zap.String("provider", provider.Name()))
	return ai.NewClient(provider, promptManager, cfg.AITimeout, logger)
}

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	db, err := initDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	sessionRepo := &repositories.SessionRepository{DB: db}
	questionRepo := &repositories.QuestionRepository{DB: db}
	answerRepo := &repositories.AnswerRepository{DB: db}
	userRepo := &repositories.UserRepository{DB: db}

	aiClient := buildAIClient(cfg, promptManager, logger)
	generator := ai.NewGenerator(aiClient)
	grader := ai.NewGrader(aiClient)

	service := interview.NewService(sessionRepo, questionRepo, answerRepo,
		generator, grader, cfg.QuestionThreshold, logger)
	aggregator := analytics.NewAggregator(answerRepo, sessionRepo)

	sessionHandler := handlers.NewSessionHandler(service, logger)
	answerHandler := handlers.NewAnswerHandler(service, answerRepo, logger)
	questionHandler := handlers.NewQuestionHandler(questionRepo, logger)
	aiHandler := handlers.NewAIHandler(service, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(aggregator, logger)
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, logger)
	healthHandler := handlers.NewHealthHandler(aiClient)

	exporterJob := jobs.NewReportExporterJob(sessionRepo, answerRepo, &jobs.ExporterConfig{
		Schedule:  cfg.ExportSchedule,
		ExportDir: cfg.ExportDir,
		Enabled:   cfg.ExportEnabled,
	}, logger)
	if err := exporterJob.Start(); err != nil {
		logger.Error("Failed to start report exporter job", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(middleware.Metrics)

	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.InterviewRoutes(router, cfg.JWTSecret, sessionHandler, answerHandler, questionHandler, aiHandler)
	routers.AnalyticsRoutes(router, cfg.JWTSecret, analyticsHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	exporterJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
