package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"course-outline-planner/config"
	_ "course-outline-planner/docs" // Swagger docs
	"course-outline-planner/internal/agent/orchestrator"
	"course-outline-planner/internal/agent/tools"
	authFile "course-outline-planner/internal/auth/repository/file"
	authUC "course-outline-planner/internal/auth/usecase"
	calsyncUC "course-outline-planner/internal/calsync/usecase"
	courseMemory "course-outline-planner/internal/course/repository/memory"
	courseUC "course-outline-planner/internal/course/usecase"
	extractionUC "course-outline-planner/internal/extraction/usecase"
	"course-outline-planner/internal/httpserver"
	"course-outline-planner/pkg/datemath"
	"course-outline-planner/pkg/llmprovider"
	"course-outline-planner/pkg/log"
	"course-outline-planner/pkg/metrics"
)

// @title       Course Outline Planner API
// @description Turns course outline PDFs into dated events, syncs them to Google Calendar and edits the calendar through a chat assistant.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Course Outline Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared infrastructure
	timezone := cfg.GoogleCalendar.Timezone
	dateMathParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	extractionLLM, err := llmprovider.NewManagerFromConfig(ctx, llmprovider.PurposeExtraction, cfg.LLM, cfg.LLM.Extraction, recorder, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize extraction LLM providers: %v", err)
		return
	}
	chatLLM, err := llmprovider.NewManagerFromConfig(ctx, llmprovider.PurposeChat, cfg.LLM, cfg.LLM.Chat, recorder, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize chat LLM providers: %v", err)
		return
	}

	// 4. Auth domain
	credentialRepo, err := authFile.New(cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to load token file %s: %v", cfg.GoogleCalendar.TokenPath, err)
		return
	}
	authUseCase := authUC.New(logger, credentialRepo, authUC.Config{
		CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
		RedirectURL:     cfg.GoogleCalendar.RedirectURL,
		FrontendOrigin:  cfg.Frontend.Origin,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})
	if _, statErr := os.Stat(cfg.GoogleCalendar.CredentialsPath); statErr != nil {
		logger.Warnf(ctx, "Google client secrets not found at %s: calendar login will fail until it exists", cfg.GoogleCalendar.CredentialsPath)
	}

	// 5. Calendar sync, extraction and courses
	calSync := calsyncUC.New(logger, authUseCase, dateMathParser, cfg.Sync.DefaultTermWeeks, recorder)
	extractor := extractionUC.New(logger, extractionLLM, dateMathParser)
	courseUseCase := courseUC.New(logger, courseMemory.New(), extractor, calSync, dateMathParser.Location().String())

	// 6. Chat assistant
	toolRegistry := tools.NewCalendarRegistry(calSync, logger)
	chat := orchestrator.New(chatLLM, toolRegistry, authUseCase, dateMathParser, recorder, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Metrics:        recorder,
		Gatherer:       registry,
		CourseUseCase:  courseUseCase,
		AuthUseCase:    authUseCase,
		ChatUseCase:    chat,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
