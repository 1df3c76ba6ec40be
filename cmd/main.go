package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/adapters"
	"github.com/satriahrh/moodpulse/adapters/llm"
	"github.com/satriahrh/moodpulse/adapters/mongo"
	"github.com/satriahrh/moodpulse/adapters/tts"
	"github.com/satriahrh/moodpulse/domain/repositories"
	"github.com/satriahrh/moodpulse/internal/api"
	"github.com/satriahrh/moodpulse/internal/config"
	"github.com/satriahrh/moodpulse/internal/logger"
	"github.com/satriahrh/moodpulse/usecase"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	zapLogger, err := logger.New(logger.Options{
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	// Initialize adapters
	geminiLLM, err := llm.NewGeminiLLM(ctx, cfg.Gemini, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize Gemini", zap.Error(err))
	}

	textToSpeech, err := tts.NewElevenLabsTTS(cfg.ElevenLabs, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ElevenLabs", zap.Error(err))
	}

	var taskRepo repositories.TaskRepository
	var mongoClient *mongo.Client
	if cfg.Mongo.Enabled() {
		mongoClient, err = mongo.NewClient(ctx, cfg.Mongo, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		repo := mongo.NewTaskRepository(mongoClient.Database, zapLogger)
		if err := repo.EnsureIndexes(ctx); err != nil {
			zapLogger.Warn("Failed to ensure task indexes", zap.Error(err))
		}
		taskRepo = repo
	} else {
		zapLogger.Info("MONGODB_URI not set, keeping tasks in memory")
		taskRepo = adapters.NewMemoryTaskRepository()
	}

	// Initialize usecase services
	services := api.Services{
		Analysis: usecase.NewAnalysisService(geminiLLM, zapLogger),
		Speech:   usecase.NewSpeechService(textToSpeech, zapLogger),
		Summary:  usecase.NewSummaryService(geminiLLM, zapLogger),
		Tasks:    taskRepo,
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	api.UseMiddleware(e, zapLogger)
	api.InitRoutes(e, services, zapLogger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	zapLogger.Info("Server started", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if mongoClient != nil {
		if err := mongoClient.Close(shutdownCtx); err != nil {
			zapLogger.Error("Failed to close MongoDB", zap.Error(err))
		}
	}

	zapLogger.Info("Server exited")
}
