package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/repositories"
	"github.com/satriahrh/moodpulse/usecase"
)

const serviceName = "moodpulse-server"

// Services bundles what the HTTP handlers depend on
type Services struct {
	Analysis *usecase.AnalysisService
	Speech   *usecase.SpeechService
	Summary  *usecase.SummaryService
	Tasks    repositories.TaskRepository
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, services Services, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	})

	// AI proxy endpoints
	e.POST("/analyze", func(c echo.Context) error {
		return analyze(c, services.Analysis, logger)
	})
	e.POST("/tts", func(c echo.Context) error {
		return textToSpeech(c, services.Speech, logger)
	})
	e.POST("/summary", func(c echo.Context) error {
		return summarize(c, services.Summary, logger)
	})

	// Task APIs
	tasks := e.Group("/api/tasks")
	tasks.GET("", func(c echo.Context) error {
		return listTasks(c, services.Tasks)
	})
	tasks.POST("", func(c echo.Context) error {
		return createTask(c, services.Tasks, logger)
	})
	tasks.GET("/:id", func(c echo.Context) error {
		return getTask(c, services.Tasks)
	})
	tasks.DELETE("/:id", func(c echo.Context) error {
		return deleteTask(c, services.Tasks, logger)
	})
}
