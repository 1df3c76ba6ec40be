package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/usecase"
)

func analyze(c echo.Context, service *usecase.AnalysisService, logger *zap.Logger) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	var samples []entities.BiometricSample
	if err := json.Unmarshal(body, &samples); err != nil || len(samples) == 0 {
		logger.Warn("Rejected analysis request", zap.Error(err), zap.Int("samples", len(samples)))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid format: expected a non-empty array of samples",
		})
	}

	mode := usecase.ParseContentMode(c.QueryParam("contentMode"))
	results := service.Analyze(c.Request().Context(), samples, mode)

	return c.JSON(http.StatusOK, AnalyzeResponse{
		Results:        results,
		TotalProcessed: len(results),
	})
}
