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

func summarize(c echo.Context, service *usecase.SummaryService, logger *zap.Logger) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	// A blank body, a non-array body or [] gets the placeholder, without a model call
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil || len(items) == 0 {
		return c.JSON(http.StatusOK, PlaceholderSummaryResponse{Summary: usecase.PlaceholderSummary})
	}

	var samples []entities.SummarySample
	if err := json.Unmarshal(body, &samples); err != nil {
		logger.Warn("Invalid summary samples", zap.Int("items", len(items)), zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid format: expected an array of samples"})
	}

	summary, err := service.Summarize(c.Request().Context(), samples)
	if err != nil {
		logger.Error("Summary request failed", zap.Int("samples", len(samples)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, summary)
}
