package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/usecase"
)

const defaultAudioContentType = "audio/mpeg"

var errInvalidSpeechBody = errors.New("invalid format: expected a speech request object or a non-empty array of them")

// speechPayload is the parsed /tts body: exactly one of batch or single is set.
type speechPayload struct {
	batch  []entities.SpeechRequest
	single *entities.SpeechRequest
}

// parseSpeechPayload tries the batch shape first, then the single shape.
// Batch elements are decoded one by one; an element that is not a speech
// request object stays in place as a request without text, so it fails on
// its own.
func parseSpeechPayload(body []byte) (speechPayload, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil && items != nil {
		if len(items) == 0 {
			return speechPayload{}, errInvalidSpeechBody
		}
		batch := make([]entities.SpeechRequest, len(items))
		for i, item := range items {
			var req entities.SpeechRequest
			if err := json.Unmarshal(item, &req); err != nil {
				req = entities.SpeechRequest{}
			}
			batch[i] = req
		}
		return speechPayload{batch: batch}, nil
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return speechPayload{}, errInvalidSpeechBody
	}

	var single entities.SpeechRequest
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return speechPayload{}, errInvalidSpeechBody
	}
	return speechPayload{single: &single}, nil
}

func textToSpeech(c echo.Context, service *usecase.SpeechService, logger *zap.Logger) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	payload, err := parseSpeechPayload(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()

	if payload.batch != nil {
		results := service.SpeakBatch(ctx, payload.batch)
		return c.JSON(http.StatusOK, SpeechBatchResponse{
			Results:        results,
			TotalProcessed: len(results),
		})
	}

	audio, err := service.Speak(ctx, *payload.single)
	if errors.Is(err, usecase.ErrTextRequired) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text is required"})
	}
	if err != nil {
		logger.Error("Text-to-speech request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	contentType := audio.ContentType
	if contentType == "" {
		contentType = defaultAudioContentType
	}
	return c.Blob(http.StatusOK, contentType, audio.Data)
}
