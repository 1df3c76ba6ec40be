package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

// ErrTextRequired is returned when a speech request carries no text
var ErrTextRequired = errors.New("text is required")

// SpeechService synthesizes speech for single and batch requests
type SpeechService struct {
	textToSpeech repositories.TextToSpeech
	logger       *zap.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(tts repositories.TextToSpeech, logger *zap.Logger) *SpeechService {
	return &SpeechService{textToSpeech: tts, logger: logger}
}

// Speak synthesizes one request. Upstream failures are returned as is so the
// caller can report the upstream status.
func (s *SpeechService) Speak(ctx context.Context, req entities.SpeechRequest) (*repositories.Audio, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrTextRequired
	}

	audio, err := s.textToSpeech.Synthesize(ctx, repositories.SynthesisRequest{
		Text:    req.Text,
		VoiceID: req.Voice,
	})
	if err != nil {
		return nil, fmt.Errorf("text-to-speech failed: %w", err)
	}

	return audio, nil
}

// SpeakBatch synthesizes every request sequentially. The result has one entry
// per request in input order; items without text fail without calling the
// speech service.
func (s *SpeechService) SpeakBatch(ctx context.Context, reqs []entities.SpeechRequest) []entities.SpeechResult {
	results := make([]entities.SpeechResult, 0, len(reqs))

	for i, req := range reqs {
		result := entities.SpeechResult{Timestamp: req.Timestamp}

		audio, err := s.Speak(ctx, req)
		if err != nil {
			s.logger.Warn("Batch speech item failed", zap.Int("index", i), zap.Error(err))
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Audio = base64.StdEncoding.EncodeToString(audio.Data)
		result.ContentType = audio.ContentType
		results = append(results, result)
	}

	s.logger.Info("Speech batch completed", zap.Int("items", len(reqs)))

	return results
}
