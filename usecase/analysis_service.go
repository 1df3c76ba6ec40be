package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

const defaultImageMIMEType = "image/jpeg"

// AnalysisService turns biometric samples into per-sample emotion analyses
type AnalysisService struct {
	llm    repositories.LargeLanguageModel
	logger *zap.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(llm repositories.LargeLanguageModel, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{llm: llm, logger: logger}
}

// Analyze processes samples one after another. The result has one entry per
// sample, in input order; a failing sample yields an error entry and
// processing continues with the next one.
func (s *AnalysisService) Analyze(ctx context.Context, samples []entities.BiometricSample, mode ContentMode) []entities.AnalysisResult {
	results := make([]entities.AnalysisResult, 0, len(samples))

	for i, sample := range samples {
		result := entities.AnalysisResult{
			Timestamp: sample.Time,
			Metrics: entities.AnalysisMetrics{
				HeartRate:  sample.Pulse,
				BreathRate: sample.Breath,
			},
		}

		text, err := s.generate(ctx, sample, mode)
		if err != nil {
			s.logger.Warn("Sample analysis failed",
				zap.Int("index", i),
				zap.Float64("timestamp", sample.Time),
				zap.Error(err))
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		analysis := analysisText(text)
		result.Analysis = &analysis
		result.Expression = ExtractExpression(text)
		results = append(results, result)
	}

	s.logger.Info("Analysis batch completed",
		zap.Int("samples", len(samples)),
		zap.String("contentMode", string(mode)))

	return results
}

func (s *AnalysisService) generate(ctx context.Context, sample entities.BiometricSample, mode ContentMode) (string, error) {
	req := repositories.GenerateRequest{
		Prompt:          buildAnalysisPrompt(sample.Pulse, sample.Breath, mode),
		MaxOutputTokens: analysisMaxOutputTokens,
	}

	if sample.Image != "" {
		image, err := decodeImage(sample.Image)
		if err != nil {
			return "", err
		}
		req.Image = image
	}

	return s.llm.Generate(ctx, req)
}

// analysisText drops the leading emotion word: everything up to and including
// the first period. Text without a period is returned whole.
func analysisText(text string) string {
	_, rest, found := strings.Cut(text, ".")
	if !found {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(rest)
}

// decodeImage accepts raw base64 or a data URL ("data:image/png;base64,....").
func decodeImage(raw string) (*repositories.InlineImage, error) {
	mimeType := defaultImageMIMEType
	payload := strings.TrimSpace(raw)

	if strings.HasPrefix(payload, "data:") {
		header, data, found := strings.Cut(payload, ",")
		if !found {
			return nil, fmt.Errorf("invalid image data URL")
		}
		if mt, _, _ := strings.Cut(strings.TrimPrefix(header, "data:"), ";"); mt != "" {
			mimeType = mt
		}
		payload = data
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// canvas exports often drop the padding
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		data = raw
	}

	return &repositories.InlineImage{MIMEType: mimeType, Data: data}, nil
}
