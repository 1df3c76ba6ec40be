package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/domain/entities"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

// PlaceholderSummary is returned for sessions without readings
const PlaceholderSummary = "No session data was recorded, so there is nothing to summarize yet."

// SummaryService produces a narrative summary of a whole session
type SummaryService struct {
	llm    repositories.LargeLanguageModel
	logger *zap.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(llm repositories.LargeLanguageModel, logger *zap.Logger) *SummaryService {
	return &SummaryService{llm: llm, logger: logger}
}

// Summarize builds one prompt from all samples and asks the model for a summary.
// Any upstream failure fails the whole call. samples must not be empty.
func (s *SummaryService) Summarize(ctx context.Context, samples []entities.SummarySample) (*entities.SessionSummary, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to summarize")
	}

	stats := ComputeStatistics(samples)
	duration := SessionDuration(samples)
	prompt := buildSummaryPrompt(RenderTimeline(samples), len(samples), duration, stats)

	text, err := s.llm.Generate(ctx, repositories.GenerateRequest{
		Prompt:          prompt,
		MaxOutputTokens: summaryMaxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	s.logger.Info("Session summarized",
		zap.Int("eventCount", len(samples)),
		zap.Float64("duration", duration))

	return &entities.SessionSummary{
		Summary:    text,
		EventCount: len(samples),
		Duration:   duration,
		Statistics: stats,
	}, nil
}

// RenderTimeline renders one "Time {t}s: HR {hr}bpm, BR {br}/min" line per sample.
func RenderTimeline(samples []entities.SummarySample) string {
	lines := make([]string, len(samples))
	for i, sample := range samples {
		lines[i] = fmt.Sprintf("Time %ss: HR %sbpm, BR %s/min",
			formatOptional(sample.Time), formatOptional(sample.Pulse), formatOptional(sample.Breath))
	}
	return strings.Join(lines, "\n")
}

// ComputeStatistics aggregates pulse values. A missing pulse counts as 0, which
// pulls the average and minimum down.
func ComputeStatistics(samples []entities.SummarySample) entities.SessionStatistics {
	if len(samples) == 0 {
		return entities.SessionStatistics{AvgHeartRate: "0.0"}
	}

	var sum float64
	minimum := pulseOrZero(samples[0])
	maximum := minimum
	for _, sample := range samples {
		pulse := pulseOrZero(sample)
		sum += pulse
		minimum = min(minimum, pulse)
		maximum = max(maximum, pulse)
	}

	return entities.SessionStatistics{
		AvgHeartRate: formatAverage(sum / float64(len(samples))),
		MaxHeartRate: maximum,
		MinHeartRate: minimum,
	}
}

// SessionDuration is the time of the last sample, 0 when it has none.
func SessionDuration(samples []entities.SummarySample) float64 {
	if len(samples) == 0 {
		return 0
	}
	if last := samples[len(samples)-1].Time; last != nil {
		return *last
	}
	return 0
}

// formatAverage renders one decimal, rounding halves away from zero.
func formatAverage(avg float64) string {
	return strconv.FormatFloat(math.Round(avg*10)/10, 'f', 1, 64)
}

func pulseOrZero(sample entities.SummarySample) float64 {
	if sample.Pulse == nil {
		return 0
	}
	return *sample.Pulse
}
