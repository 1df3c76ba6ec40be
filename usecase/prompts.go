package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/satriahrh/moodpulse/domain/entities"
)

// ContentMode selects which analysis prompt template is used
type ContentMode string

const (
	ContentModeSuggestions ContentMode = "suggestions"
	ContentModeFacts       ContentMode = "facts"
)

// ParseContentMode maps the contentMode query value; anything but "facts" means suggestions.
func ParseContentMode(value string) ContentMode {
	if strings.EqualFold(strings.TrimSpace(value), string(ContentModeFacts)) {
		return ContentModeFacts
	}
	return ContentModeSuggestions
}

const (
	analysisMaxOutputTokens = 60
	summaryMaxOutputTokens  = 300
)

func vocabularyList() string {
	words := make([]string, len(entities.EmotionVocabulary))
	for i, e := range entities.EmotionVocabulary {
		words[i] = string(e)
	}
	return strings.Join(words, ", ")
}

func buildAnalysisPrompt(heartRate, breathRate float64, mode ContentMode) string {
	var clause string
	switch mode {
	case ContentModeFacts:
		clause = "one short factual observation (under 15 words) about what these readings and the image indicate"
	default:
		clause = "one short, actionable suggestion (under 15 words) that could help the person right now"
	}

	return fmt.Sprintf(
		"A person currently has a heart rate of %s bpm and a breathing rate of %s breaths per minute. "+
			"If an image is attached, also consider their facial expression. "+
			"Respond with exactly one word describing their most likely emotion, chosen from this list: %s. "+
			"Follow that word with a period, then %s. Do not add anything else.",
		formatNumber(heartRate), formatNumber(breathRate), vocabularyList(), clause,
	)
}

func buildSummaryPrompt(timeline string, eventCount int, duration float64, stats entities.SessionStatistics) string {
	return fmt.Sprintf(
		"Here are biometric readings recorded during a session:\n%s\n\n"+
			"The session contains %d readings over %s seconds. "+
			"Average heart rate: %s bpm, maximum: %s bpm, minimum: %s bpm.\n\n"+
			"Write a supportive 3-4 sentence summary of how the person's body responded during the session, "+
			"in plain language addressed to them, and end with one constructive suggestion.",
		timeline, eventCount, formatNumber(duration),
		stats.AvgHeartRate, formatNumber(stats.MaxHeartRate), formatNumber(stats.MinHeartRate),
	)
}

// formatNumber renders v with the shortest exact representation (72, 72.5).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatNumber(*v)
}
