package api

import "github.com/satriahrh/moodpulse/domain/entities"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalyzeResponse is returned by POST /analyze
type AnalyzeResponse struct {
	Results        []entities.AnalysisResult `json:"results"`
	TotalProcessed int                       `json:"totalProcessed"`
}

// SpeechBatchResponse is returned by POST /tts for batch requests
type SpeechBatchResponse struct {
	Results        []entities.SpeechResult `json:"results"`
	TotalProcessed int                     `json:"totalProcessed"`
}

// PlaceholderSummaryResponse is returned by POST /summary when there is nothing to summarize
type PlaceholderSummaryResponse struct {
	Summary string `json:"summary"`
}

// CreateTaskRequest represents the request payload for task creation
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
