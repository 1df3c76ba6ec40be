package entities

// BiometricSample is one reading of an analysis request. Fields missing from the
// request body stay at their zero value.
type BiometricSample struct {
	Pulse  float64 `json:"Pulse"`
	Breath float64 `json:"Breath"`
	Time   float64 `json:"Time"`
	Image  string  `json:"Image,omitempty"` // base64, optionally a data URL
}

// SummarySample is one reading of a summary request. Missing values are kept
// distinguishable from zero so they can be rendered as N/A.
type SummarySample struct {
	Pulse  *float64 `json:"Pulse"`
	Breath *float64 `json:"Breath"`
	Time   *float64 `json:"Time"`
}

// AnalysisMetrics echoes the readings an analysis result was produced from
type AnalysisMetrics struct {
	HeartRate  float64 `json:"heartRate"`
	BreathRate float64 `json:"breathRate"`
}

// AnalysisResult is the outcome for one BiometricSample. Exactly one of
// Analysis or Error is set.
type AnalysisResult struct {
	Analysis   *string         `json:"analysis,omitempty"`
	Expression Emotion         `json:"expression,omitempty"`
	Error      string          `json:"error,omitempty"`
	Timestamp  float64         `json:"timestamp"`
	Metrics    AnalysisMetrics `json:"metrics"`
}

// Failed reports whether the sample could not be analyzed
func (r AnalysisResult) Failed() bool {
	return r.Error != ""
}

// SessionStatistics are the pulse aggregates of a summarized session
type SessionStatistics struct {
	AvgHeartRate string  `json:"avgHeartRate"`
	MaxHeartRate float64 `json:"maxHeartRate"`
	MinHeartRate float64 `json:"minHeartRate"`
}

// SessionSummary is the narrative summary of a whole session
type SessionSummary struct {
	Summary    string            `json:"summary"`
	EventCount int               `json:"eventCount"`
	Duration   float64           `json:"duration"`
	Statistics SessionStatistics `json:"statistics"`
}
