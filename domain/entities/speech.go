package entities

import "encoding/json"

// SpeechRequest asks for one piece of text to be synthesized
type SpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
	// Timestamp is opaque to the server and echoed back as sent (batch only).
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// SpeechResult is the outcome of one batch SpeechRequest. Either Audio (base64)
// and ContentType are set, or Error is.
type SpeechResult struct {
	Audio       string          `json:"audio,omitempty"`
	ContentType string          `json:"contentType,omitempty"`
	Error       string          `json:"error,omitempty"`
	Timestamp   json.RawMessage `json:"timestamp,omitempty"`
}

// Failed reports whether synthesis for this item did not produce audio
func (r SpeechResult) Failed() bool {
	return r.Error != ""
}
