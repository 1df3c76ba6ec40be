package repositories

import "context"

type TextToSpeech interface {
	// Synthesize converts text to a complete audio clip
	Synthesize(ctx context.Context, req SynthesisRequest) (*Audio, error)
}

// SynthesisRequest describes what to say and with which voice.
// An empty VoiceID selects the provider's configured default.
type SynthesisRequest struct {
	Text    string
	VoiceID string
}

// Audio is a synthesized clip
type Audio struct {
	Data        []byte
	ContentType string
}
