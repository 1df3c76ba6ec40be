package repositories

import "context"

// LargeLanguageModel abstracts any multimodal generation provider
type LargeLanguageModel interface {
	// Generate sends one prompt, optionally with an image, and returns the model's text
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GenerateRequest is a single-turn generation request
type GenerateRequest struct {
	Prompt string
	Image  *InlineImage
	// MaxOutputTokens caps the answer length; zero leaves the provider default.
	MaxOutputTokens int
}

// InlineImage is image data sent alongside a prompt
type InlineImage struct {
	MIMEType string
	Data     []byte
}
