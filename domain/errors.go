package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when an upstream service answers successfully but
	// without the content we asked for (no text from the model, no audio from TTS).
	ErrEmptyResponse = errors.New("upstream returned an empty response")

	// ErrMissingCredential is returned by adapters whose API key was not configured.
	ErrMissingCredential = errors.New("missing API credential")
)

// UpstreamError represents a non-success answer from a third-party service
type UpstreamError struct {
	Service    string
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s API error: %s", e.Service, e.Status)
	}
	return fmt.Sprintf("%s API error: %s - %s", e.Service, e.Status, e.Body)
}
