package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/moodpulse/domain"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiLLM {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g, err := NewGeminiLLM(context.Background(), GeminiConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return g
}

func TestNewGeminiLLM_InvalidTemperature(t *testing.T) {
	_, err := NewGeminiLLM(context.Background(), GeminiConfig{Temperature: 1.5}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestGeminiLLM_Generate_MissingAPIKey(t *testing.T) {
	g, err := NewGeminiLLM(context.Background(), GeminiConfig{}, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), repositories.GenerateRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestGeminiLLM_Generate(t *testing.T) {
	var captured map[string]any
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.URL.Path, "gemini-2.0-flash:generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Calm. Your breathing is steady. "}]}}]}`))
	})

	text, err := g.Generate(context.Background(), repositories.GenerateRequest{
		Prompt:          "how do I feel?",
		Image:           &repositories.InlineImage{MIMEType: "image/png", Data: []byte{0x89, 0x50}},
		MaxOutputTokens: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "Calm. Your breathing is steady.", text)

	contents, ok := captured["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]any)["parts"].([]any)
	assert.Len(t, parts, 2, "prompt and inline image")

	generationConfig := captured["generationConfig"].(map[string]any)
	assert.EqualValues(t, 60, generationConfig["maxOutputTokens"])
}

func TestGeminiLLM_Generate_EmptyCandidates(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := g.Generate(context.Background(), repositories.GenerateRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestGeminiLLM_Generate_APIError(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := g.Generate(context.Background(), repositories.GenerateRequest{Prompt: "hi"})
	require.Error(t, err)

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Equal(t, "403 PERMISSION_DENIED", upstream.Status)
	assert.Contains(t, err.Error(), "API key not valid")
}

// Integration test - only runs if GEMINI_API_KEY is set
func TestGeminiLLM_Generate_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test - set GEMINI_API_KEY environment variable")
	}

	g, err := NewGeminiLLM(context.Background(), GeminiConfig{APIKey: apiKey}, zap.NewNop())
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), repositories.GenerateRequest{
		Prompt:          "Reply with the single word: calm.",
		MaxOutputTokens: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}
