package tts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/moodpulse/domain"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

func TestNewElevenLabsTTS(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Missing API key is tolerated at construction time
	os.Unsetenv("ELEVEN_LABS_API_KEY")
	config := NewElevenLabsConfigFromEnv()
	if _, err := NewElevenLabsTTS(config, logger); err != nil {
		t.Fatalf("Expected no error without API key, got %v", err)
	}

	os.Setenv("ELEVEN_LABS_API_KEY", "test-api-key")
	defer os.Unsetenv("ELEVEN_LABS_API_KEY")

	config = NewElevenLabsConfigFromEnv()
	tts, err := NewElevenLabsTTS(config, logger)
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	if tts.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", tts.apiKey)
	}

	if tts.voiceID != defaultVoiceID {
		t.Errorf("Expected default voice ID '%s', got '%s'", defaultVoiceID, tts.voiceID)
	}

	if tts.stability != 0.6 || tts.clarity != 0.75 {
		t.Errorf("Expected default voice settings 0.6/0.75, got %f/%f", tts.stability, tts.clarity)
	}
}

func TestValidateElevenLabsConfig(t *testing.T) {
	if err := ValidateElevenLabsConfig(ElevenLabsConfig{Stability: 1.2}); err == nil {
		t.Error("Expected error for stability above 1")
	}
	if err := ValidateElevenLabsConfig(ElevenLabsConfig{Clarity: -0.1}); err == nil {
		t.Error("Expected error for negative clarity")
	}
	if err := ValidateElevenLabsConfig(ElevenLabsConfig{Timeout: -time.Second}); err == nil {
		t.Error("Expected error for negative timeout")
	}
}

func TestElevenLabsTTS_Synthesize(t *testing.T) {
	var (
		gotPath    string
		gotKey     string
		gotRequest ElevenLabsRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-audio"))
	}))
	defer server.Close()

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "secret", APIBaseURL: server.URL}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	audio, err := tts.Synthesize(context.Background(), repositories.SynthesisRequest{Text: "Take a deep breath."})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if string(audio.Data) != "ID3-audio" {
		t.Errorf("Unexpected audio payload %q", audio.Data)
	}
	if audio.ContentType != "audio/mpeg" {
		t.Errorf("Expected audio/mpeg, got %s", audio.ContentType)
	}
	if gotPath != "/text-to-speech/"+defaultVoiceID {
		t.Errorf("Unexpected request path %s", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("Expected API key header, got %q", gotKey)
	}

	want := ElevenLabsVoiceSettings{Stability: 0.6, SimilarityBoost: 0.75, Style: 0, UseSpeakerBoost: true}
	if gotRequest.VoiceSettings != want {
		t.Errorf("Expected voice settings %+v, got %+v", want, gotRequest.VoiceSettings)
	}
	if gotRequest.ModelID != defaultModelID {
		t.Errorf("Expected model %s, got %s", defaultModelID, gotRequest.ModelID)
	}
}

func TestElevenLabsTTS_Synthesize_VoiceOverride(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("audio"))
	}))
	defer server.Close()

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "secret", APIBaseURL: server.URL}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	if _, err := tts.Synthesize(context.Background(), repositories.SynthesisRequest{Text: "hi", VoiceID: "custom"}); err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if gotPath != "/text-to-speech/custom" {
		t.Errorf("Expected custom voice in path, got %s", gotPath)
	}
}

func TestElevenLabsTTS_Synthesize_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":{"status":"invalid_api_key"}}`))
	}))
	defer server.Close()

	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIBaseURL: server.URL}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	_, err = tts.Synthesize(context.Background(), repositories.SynthesisRequest{Text: "hello"})
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", upstream.StatusCode)
	}
	if upstream.Status != "401 Unauthorized" {
		t.Errorf("Expected status text '401 Unauthorized', got %q", upstream.Status)
	}
	if upstream.Body != `{"detail":{"status":"invalid_api_key"}}` {
		t.Errorf("Unexpected body %q", upstream.Body)
	}
}

func TestElevenLabsTTS_Synthesize_EmptyText(t *testing.T) {
	tts, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "test-api-key"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	ctx := context.Background()
	if _, err := tts.Synthesize(ctx, repositories.SynthesisRequest{Text: ""}); err == nil {
		t.Error("Expected error for empty text")
	}

	if _, err := tts.Synthesize(ctx, repositories.SynthesisRequest{Text: "   "}); err == nil {
		t.Error("Expected error for whitespace-only text")
	}
}

// Integration test - only runs if ELEVEN_LABS_API_KEY is set with real API key
func TestElevenLabsTTS_Synthesize_Integration(t *testing.T) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" || apiKey == "test-api-key" {
		t.Skip("Skipping integration test - set ELEVEN_LABS_API_KEY environment variable with real API key")
	}

	tts, err := NewElevenLabsTTS(NewElevenLabsConfigFromEnv(), zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create ElevenLabsTTS: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	audio, err := tts.Synthesize(ctx, repositories.SynthesisRequest{Text: "Your session summary is ready."})
	if err != nil {
		t.Fatalf("Failed to convert text to speech: %v", err)
	}
	if len(audio.Data) == 0 {
		t.Error("No audio data received")
	}

	t.Logf("Integration test completed: received %d bytes of %s", len(audio.Data), audio.ContentType)
}
