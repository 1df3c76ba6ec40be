package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/moodpulse/domain"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

const (
	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = 0.7
	serviceName        = "Gemini"
)

// GeminiConfig holds configuration for the GeminiLLM adapter
// Optional fields with defaults:
// - Model: the model name (default: "gemini-2.0-flash")
// - Temperature: sampling temperature between 0 and 1 (default: 0.7)
// - BaseURL: override of the API endpoint, used by tests
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string
}

// GeminiLLM implements the LargeLanguageModel interface using Google's Gemini API
type GeminiLLM struct {
	client      *genai.Client
	logger      *zap.Logger
	model       string
	temperature float32
}

// Ensure GeminiLLM implements the LargeLanguageModel interface
var _ repositories.LargeLanguageModel = (*GeminiLLM)(nil)

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.Temperature != 0 && (config.Temperature < 0 || config.Temperature > 1) {
		return fmt.Errorf("temperature must be between 0 and 1, got %f", config.Temperature)
	}
	return nil
}

// NewGeminiLLM creates a new Gemini LLM instance.
// A missing API key is not an error here: every Generate call fails with
// domain.ErrMissingCredential instead.
func NewGeminiLLM(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiLLM, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default model", zap.String("model", model))
	}

	temperature := config.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	g := &GeminiLLM{
		logger:      logger,
		model:       model,
		temperature: temperature,
	}

	if config.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; analysis and summary requests will fail")
		return g, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client

	return g, nil
}

// Generate implements repositories.LargeLanguageModel
func (g *GeminiLLM) Generate(ctx context.Context, req repositories.GenerateRequest) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("gemini: %w", domain.ErrMissingCredential)
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}
	if req.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxOutputTokens)
	}

	g.logger.Debug("Sending request to Gemini",
		zap.String("model", g.model),
		zap.Bool("withImage", req.Image != nil),
		zap.Int("maxOutputTokens", req.MaxOutputTokens))

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", convertError(err)
	}

	text := strings.TrimSpace(response.Text())
	if text == "" {
		g.logger.Warn("No text generated", zap.String("model", g.model))
		return "", fmt.Errorf("gemini: %w", domain.ErrEmptyResponse)
	}

	return text, nil
}

// convertError maps SDK errors onto domain.UpstreamError so callers can report
// the upstream status without knowing about genai.
func convertError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status == "" {
			status = http.StatusText(apiErr.Code)
		}
		if !strings.HasPrefix(status, strconv.Itoa(apiErr.Code)) {
			status = fmt.Sprintf("%d %s", apiErr.Code, status)
		}
		return &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: apiErr.Code,
			Status:     status,
			Body:       apiErr.Message,
		}
	}
	return fmt.Errorf("failed to generate content: %w", err)
}

// NewGeminiConfigFromEnv creates a new GeminiConfig from environment variables
func NewGeminiConfigFromEnv() GeminiConfig {
	config := GeminiConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   os.Getenv("GEMINI_MODEL"),
		BaseURL: os.Getenv("GEMINI_API_BASE_URL"),
	}

	if temperatureStr := os.Getenv("GEMINI_TEMPERATURE"); temperatureStr != "" {
		if temperature, err := strconv.ParseFloat(temperatureStr, 32); err == nil && temperature >= 0 && temperature <= 1 {
			config.Temperature = float32(temperature)
		}
	}

	return config
}
