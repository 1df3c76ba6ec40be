package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/satriahrh/moodpulse/adapters/llm"
	"github.com/satriahrh/moodpulse/adapters/mongo"
	"github.com/satriahrh/moodpulse/adapters/tts"
)

// Config is the process configuration, read once at startup
type Config struct {
	Port            string
	Environment     string
	LogLevel        string
	LogFile         string
	ShutdownTimeout time.Duration

	Gemini     llm.GeminiConfig
	ElevenLabs tts.ElevenLabsConfig

	// Mongo selects the MongoDB task store; an empty URI keeps tasks in memory.
	Mongo mongo.Config
}

// Load reads the configuration from the environment, after loading a .env file if present
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("APP_ENV", "production"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		Gemini:     llm.NewGeminiConfigFromEnv(),
		ElevenLabs: tts.NewElevenLabsConfigFromEnv(),

		Mongo: mongo.NewConfigFromEnv(),
	}
}

// IsDevelopment reports whether the server runs with development defaults
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go durations ("15s") or plain seconds ("15").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
