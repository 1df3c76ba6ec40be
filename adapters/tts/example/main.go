package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/adapters/tts"
	"github.com/satriahrh/moodpulse/domain/repositories"
)

// Synthesizes one sentence with the configured voice and writes it to disk.
func main() {
	text := flag.String("text", "Your session summary is ready. Take a slow breath before reading it.", "text to synthesize")
	voice := flag.String("voice", "", "voice ID (default: ELEVEN_LABS_VOICE_ID or Rachel)")
	output := flag.String("out", "example_output.mp3", "output file")
	flag.Parse()

	godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if os.Getenv("ELEVEN_LABS_API_KEY") == "" {
		logger.Fatal("ELEVEN_LABS_API_KEY environment variable is required")
	}

	ttsService, err := tts.NewElevenLabsTTS(tts.NewElevenLabsConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("Failed to create TTS service", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	audio, err := ttsService.Synthesize(ctx, repositories.SynthesisRequest{Text: *text, VoiceID: *voice})
	if err != nil {
		logger.Fatal("Failed to convert text to speech", zap.Error(err))
	}

	if err := os.WriteFile(*output, audio.Data, 0o644); err != nil {
		logger.Fatal("Failed to write audio file", zap.Error(err))
	}

	logger.Info("Audio saved",
		zap.String("file", *output),
		zap.String("contentType", audio.ContentType),
		zap.Int("bytes", len(audio.Data)))
}
