package api

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/moodpulse/adapters"
	"github.com/satriahrh/moodpulse/domain/repositories"
	"github.com/satriahrh/moodpulse/usecase"
)

// fakeLLM answers every prompt with reply, or fails with err
type fakeLLM struct {
	mu       sync.Mutex
	reply    string
	err      error
	requests []repositories.GenerateRequest
}

func (f *fakeLLM) Generate(ctx context.Context, req repositories.GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// fakeTTS returns audio for every text, or fails with err
type fakeTTS struct {
	mu       sync.Mutex
	audio    []byte
	err      error
	requests []repositories.SynthesisRequest
}

func (f *fakeTTS) Synthesize(ctx context.Context, req repositories.SynthesisRequest) (*repositories.Audio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &repositories.Audio{Data: f.audio, ContentType: "audio/mpeg"}, nil
}

func (f *fakeTTS) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestServer(llm *fakeLLM, tts *fakeTTS) *echo.Echo {
	logger := zap.NewNop()

	e := echo.New()
	UseMiddleware(e, logger)
	InitRoutes(e, Services{
		Analysis: usecase.NewAnalysisService(llm, logger),
		Speech:   usecase.NewSpeechService(tts, logger),
		Summary:  usecase.NewSummaryService(llm, logger),
		Tasks:    adapters.NewMemoryTaskRepository(),
	}, logger)
	return e
}
