package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/satriahrh/moodpulse/domain/repositories"
)

type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Generate(ctx context.Context, req repositories.GenerateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockTextToSpeech struct {
	mock.Mock
}

func (m *MockTextToSpeech) Synthesize(ctx context.Context, req repositories.SynthesisRequest) (*repositories.Audio, error) {
	args := m.Called(ctx, req)
	if audio, ok := args.Get(0).(*repositories.Audio); ok {
		return audio, args.Error(1)
	}
	return nil, args.Error(1)
}
