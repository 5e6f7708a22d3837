package usecase

import (
	"chat-with-search/internal/agent"
	"chat-with-search/internal/chat"
	"chat-with-search/internal/session"
	"chat-with-search/pkg/llmprovider"
	pkgLog "chat-with-search/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	registry *agent.ToolRegistry
	sessions *session.Store

	maxAgentSteps int
	temperature   float64
	maxTokens     int
}

var _ chat.UseCase = (*implUseCase)(nil)

// Options tunes the orchestration loop; zero values fall back to defaults.
type Options struct {
	MaxAgentSteps int
	Temperature   float64
	MaxTokens     int
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	registry *agent.ToolRegistry,
	sessions *session.Store,
	opts Options,
) *implUseCase {
	if opts.MaxAgentSteps <= 0 {
		opts.MaxAgentSteps = DefaultMaxAgentSteps
	}
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	return &implUseCase{
		l:             l,
		llm:           llm,
		registry:      registry,
		sessions:      sessions,
		maxAgentSteps: opts.MaxAgentSteps,
		temperature:   opts.Temperature,
		maxTokens:     opts.MaxTokens,
	}
}
