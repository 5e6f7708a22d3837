package usecase

import (
	"context"
	"errors"

	"chat-with-search/internal/agent"
	"chat-with-search/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// scriptedStep is one canned LLM exchange.
type scriptedStep struct {
	resp *llmprovider.Response
	err  error
}

// scriptedProvider returns pre-scripted responses in order and records
// every request it receives.
type scriptedProvider struct {
	steps    []scriptedStep
	requests []*llmprovider.Request
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.requests = append(p.requests, req)
	if len(p.requests) > len(p.steps) {
		return nil, errors.New("scripted provider exhausted")
	}
	step := p.steps[len(p.requests)-1]
	return step.resp, step.err
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func newTestManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})
}

func textStep(text string) scriptedStep {
	return scriptedStep{resp: &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: text}},
		},
	}}
}

func toolCallStep(id, name string, args map[string]interface{}) scriptedStep {
	return scriptedStep{resp: &llmprovider.Response{
		Content: llmprovider.Message{
			Role: "assistant",
			Parts: []llmprovider.Part{{
				FunctionCall: &llmprovider.FunctionCall{ID: id, Name: name, Args: args},
			}},
		},
	}}
}

// recordingTool records Execute calls and returns a fixed payload.
type recordingTool struct {
	name    string
	calls   []map[string]interface{}
	payload interface{}
	err     error
}

func (t *recordingTool) Name() string                       { return t.name }
func (t *recordingTool) Description() string                { return "test tool" }
func (t *recordingTool) Parameters() map[string]interface{} { return map[string]interface{}{} }

func (t *recordingTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	t.calls = append(t.calls, params)
	return t.payload, t.err
}

func registryWith(tools ...agent.Tool) *agent.ToolRegistry {
	registry := agent.NewToolRegistry()
	for _, tool := range tools {
		registry.Register(tool)
	}
	return registry
}
