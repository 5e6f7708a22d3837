package usecase

import (
	"context"
	"fmt"

	"chat-with-search/internal/session"
	"chat-with-search/pkg/llmprovider"
)

// respondDirect answers from model knowledge alone: one call, no
// system instruction, no memory, no tools.
func (uc *implUseCase) respondDirect(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: prompt}},
			},
		},
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("direct responder: %w", err)
	}

	return normalizeAnswer(resp.Content.Parts), nil
}

// respondWithTools runs the bounded agent loop: system instruction plus
// session history plus the prefixed message, with the registry's tools
// offered to the model. Each iteration either yields a final text
// answer or a tool call whose result is fed back into the conversation.
func (uc *implUseCase) respondWithTools(ctx context.Context, prompt string, mem *session.Memory) (string, error) {
	messages := historyMessages(mem.History())
	messages = append(messages, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: prompt}},
	})

	tools := uc.registry.ToFunctionDefinitions()

	for step := 0; step < uc.maxAgentSteps; step++ {
		resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
			SystemInstruction: &llmprovider.Message{
				Role:  "system",
				Parts: []llmprovider.Part{{Text: PromptSystemAgent}},
			},
			Messages:    messages,
			Tools:       tools,
			Temperature: uc.temperature,
			MaxTokens:   uc.maxTokens,
		})
		if err != nil {
			return "", fmt.Errorf("tool responder: %w", err)
		}

		call := firstFunctionCall(resp.Content.Parts)
		if call == nil {
			return normalizeAnswer(resp.Content.Parts), nil
		}

		uc.l.Infof(ctx, "respondWithTools: step=%d tool=%s", step, call.Name)

		result := uc.executeTool(ctx, call)

		messages = append(messages, llmprovider.Message{
			Role:  "assistant",
			Parts: resp.Content.Parts,
		})
		messages = append(messages, llmprovider.Message{
			Role: "user",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: result,
				},
			}},
		})
	}

	uc.l.Warnf(ctx, "respondWithTools: step budget exhausted (%d)", uc.maxAgentSteps)
	return MsgMaxStepsExceeded, nil
}

// executeTool resolves and runs a tool call. Failures become error
// payloads handed back to the model rather than request failures.
func (uc *implUseCase) executeTool(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	tool, ok := uc.registry.Get(call.Name)
	if !ok {
		uc.l.Warnf(ctx, "executeTool: unknown tool %q", call.Name)
		return map[string]interface{}{"error": fmt.Sprintf("tool %q not found", call.Name)}
	}

	result, err := tool.Execute(ctx, call.Args)
	if err != nil {
		uc.l.Warnf(ctx, "executeTool: %s failed: %v", call.Name, err)
		return map[string]interface{}{"error": err.Error()}
	}
	return result
}
