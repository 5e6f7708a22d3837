package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chat-with-search/pkg/llmprovider"
)

// decide runs the decision gate: a single tool-free LLM call that
// answers whether the message needs live data. Only a response whose
// trimmed, lowercased text equals "yes" routes to the tool path.
func (uc *implUseCase) decide(ctx context.Context, prompt string, now time.Time) (bool, error) {
	question := fmt.Sprintf(PromptDecisionTemplate, now.Format(DateFormat), prompt)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: question}},
			},
		},
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		return false, fmt.Errorf("decision gate: %w", err)
	}

	verdict := strings.ToLower(strings.TrimSpace(firstText(resp.Content.Parts)))
	uc.l.Debugf(ctx, "decide: provider=%s verdict=%q", resp.ProviderName, verdict)

	return verdict == DecisionYes, nil
}
