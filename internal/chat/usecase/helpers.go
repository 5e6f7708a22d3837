package usecase

import (
	"fmt"

	"chat-with-search/internal/model"
	"chat-with-search/pkg/llmprovider"
)

// historyMessages converts stored turns into provider messages.
func historyMessages(turns []model.Turn) []llmprovider.Message {
	messages := make([]llmprovider.Message, 0, len(turns)+1)
	for _, turn := range turns {
		messages = append(messages, llmprovider.Message{
			Role:  string(turn.Role),
			Parts: []llmprovider.Part{{Text: turn.Content}},
		})
	}
	return messages
}

// firstText returns the first non-empty text part, or "".
func firstText(parts []llmprovider.Part) string {
	for _, part := range parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}

// firstFunctionCall returns the first tool call in the parts, or nil.
func firstFunctionCall(parts []llmprovider.Part) *llmprovider.FunctionCall {
	for _, part := range parts {
		if part.FunctionCall != nil {
			return part.FunctionCall
		}
	}
	return nil
}

// normalizeAnswer flattens model output parts into one string. A
// leading non-empty text part is used as-is; anything else is
// stringified from the collected texts, so empty output renders "[]".
func normalizeAnswer(parts []llmprovider.Part) string {
	if len(parts) > 0 && parts[0].Text != "" {
		return parts[0].Text
	}

	texts := []string{}
	for _, part := range parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return fmt.Sprintf("%v", texts)
}
