package llmprovider

import (
	"context"

	"chat-with-search/pkg/anthropic"
	"chat-with-search/pkg/bedrock"
)

// BedrockAdapter adapts pkg/bedrock to the llmprovider.Provider interface
type BedrockAdapter struct {
	client bedrock.IBedrock
}

// NewBedrockAdapter creates a new Bedrock adapter
func NewBedrockAdapter(client bedrock.IBedrock) *BedrockAdapter {
	return &BedrockAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *BedrockAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	bedrockReq := &bedrock.Request{
		SystemInstruction: convertToBedrockContent(req.SystemInstruction),
		Messages:          convertToBedrockContents(req.Messages),
		Tools:             convertToBedrockTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, bedrockReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromBedrockContent(resp.Content),
		StopReason:   resp.StopReason,
		ProviderName: "bedrock",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *BedrockAdapter) Name() string {
	return "bedrock"
}

// Model returns model name
func (a *BedrockAdapter) Model() string {
	return a.client.Model()
}

// AnthropicAdapter adapts pkg/anthropic to the llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	anthropicReq := &anthropic.Request{
		SystemInstruction: convertToAnthropicContent(req.SystemInstruction),
		Messages:          convertToAnthropicContents(req.Messages),
		Tools:             convertToAnthropicTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, anthropicReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromAnthropicContent(resp.Content),
		StopReason:   resp.StopReason,
		ProviderName: "anthropic",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Bedrock

func convertToBedrockContent(msg *Message) *bedrock.Content {
	if msg == nil {
		return nil
	}
	c := bedrock.Content{Role: msg.Role, Parts: convertToBedrockParts(msg.Parts)}
	return &c
}

func convertToBedrockContents(msgs []Message) []bedrock.Content {
	contents := make([]bedrock.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = bedrock.Content{Role: msg.Role, Parts: convertToBedrockParts(msg.Parts)}
	}
	return contents
}

func convertToBedrockParts(parts []Part) []bedrock.Part {
	out := make([]bedrock.Part, len(parts))
	for i, p := range parts {
		out[i] = bedrock.Part{Text: p.Text}
		if p.FunctionCall != nil {
			out[i].FunctionCall = &bedrock.FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			out[i].FunctionResponse = &bedrock.FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return out
}

func convertToBedrockTools(tools []Tool) []bedrock.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]bedrock.Tool, len(tools))
	for i, t := range tools {
		out[i] = bedrock.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func convertFromBedrockContent(content bedrock.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Anthropic

func convertToAnthropicContent(msg *Message) *anthropic.Content {
	if msg == nil {
		return nil
	}
	c := anthropic.Content{Role: msg.Role, Parts: convertToAnthropicParts(msg.Parts)}
	return &c
}

func convertToAnthropicContents(msgs []Message) []anthropic.Content {
	contents := make([]anthropic.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = anthropic.Content{Role: msg.Role, Parts: convertToAnthropicParts(msg.Parts)}
	}
	return contents
}

func convertToAnthropicParts(parts []Part) []anthropic.Part {
	out := make([]anthropic.Part, len(parts))
	for i, p := range parts {
		out[i] = anthropic.Part{Text: p.Text}
		if p.FunctionCall != nil {
			out[i].FunctionCall = &anthropic.FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			out[i].FunctionResponse = &anthropic.FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return out
}

func convertToAnthropicTools(tools []Tool) []anthropic.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]anthropic.Tool, len(tools))
	for i, t := range tools {
		out[i] = anthropic.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func convertFromAnthropicContent(content anthropic.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}
