package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GenerateContent sends a generation request to the Messages API.
func (a *anthropicImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := a.transformRequest(req)
	wireResp, err := a.callAPI(ctx, wireReq)
	if err != nil {
		return nil, err
	}
	return a.transformResponse(wireResp), nil
}

// Model returns the model being used.
func (a *anthropicImpl) Model() string {
	return a.model
}

// callAPI sends a request to the Messages API.
func (a *anthropicImpl) callAPI(ctx context.Context, req messagesRequest) (*messagesResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/messages", a.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", a.apiKey)
	httpReq.Header.Set("Anthropic-Version", a.apiVersion)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("anthropic: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts a normalized request to the Messages API format.
func (a *anthropicImpl) transformRequest(req *Request) messagesRequest {
	wireReq := messagesRequest{
		Model:     a.model,
		MaxTokens: req.MaxTokens,
		Messages:  make([]wireMessage, len(req.Messages)),
	}
	if wireReq.MaxTokens <= 0 {
		wireReq.MaxTokens = DefaultMaxTokens
	}

	if req.Temperature > 0 {
		t := req.Temperature
		wireReq.Temperature = &t
	}

	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			wireReq.System += p.Text
		}
	}

	for i, msg := range req.Messages {
		wireReq.Messages[i] = wireMessage{
			Role:    msg.Role,
			Content: transformParts(msg.Parts),
		}
	}

	if len(req.Tools) > 0 {
		tools := make([]wireTool, len(req.Tools))
		for i, tool := range req.Tools {
			tools[i] = wireTool{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: tool.Parameters,
			}
		}
		wireReq.Tools = tools
	}

	return wireReq
}

func transformParts(parts []Part) []contentBlock {
	blocks := make([]contentBlock, 0, len(parts))
	for _, part := range parts {
		switch {
		case part.FunctionCall != nil:
			blocks = append(blocks, contentBlock{
				Type:  "tool_use",
				ID:    part.FunctionCall.ID,
				Name:  part.FunctionCall.Name,
				Input: part.FunctionCall.Args,
			})
		case part.FunctionResponse != nil:
			payload, err := json.Marshal(part.FunctionResponse.Response)
			if err != nil {
				payload = []byte(fmt.Sprintf("%v", part.FunctionResponse.Response))
			}
			blocks = append(blocks, contentBlock{
				Type:      "tool_result",
				ToolUseID: part.FunctionResponse.ID,
				Content:   string(payload),
			})
		case part.Text != "":
			blocks = append(blocks, contentBlock{Type: "text", Text: part.Text})
		}
	}
	return blocks
}

// transformResponse converts a Messages API response to the normalized format.
func (a *anthropicImpl) transformResponse(resp *messagesResponse) *Response {
	parts := make([]Part, 0, len(resp.Content))
	for _, block := range resp.Content {
		switch block.Type {
		case "tool_use":
			parts = append(parts, Part{
				FunctionCall: &FunctionCall{
					ID:   block.ID,
					Name: block.Name,
					Args: block.Input,
				},
			})
		default:
			parts = append(parts, Part{Text: block.Text})
		}
	}

	return &Response{
		Content:    Content{Role: "assistant", Parts: parts},
		StopReason: resp.StopReason,
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}
}
