package bedrock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GenerateContent sends a Converse request to the Bedrock runtime.
func (b *bedrockImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := b.transformRequest(req)
	wireResp, err := b.callAPI(ctx, wireReq)
	if err != nil {
		return nil, err
	}
	return b.transformResponse(wireResp), nil
}

// Model returns the model being used.
func (b *bedrockImpl) Model() string {
	return b.model
}

// callAPI sends a signed request to the Converse endpoint.
func (b *bedrockImpl) callAPI(ctx context.Context, req converseRequest) (*converseResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("bedrock: failed to marshal request: %w", err)
	}

	// Model ids contain ':' which must be percent-encoded in the request path.
	modelPath := strings.ReplaceAll(url.PathEscape(b.model), ":", "%3A")
	endpoint := fmt.Sprintf("%s/model/%s/converse", b.baseURL, modelPath)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("bedrock: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	signRequest(httpReq, body, signingCredentials{
		AccessKeyID:     b.accessKeyID,
		SecretAccessKey: b.secretAccessKey,
		SessionToken:    b.sessionToken,
		Region:          b.region,
		Service:         serviceName,
	}, time.Now())

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("bedrock: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bedrock: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result converseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("bedrock: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts a normalized request to the Converse wire format.
func (b *bedrockImpl) transformRequest(req *Request) converseRequest {
	wireReq := converseRequest{
		Messages: make([]wireMessage, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			if p.Text != "" {
				wireReq.System = append(wireReq.System, systemBlock{Text: p.Text})
			}
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
				ToolSpec: toolSpec{
					Name:        tool.Name,
					Description: tool.Description,
					InputSchema: inputSchema{JSON: tool.Parameters},
				},
			}
		}
		wireReq.ToolConfig = &toolConfig{Tools: tools}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		cfg := &inferenceConfig{MaxTokens: req.MaxTokens}
		if req.Temperature > 0 {
			t := req.Temperature
			cfg.Temperature = &t
		}
		wireReq.InferenceConfig = cfg
	}

	return wireReq
}

func transformParts(parts []Part) []contentBlock {
	blocks := make([]contentBlock, 0, len(parts))
	for _, part := range parts {
		switch {
		case part.FunctionCall != nil:
			blocks = append(blocks, contentBlock{
				ToolUse: &toolUseBlock{
					ToolUseID: part.FunctionCall.ID,
					Name:      part.FunctionCall.Name,
					Input:     part.FunctionCall.Args,
				},
			})
		case part.FunctionResponse != nil:
			blocks = append(blocks, contentBlock{
				ToolResult: &toolResultBlock{
					ToolUseID: part.FunctionResponse.ID,
					Content:   []toolResultContent{{JSON: part.FunctionResponse.Response}},
				},
			})
		case part.Text != "":
			blocks = append(blocks, contentBlock{Text: part.Text})
		}
	}
	return blocks
}

// transformResponse converts a Converse response to the normalized format.
func (b *bedrockImpl) transformResponse(resp *converseResponse) *Response {
	msg := resp.Output.Message

	parts := make([]Part, 0, len(msg.Content))
	for _, block := range msg.Content {
		switch {
		case block.ToolUse != nil:
			parts = append(parts, Part{
				FunctionCall: &FunctionCall{
					ID:   block.ToolUse.ToolUseID,
					Name: block.ToolUse.Name,
					Args: block.ToolUse.Input,
				},
			})
		default:
			parts = append(parts, Part{Text: block.Text})
		}
	}

	return &Response{
		Content:    Content{Role: msg.Role, Parts: parts},
		StopReason: resp.StopReason,
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}
