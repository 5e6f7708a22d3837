package bedrock

import (
	"fmt"
	"net/http"
)

// Config holds Bedrock client configuration.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
	Model           string
	BaseURL         string
	HTTPClient      *http.Client
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.AccessKeyID == "" {
		return fmt.Errorf("bedrock: AccessKeyID is required")
	}
	if c.SecretAccessKey == "" {
		return fmt.Errorf("bedrock: SecretAccessKey is required")
	}
	if c.Region == "" {
		return fmt.Errorf("bedrock: Region is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com", c.Region)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// bedrockImpl is the internal implementation of IBedrock.
type bedrockImpl struct {
	accessKeyID     string
	secretAccessKey string
	sessionToken    string
	region          string
	model           string
	baseURL         string
	httpClient      *http.Client
}

// Request represents a normalized generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Content represents a conversation message.
type Content struct {
	Role  string
	Parts []Part
}

// Part holds a text segment, a tool invocation request, or a tool result.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool represents a function declaration exposed to the model.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's request to invoke a tool.
type FunctionCall struct {
	ID   string
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents a tool execution result fed back to the model.
type FunctionResponse struct {
	ID       string
	Name     string
	Response interface{}
}

// Response represents a normalized generation response.
type Response struct {
	Content    Content
	StopReason string
	Usage      Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// --- Converse API wire types ---

type converseRequest struct {
	System          []systemBlock    `json:"system,omitempty"`
	Messages        []wireMessage    `json:"messages"`
	ToolConfig      *toolConfig      `json:"toolConfig,omitempty"`
	InferenceConfig *inferenceConfig `json:"inferenceConfig,omitempty"`
}

type systemBlock struct {
	Text string `json:"text"`
}

type wireMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Text       string           `json:"text,omitempty"`
	ToolUse    *toolUseBlock    `json:"toolUse,omitempty"`
	ToolResult *toolResultBlock `json:"toolResult,omitempty"`
}

type toolUseBlock struct {
	ToolUseID string                 `json:"toolUseId"`
	Name      string                 `json:"name"`
	Input     map[string]interface{} `json:"input"`
}

type toolResultBlock struct {
	ToolUseID string              `json:"toolUseId"`
	Content   []toolResultContent `json:"content"`
}

type toolResultContent struct {
	JSON interface{} `json:"json,omitempty"`
	Text string      `json:"text,omitempty"`
}

type toolConfig struct {
	Tools []wireTool `json:"tools"`
}

type wireTool struct {
	ToolSpec toolSpec `json:"toolSpec"`
}

type toolSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	InputSchema inputSchema `json:"inputSchema"`
}

type inputSchema struct {
	JSON map[string]interface{} `json:"json"`
}

type inferenceConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"maxTokens,omitempty"`
}

type converseResponse struct {
	Output struct {
		Message wireMessage `json:"message"`
	} `json:"output"`
	StopReason string    `json:"stopReason"`
	Usage      wireUsage `json:"usage"`
}

type wireUsage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens"`
}
