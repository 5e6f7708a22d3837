package serpapi

import (
	"fmt"
	"net/http"
)

// Config holds SerpAPI client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("serpapi: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// serpImpl is the internal implementation of ISerpAPI.
type serpImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// SearchResponse is the subset of the SerpAPI result document this
// service consumes.
type SearchResponse struct {
	AnswerBox      *AnswerBox      `json:"answer_box,omitempty"`
	OrganicResults []OrganicResult `json:"organic_results,omitempty"`
}

// AnswerBox is SerpAPI's direct answer block.
type AnswerBox struct {
	Snippet string `json:"snippet,omitempty"`
	Answer  string `json:"answer,omitempty"`
}

// OrganicResult is a single organic search hit.
type OrganicResult struct {
	Title   string `json:"title,omitempty"`
	Link    string `json:"link,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}
