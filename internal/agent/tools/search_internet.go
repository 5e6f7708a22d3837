package tools

import (
	"context"
	"fmt"

	"chat-with-search/internal/agent"
	"chat-with-search/pkg/serpapi"
)

const maxOrganicResults = 3

const fieldMissing = "N/A"

// SearchInternetTool wraps the SerpAPI client as an agent tool.
type SearchInternetTool struct {
	client serpapi.ISerpAPI
}

// NewSearchInternetTool creates a new internet search tool.
func NewSearchInternetTool(client serpapi.ISerpAPI) agent.Tool {
	return &SearchInternetTool{client: client}
}

func (t *SearchInternetTool) Name() string {
	return "search_internet"
}

func (t *SearchInternetTool) Description() string {
	return "Search the internet for current information. Use this for queries about weather, news, or any time-sensitive information."
}

func (t *SearchInternetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The search query",
			},
		},
		"required": []string{"query"},
	}
}

// Execute runs a search and returns its observation payload. The only
// error it can return is a missing query parameter; provider failures
// are folded into the payload so the agent loop can recover.
func (t *SearchInternetTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	return t.Search(ctx, query).ToPayload(), nil
}

// Search runs one search invocation and normalizes the provider's
// response. It never fails: transport and provider errors become an
// error-typed result.
func (t *SearchInternetTool) Search(ctx context.Context, query string) SearchResult {
	resp, err := t.client.Search(ctx, query)
	if err != nil {
		return SearchResult{
			Type:    TypeError,
			Content: fmt.Sprintf("Error performing search: %v", err),
		}
	}

	// Extraction priority: answer box first, snippet preferred over the
	// bare answer field.
	if resp.AnswerBox != nil {
		answer := resp.AnswerBox.Snippet
		if answer == "" {
			answer = resp.AnswerBox.Answer
		}
		if answer != "" {
			return SearchResult{Type: TypeAnswer, Content: answer}
		}
	}

	if len(resp.OrganicResults) > 0 {
		results := resp.OrganicResults
		if len(results) > maxOrganicResults {
			results = results[:maxOrganicResults]
		}
		items := make([]SearchItem, 0, len(results))
		for _, r := range results {
			items = append(items, SearchItem{
				Title:   orDefault(r.Title),
				URL:     orDefault(r.Link),
				Snippet: orDefault(r.Snippet),
			})
		}
		return SearchResult{Type: TypeResults, Items: items}
	}

	return SearchResult{Type: TypeError, Content: "No relevant results found."}
}

func orDefault(s string) string {
	if s == "" {
		return fieldMissing
	}
	return s
}
