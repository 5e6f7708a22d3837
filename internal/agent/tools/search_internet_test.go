package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chat-with-search/pkg/serpapi"
)

// Mock SerpAPI client for testing
type mockSerpClient struct {
	response *serpapi.SearchResponse
	err      error
}

func (m *mockSerpClient) Search(ctx context.Context, query string) (*serpapi.SearchResponse, error) {
	return m.response, m.err
}

func TestSearchInternetSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Answer Box Snippet Wins", func(t *testing.T) {
		tool := &SearchInternetTool{client: &mockSerpClient{
			response: &serpapi.SearchResponse{
				AnswerBox: &serpapi.AnswerBox{Snippet: "The answer is 42.", Answer: "42"},
				OrganicResults: []serpapi.OrganicResult{
					{Title: "ignored", Link: "ignored", Snippet: "ignored"},
				},
			},
		}}

		result := tool.Search(ctx, "meaning of life")
		if result.Type != TypeAnswer {
			t.Fatalf("expected answer type, got %s", result.Type)
		}
		if result.Content != "The answer is 42." {
			t.Errorf("expected snippet content, got %q", result.Content)
		}
	})

	t.Run("Answer Box Falls Back To Answer Field", func(t *testing.T) {
		tool := &SearchInternetTool{client: &mockSerpClient{
			response: &serpapi.SearchResponse{
				AnswerBox: &serpapi.AnswerBox{Answer: "42"},
			},
		}}

		result := tool.Search(ctx, "meaning of life")
		if result.Type != TypeAnswer || result.Content != "42" {
			t.Errorf("expected answer 42, got %+v", result)
		}
	})

	t.Run("Organic Results Capped At Three With Defaults", func(t *testing.T) {
		organic := make([]serpapi.OrganicResult, 5)
		for i := range organic {
			organic[i] = serpapi.OrganicResult{Title: "title", Link: "link", Snippet: "snippet"}
		}
		organic[1] = serpapi.OrganicResult{Title: "only title"}

		tool := &SearchInternetTool{client: &mockSerpClient{
			response: &serpapi.SearchResponse{OrganicResults: organic},
		}}

		result := tool.Search(ctx, "golang news")
		if result.Type != TypeResults {
			t.Fatalf("expected results type, got %s", result.Type)
		}
		if len(result.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(result.Items))
		}
		if result.Items[1].Title != "only title" {
			t.Errorf("unexpected title: %q", result.Items[1].Title)
		}
		if result.Items[1].URL != "N/A" || result.Items[1].Snippet != "N/A" {
			t.Errorf("expected N/A defaults, got %+v", result.Items[1])
		}
	})

	t.Run("Empty Answer Box Falls Through To Organic", func(t *testing.T) {
		tool := &SearchInternetTool{client: &mockSerpClient{
			response: &serpapi.SearchResponse{
				AnswerBox:      &serpapi.AnswerBox{},
				OrganicResults: []serpapi.OrganicResult{{Title: "t", Link: "l", Snippet: "s"}},
			},
		}}

		result := tool.Search(ctx, "query")
		if result.Type != TypeResults {
			t.Errorf("expected results type, got %s", result.Type)
		}
	})

	t.Run("No Results", func(t *testing.T) {
		tool := &SearchInternetTool{client: &mockSerpClient{
			response: &serpapi.SearchResponse{},
		}}

		result := tool.Search(ctx, "obscure query")
		if result.Type != TypeError {
			t.Fatalf("expected error type, got %s", result.Type)
		}
		if result.Content != "No relevant results found." {
			t.Errorf("unexpected content: %q", result.Content)
		}
	})

	t.Run("Transport Error", func(t *testing.T) {
		tool := &SearchInternetTool{client: &mockSerpClient{
			err: errors.New("connection refused"),
		}}

		result := tool.Search(ctx, "query")
		if result.Type != TypeError {
			t.Fatalf("expected error type, got %s", result.Type)
		}
		if !strings.HasPrefix(result.Content, "Error performing search: ") {
			t.Errorf("unexpected error content: %q", result.Content)
		}
	})
}

func TestSearchInternetExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Query", func(t *testing.T) {
		tool := NewSearchInternetTool(&mockSerpClient{})
		if _, err := tool.Execute(ctx, map[string]interface{}{}); err == nil {
			t.Error("expected error for missing query")
		}
	})

	t.Run("Provider Failure Becomes Payload", func(t *testing.T) {
		tool := NewSearchInternetTool(&mockSerpClient{err: errors.New("boom")})
		out, err := tool.Execute(ctx, map[string]interface{}{"query": "weather"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload, ok := out.(map[string]interface{})
		if !ok {
			t.Fatalf("expected map payload, got %T", out)
		}
		if payload["type"] != "error" {
			t.Errorf("expected error payload, got %v", payload)
		}
	})

	t.Run("Answer Payload Shape", func(t *testing.T) {
		tool := NewSearchInternetTool(&mockSerpClient{
			response: &serpapi.SearchResponse{
				AnswerBox: &serpapi.AnswerBox{Snippet: "72F and sunny"},
			},
		})
		out, err := tool.Execute(ctx, map[string]interface{}{"query": "weather"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := out.(map[string]interface{})
		if payload["type"] != "answer" || payload["content"] != "72F and sunny" {
			t.Errorf("unexpected payload: %v", payload)
		}
	})
}
