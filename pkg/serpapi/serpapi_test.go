package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Request Shape And Response Parsing", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string]string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = map[string]string{
				"engine":  r.URL.Query().Get("engine"),
				"q":       r.URL.Query().Get("q"),
				"api_key": r.URL.Query().Get("api_key"),
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"answer_box": {"snippet": "The answer is 42.", "answer": "42"},
				"organic_results": [
					{"title": "First", "link": "https://a.example", "snippet": "s1"},
					{"title": "Second", "link": "https://b.example"}
				]
			}`))
		}))
		defer ts.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.Search(ctx, "meaning of life")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotPath != "/search.json" {
			t.Errorf("unexpected path: %s", gotPath)
		}
		if gotQuery["engine"] != "google" || gotQuery["q"] != "meaning of life" || gotQuery["api_key"] != "test-key" {
			t.Errorf("unexpected query params: %v", gotQuery)
		}

		if resp.AnswerBox == nil || resp.AnswerBox.Snippet != "The answer is 42." {
			t.Errorf("answer box not parsed: %+v", resp.AnswerBox)
		}
		if len(resp.OrganicResults) != 2 {
			t.Fatalf("expected 2 organic results, got %d", len(resp.OrganicResults))
		}
		if resp.OrganicResults[1].Snippet != "" {
			t.Errorf("expected empty snippet, got %q", resp.OrganicResults[1].Snippet)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Invalid API key"}`))
		}))
		defer ts.Close()

		client, _ := New(Config{APIKey: "bad-key", BaseURL: ts.URL})
		if _, err := client.Search(ctx, "query"); err == nil {
			t.Error("expected error for non-200 status")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("Requires API Key", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("Defaults Base URL", func(t *testing.T) {
		cfg := Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base URL, got %q", cfg.BaseURL)
		}
	})
}
