package serpapi

import "context"

// ISerpAPI defines the interface for the SerpAPI search client.
// Implementations are safe for concurrent use.
type ISerpAPI interface {
	// Search runs a google-engine search for the given query.
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// New creates a new SerpAPI client with the given configuration.
func New(cfg Config) (ISerpAPI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &serpImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
