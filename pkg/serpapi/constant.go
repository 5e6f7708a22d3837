package serpapi

import "time"

const (
	// DefaultBaseURL is the default SerpAPI endpoint.
	DefaultBaseURL = "https://serpapi.com"

	// DefaultEngine is the search engine passed on every request.
	DefaultEngine = "google"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 15 * time.Second
)
