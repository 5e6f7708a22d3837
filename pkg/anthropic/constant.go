package anthropic

import "time"

const (
	// DefaultModel is the default Anthropic model.
	DefaultModel = "claude-3-haiku-20240307"

	// DefaultBaseURL is the default Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com"

	// DefaultAPIVersion is the anthropic-version header value.
	DefaultAPIVersion = "2023-06-01"

	// DefaultMaxTokens is used when the caller does not set a budget;
	// the Messages API rejects requests without one.
	DefaultMaxTokens = 500

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)
