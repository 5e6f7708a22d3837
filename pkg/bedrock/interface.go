package bedrock

import "context"

// IBedrock defines the interface for the AWS Bedrock runtime client.
// Implementations are safe for concurrent use.
type IBedrock interface {
	// GenerateContent sends a Converse request to the Bedrock runtime.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Bedrock client with the given configuration.
func New(cfg Config) (IBedrock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &bedrockImpl{
		accessKeyID:     cfg.AccessKeyID,
		secretAccessKey: cfg.SecretAccessKey,
		sessionToken:    cfg.SessionToken,
		region:          cfg.Region,
		model:           cfg.Model,
		baseURL:         cfg.BaseURL,
		httpClient:      cfg.HTTPClient,
	}, nil
}
