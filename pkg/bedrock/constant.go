package bedrock

import "time"

const (
	// DefaultModel is the default Bedrock model identifier.
	DefaultModel = "anthropic.claude-3-haiku-20240307-v1:0"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// serviceName is the AWS service name used in SigV4 credential scope.
	serviceName = "bedrock"
)
