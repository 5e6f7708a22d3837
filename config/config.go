package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat orchestration
	Chat ChatConfig

	// Search provider
	SerpAPI SerpAPIConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ChatConfig tunes the orchestration loop and admission control.
type ChatConfig struct {
	RateLimitPerMin int
	MaxAgentSteps   int
	MaxTokens       int
	Temperature     float64
}

// SerpAPIConfig holds search provider credentials.
type SerpAPIConfig struct {
	APIKey  string
	BaseURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`

	// Anthropic-style key auth
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`

	// AWS SigV4 auth (bedrock)
	Region          string `yaml:"region,omitempty"`
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Chat orchestration
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.MaxAgentSteps = viper.GetInt("chat.max_agent_steps")
	cfg.Chat.MaxTokens = viper.GetInt("chat.max_tokens")
	cfg.Chat.Temperature = viper.GetFloat64("chat.temperature")

	// Search provider
	cfg.SerpAPI.APIKey = viper.GetString("serpapi.api_key")
	cfg.SerpAPI.BaseURL = viper.GetString("serpapi.base_url")
	if serpKey := viper.GetString("serp_api_key"); serpKey != "" {
		cfg.SerpAPI.APIKey = serpKey
	}
	// The search tool cannot function without credentials; refuse to start.
	if cfg.SerpAPI.APIKey == "" {
		return nil, fmt.Errorf("SERP_API_KEY not found in environment variables")
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:            getStringFromMap(providerMap, "name"),
						Enabled:         getBoolFromMap(providerMap, "enabled"),
						Priority:        getIntFromMap(providerMap, "priority"),
						Model:           getStringFromMap(providerMap, "model"),
						Timeout:         getStringFromMap(providerMap, "timeout"),
						APIKey:          expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:         getStringFromMap(providerMap, "base_url"),
						Region:          expandEnvVar(getStringFromMap(providerMap, "region")),
						AccessKeyID:     expandEnvVar(getStringFromMap(providerMap, "access_key_id")),
						SecretAccessKey: expandEnvVar(getStringFromMap(providerMap, "secret_access_key")),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Default provider setup from plain environment variables when no
	// providers section is present (container deployments).
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = providersFromEnv()
	}

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	return cfg, nil
}

// providersFromEnv builds the default provider chain from AWS and
// Anthropic environment credentials.
func providersFromEnv() []ProviderConfig {
	var providers []ProviderConfig

	if accessKey := viper.GetString("aws_access_key_id"); accessKey != "" {
		providers = append(providers, ProviderConfig{
			Name:            "bedrock",
			Enabled:         true,
			Priority:        1,
			Timeout:         "30s",
			Region:          viper.GetString("aws_default_region"),
			AccessKeyID:     accessKey,
			SecretAccessKey: viper.GetString("aws_secret_access_key"),
		})
	}

	if apiKey := viper.GetString("anthropic_api_key"); apiKey != "" {
		providers = append(providers, ProviderConfig{
			Name:     "anthropic",
			Enabled:  true,
			Priority: 2,
			Timeout:  "30s",
			APIKey:   apiKey,
		})
	}

	return providers
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("aws_default_region", "us-east-1")

	// Chat defaults
	viper.SetDefault("chat.rate_limit_per_min", 5)
	viper.SetDefault("chat.max_agent_steps", 5)
	viper.SetDefault("chat.max_tokens", 500)
	viper.SetDefault("chat.temperature", 0.3)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
