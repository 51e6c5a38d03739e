package config

// LLM provider constants
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// LLMConfig holds LLM provider selection configuration
type LLMConfig struct {
	// Provider specifies which LLM provider to use: "openai" or "anthropic"
	Provider string `env:"LLM_PROVIDER" yaml:"provider" default:"openai"`
}
