package configs

import "strings"

// AI selects and configures the text generator.
type AI struct {
	// Provider is "bedrock" (default) or "gemini".
	Provider     string `env:"PROVIDER" envDefault:"bedrock"`
	BedrockModel string `env:"BEDROCK_MODEL" envDefault:"anthropic.claude-3-haiku-20240307-v1:0"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	MaxTokens    int32  `env:"MAX_TOKENS" envDefault:"1024"`
}

// ProviderName normalises Provider. Unknown values fall back to "bedrock".
func (c AI) ProviderName() string {
	switch strings.ToLower(c.Provider) {
	case "gemini":
		return "gemini"
	default:
		return "bedrock"
	}
}
