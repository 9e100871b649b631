package factory

import (
	"fmt"

	"menu-ai-be/pkg/llm"
	"menu-ai-be/pkg/llm/ollama"
	"menu-ai-be/pkg/llm/openai"
)

// NewLLMProvider builds a provider from config. An empty providerType means
// no model is configured: the caller gets nil and must serve every message
// from the rule-based fallback path.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "":
		return nil, nil
	case "openai":
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
