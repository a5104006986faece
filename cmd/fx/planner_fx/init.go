// cmd/fx/planner_fx/init.go
package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"roamconnect/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient,
	ProvideEmbeddingClient)

// PlannerConfig holds configuration for AI planner clients
type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvidePlannerClient creates a plan-generation client based on environment variables
func ProvidePlannerClient() (utils.PlannerClientInterface, error) {
	config := getPlannerConfig()

	log.Printf("Initializing %s planner client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// ProvideEmbeddingClient creates an embedding client from the same provider config
func ProvideEmbeddingClient(planner utils.PlannerClientInterface) (utils.EmbeddingClientInterface, error) {
	if embedder, ok := planner.(utils.EmbeddingClientInterface); ok {
		return embedder, nil
	}
	return nil, fmt.Errorf("configured AI provider does not support embeddings")
}

// getPlannerConfig reads configuration from environment variables
func getPlannerConfig() PlannerConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return PlannerConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
