package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements both the planner and the embedding interface.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) GenerateItineraryJSON(ctx context.Context, req PlanRequest) (string, error) {
	if req.Days < 1 || req.Days > 30 {
		return "", fmt.Errorf("bad day count %d", req.Days)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a professional travel planner with expertise in creating detailed itineraries. " +
					"You must respond with valid JSON only, with no additional text. " +
					"You must include activities for all days of the trip.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildItineraryPrompt(req),
			},
		},
		Temperature: 0.5,
		MaxTokens:   3000,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}

	content := StripCodeFences(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", ErrPlanNotJSON
	}
	return content, nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
