package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiClient is the free-tier alternative to the OpenAI client. It covers
// both plan generation (JSON mode) and embeddings.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) GenerateItineraryJSON(ctx context.Context, req PlanRequest) (string, error) {
	if req.Days < 1 || req.Days > 30 {
		return "", fmt.Errorf("bad day count %d", req.Days)
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so fence stripping becomes a no-op.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(5000)

	resp, err := m.GenerateContent(ctx, genai.Text(BuildItineraryPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	content := StripCodeFences(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", ErrPlanNotJSON
	}
	return content, nil
}

// GetEmbedding generates a simple vector embedding for text.
// The free tier has no dedicated embedding model, so this hashes words into
// a fixed-dimension vector; good enough for coarse similarity ranking.
func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

func (c *GeminiClient) textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := c.hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func (c *GeminiClient) hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
