package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiModels is the part of genai.Models the generator uses.
type GeminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini generates text with a Google Gemini model.
type Gemini struct {
	models    GeminiModels
	model     string
	maxTokens int32
}

// NewGeminiClient creates the genai client for apiKey.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// NewGemini creates a Gemini generator, usually over client.Models.
func NewGemini(models GeminiModels, model string, maxTokens int32) *Gemini {
	return &Gemini{models: models, model: model, maxTokens: maxTokens}
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{MaxOutputTokens: g.maxTokens},
	)
	if err != nil {
		return "", fmt.Errorf("generate with %s: %w", g.model, err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyAnswer
	}
	return text, nil
}
