// Package ai implements port.TextGenerator on hosted language models.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const anthropicVersion = "bedrock-2023-05-31"

// ErrEmptyAnswer is returned when the model produced no text.
var ErrEmptyAnswer = errors.New("model returned no text")

// BedrockAPI is the part of the Bedrock runtime client the generator uses.
type BedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type bedrockMessage struct {
	Role    string         `json:"role"`
	Content []bedrockBlock `json:"content"`
}

type bedrockBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int32            `json:"max_tokens"`
	Messages         []bedrockMessage `json:"messages"`
}

type bedrockResponse struct {
	Content []bedrockBlock `json:"content"`
}

// Bedrock generates text with an Anthropic model on Amazon Bedrock.
type Bedrock struct {
	api       BedrockAPI
	modelID   string
	maxTokens int32
}

// NewBedrock creates a Bedrock generator for modelID.
func NewBedrock(api BedrockAPI, modelID string, maxTokens int32) *Bedrock {
	return &Bedrock{api: api, modelID: modelID, maxTokens: maxTokens}
}

// Generate sends prompt as a single user message and joins the text blocks
// of the answer.
func (b *Bedrock) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(bedrockRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        b.maxTokens,
		Messages: []bedrockMessage{{
			Role:    "user",
			Content: []bedrockBlock{{Type: "text", Text: prompt}},
		}},
	})
	if err != nil {
		return "", err
	}

	out, err := b.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("invoke %s: %w", b.modelID, err)
	}

	var resp bedrockResponse
	if err = json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("decode %s response: %w", b.modelID, err)
	}
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyAnswer
	}
	return sb.String(), nil
}
