package ai

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeBedrock struct {
	in   *bedrockruntime.InvokeModelInput
	body string
}

func (f *fakeBedrock) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.in = in
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestBedrockGenerate(t *testing.T) {
	api := &fakeBedrock{body: `{"content":[{"type":"text","text":"Tacos "},{"type":"text","text":"tonight!"}]}`}
	g := NewBedrock(api, "anthropic.claude-3-haiku", 256)

	out, err := g.Generate(context.Background(), "Rewrite: tacos")
	require.NoError(t, err)
	assert.Equal(t, "Tacos tonight!", out)
	assert.Equal(t, "anthropic.claude-3-haiku", aws.ToString(api.in.ModelId))

	var req bedrockRequest
	require.NoError(t, json.Unmarshal(api.in.Body, &req))
	assert.Equal(t, "bedrock-2023-05-31", req.AnthropicVersion)
	assert.Equal(t, int32(256), req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "Rewrite: tacos", req.Messages[0].Content[0].Text)
}

func TestBedrockEmptyAnswer(t *testing.T) {
	g := NewBedrock(&fakeBedrock{body: `{"content":[]}`}, "m", 10)
	_, err := g.Generate(context.Background(), "x")
	require.ErrorIs(t, err, ErrEmptyAnswer)
}

type fakeModels struct {
	model  string
	config *genai.GenerateContentConfig
	answer string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.config = model, config
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.answer}}},
		}},
	}, nil
}

func TestGeminiGenerate(t *testing.T) {
	models := &fakeModels{answer: "promotion"}
	g := NewGemini(models, "gemini-2.0-flash", 64)

	out, err := g.Generate(context.Background(), "Classify")
	require.NoError(t, err)
	assert.Equal(t, "promotion", out)
	assert.Equal(t, "gemini-2.0-flash", models.model)
	assert.Equal(t, int32(64), models.config.MaxOutputTokens)
}

func TestGeminiEmptyAnswer(t *testing.T) {
	_, err := NewGemini(&fakeModels{}, "m", 1).Generate(context.Background(), "x")
	require.ErrorIs(t, err, ErrEmptyAnswer)
}
