package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

func newGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}

type geminiChat struct {
	client *genai.Client
	logger *zap.Logger
}

func newGeminiChat(ctx context.Context, apiKey string, logger *zap.Logger) (*geminiChat, error) {
	client, err := newGeminiClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return &geminiChat{client: client, logger: logger.Named("GeminiChat")}, nil
}

func (c *geminiChat) Complete(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, geminiChatModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(chatTemperature)),
	})
	if err != nil {
		return "", fmt.Errorf("gemini chat completion: %w", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini chat completion: empty response")
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

type geminiImage struct {
	client *genai.Client
	logger *zap.Logger
}

func newGeminiImage(ctx context.Context, apiKey string, logger *zap.Logger) (*geminiImage, error) {
	client, err := newGeminiClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return &geminiImage{client: client, logger: logger.Named("GeminiImage")}, nil
}

func (g *geminiImage) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	res, err := g.client.Models.GenerateContent(ctx, geminiImageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini image generation: %w", err)
	}
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	g.logger.Warn("Image response contained no inline data")
	return nil, nil
}

type geminiEmbedder struct {
	client *genai.Client
	logger *zap.Logger
}

func newGeminiEmbedder(ctx context.Context, apiKey string, logger *zap.Logger) (*geminiEmbedder, error) {
	client, err := newGeminiClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return &geminiEmbedder{client: client, logger: logger.Named("GeminiEmbedder")}, nil
}

func (e *geminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *geminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = genai.NewContentFromText(t, genai.RoleUser)
	}
	result, err := e.client.Models.EmbedContent(ctx, geminiEmbedModel, contents, &genai.EmbedContentConfig{
		TaskType: geminiEmbedTaskType,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini embeddings: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("gemini embeddings: got %d vectors for %d inputs", len(result.Embeddings), len(texts))
	}
	vecs := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		vecs[i] = emb.Values
	}
	return vecs, nil
}
