package llm

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	openAIChatModel  = openai.GPT3Dot5Turbo
	openAIImageModel = openai.CreateImageModelDallE3
	openAIEmbedModel = openai.AdaEmbeddingV2
)

type openAIChat struct {
	client *openai.Client
	logger *zap.Logger
}

func newOpenAIChat(apiKey string, logger *zap.Logger) *openAIChat {
	return &openAIChat{
		client: openai.NewClient(apiKey),
		logger: logger.Named("OpenAIChat"),
	}
}

func (c *openAIChat) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openAIChatModel,
		Temperature: chatTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

type openAIImage struct {
	client *openai.Client
	logger *zap.Logger
}

func newOpenAIImage(apiKey string, logger *zap.Logger) *openAIImage {
	return &openAIImage{
		client: openai.NewClient(apiKey),
		logger: logger.Named("OpenAIImage"),
	}
}

func (g *openAIImage) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          openAIImageModel,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image generation: %w", err)
	}
	if len(resp.Data) == 0 {
		g.logger.Warn("Image response contained no data")
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return raw, nil
}

type openAIEmbedder struct {
	client *openai.Client
	logger *zap.Logger
}

func newOpenAIEmbedder(apiKey string, logger *zap.Logger) *openAIEmbedder {
	return &openAIEmbedder{
		client: openai.NewClient(apiKey),
		logger: logger.Named("OpenAIEmbedder"),
	}
}

func (e *openAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *openAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openAIEmbedModel,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(resp.Data), len(texts))
	}
	vecs := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vecs[i] = d.Embedding
	}
	return vecs, nil
}
