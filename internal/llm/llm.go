// Package llm selects and constructs the chat, image, and embedding model
// clients. Provider credentials are inspected in a fixed priority order:
// Gemini first, then OpenAI. Construction never performs network I/O; the
// first real call happens when the returned client is invoked.
package llm

import (
	"context"
	"os"

	"go.uber.org/zap"

	"lorewright/internal/model"
)

// ChatModel produces a single completion for a rendered prompt.
type ChatModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageModel produces raw decoded image bytes for a prompt. A provider that
// returns no image data yields nil bytes and no error; the caller decides
// whether that matters.
type ImageModel interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// Embedder maps text to embedding vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

const (
	chatTemperature = 0.8

	geminiChatModel     = "gemini-2.0-flash"
	geminiImageModel    = "gemini-2.0-flash-exp-image-generation"
	geminiEmbedModel    = "text-embedding-004"
	geminiEmbedTaskType = "SEMANTIC_SIMILARITY"
)

// Factory builds provider clients from whichever credential is configured.
type Factory struct {
	geminiKey string
	openaiKey string
	logger    *zap.Logger
}

// NewFactory reads provider credentials from the environment.
func NewFactory(logger *zap.Logger) *Factory {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		geminiKey = os.Getenv("GOOGLE_API_KEY")
	}
	return NewFactoryFromKeys(geminiKey, os.Getenv("OPENAI_API_KEY"), logger)
}

// NewFactoryFromKeys builds a Factory with explicit credentials. Tests use
// this to pin provider selection without touching the environment.
func NewFactoryFromKeys(geminiKey, openaiKey string, logger *zap.Logger) *Factory {
	return &Factory{
		geminiKey: geminiKey,
		openaiKey: openaiKey,
		logger:    logger.Named("LLMFactory"),
	}
}

// CreateChat returns the chat model for the highest-priority configured
// provider, or ErrNoProviderCredential.
func (f *Factory) CreateChat(ctx context.Context) (ChatModel, error) {
	switch {
	case f.geminiKey != "":
		f.logger.Info("Using Gemini chat model", zap.String("model", geminiChatModel))
		return newGeminiChat(ctx, f.geminiKey, f.logger)
	case f.openaiKey != "":
		f.logger.Info("Using OpenAI chat model", zap.String("model", openAIChatModel))
		return newOpenAIChat(f.openaiKey, f.logger), nil
	default:
		return nil, model.ErrNoProviderCredential
	}
}

// CreateImageGenerator returns the image model for the highest-priority
// configured provider, or ErrNoProviderCredential.
func (f *Factory) CreateImageGenerator(ctx context.Context) (ImageModel, error) {
	switch {
	case f.geminiKey != "":
		f.logger.Info("Using Gemini image model", zap.String("model", geminiImageModel))
		return newGeminiImage(ctx, f.geminiKey, f.logger)
	case f.openaiKey != "":
		f.logger.Info("Using OpenAI image model", zap.String("model", openAIImageModel))
		return newOpenAIImage(f.openaiKey, f.logger), nil
	default:
		return nil, model.ErrNoProviderCredential
	}
}

// CreateEmbedder returns the embedding model for the highest-priority
// configured provider, or ErrNoProviderCredential.
func (f *Factory) CreateEmbedder(ctx context.Context) (Embedder, error) {
	switch {
	case f.geminiKey != "":
		f.logger.Info("Using Gemini embeddings", zap.String("model", geminiEmbedModel))
		return newGeminiEmbedder(ctx, f.geminiKey, f.logger)
	case f.openaiKey != "":
		f.logger.Info("Using OpenAI embeddings", zap.String("model", string(openAIEmbedModel)))
		return newOpenAIEmbedder(f.openaiKey, f.logger), nil
	default:
		return nil, model.ErrNoProviderCredential
	}
}
