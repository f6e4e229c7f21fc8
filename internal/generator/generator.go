// Package generator orchestrates entity generation: vocabulary normalization,
// prompt rendering, chat-model invocation per narrative aspect, optional
// image generation, and persistence into the vector store. Aspect calls run
// sequentially because later prompts consume earlier outputs.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"lorewright/internal/llm"
	"lorewright/internal/model"
	"lorewright/internal/prompt"
	"lorewright/internal/vectorstore"
)

// Store is the document persistence consumed by the generators and the
// retrieval paths.
type Store interface {
	Add(ctx context.Context, collection string, doc vectorstore.Document) error
	SearchSimilar(ctx context.Context, collection, query string, k int) ([]vectorstore.Match, error)
	GetByID(ctx context.Context, collection, id string) (vectorstore.Document, error)
	GetAllWorlds(ctx context.Context) ([]vectorstore.Document, error)
}

// completeAspect renders the template and runs one chat completion for it.
func completeAspect(ctx context.Context, chat llm.ChatModel, logger *zap.Logger, tpl prompt.Template, vars prompt.Vars) (string, error) {
	rendered, err := tpl.Render(vars)
	if err != nil {
		return "", err
	}
	logger.Debug("Invoking chat model",
		zap.String("aspect", tpl.Aspect()),
		zap.String("mode", string(tpl.Mode())),
		zap.Int("prompt_tokens", countTokens(rendered)))
	out, err := chat.Complete(ctx, rendered)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w: %w", tpl.Aspect(), model.ErrGenerationFailed, err)
	}
	return out, nil
}

// storeEntity serializes the entity as JSON and appends it to the collection.
func storeEntity(ctx context.Context, store Store, collection, id, name string, entity any) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("serialize entity: %w", err)
	}
	if err := store.Add(ctx, collection, vectorstore.Document{ID: id, Name: name, Body: string(raw)}); err != nil {
		return fmt.Errorf("store entity: %w", err)
	}
	return nil
}

// writeAsset writes image bytes under the asset directory, creating it on
// first use.
func writeAsset(dir, filename string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create asset directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}
	return nil
}
