package generator

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lorewright/internal/llm"
	"lorewright/internal/model"
	"lorewright/internal/prompt"
	"lorewright/internal/vectorstore"
)

// worldImageFilename is fixed: regenerating any world overwrites the previous
// landscape on disk.
const worldImageFilename = "world_image.png"

// WorldGenerator produces worlds: the history is generated first and then
// feeds the timeline prompt and the landscape image.
type WorldGenerator struct {
	chat     llm.ChatModel
	image    llm.ImageModel
	store    Store
	vocab    *prompt.Vocabulary
	assetDir string
	logger   *zap.Logger
}

func NewWorldGenerator(chat llm.ChatModel, image llm.ImageModel, store Store, vocab *prompt.Vocabulary, assetDir string, logger *zap.Logger) *WorldGenerator {
	return &WorldGenerator{
		chat:     chat,
		image:    image,
		store:    store,
		vocab:    vocab,
		assetDir: assetDir,
		logger:   logger.Named("WorldGenerator"),
	}
}

// Generate runs the full world pipeline and persists the result.
func (g *WorldGenerator) Generate(ctx context.Context, creation model.WorldCreation) (model.World, error) {
	vars := prompt.Vars{
		"name":        creation.Name,
		"universe":    g.vocab.Universe(creation.Universe),
		"world_theme": g.vocab.WorldTheme(creation.WorldTheme),
		"tone":        g.vocab.Tone(creation.Tone),
		"backstory":   creation.Backstory,
		"timeline":    creation.Timeline,
	}

	history, err := completeAspect(ctx, g.chat, g.logger, prompt.WorldHistoryPrompt(creation.Backstory), vars)
	if err != nil {
		return model.World{}, err
	}
	vars["backstory"] = history

	timeline, err := completeAspect(ctx, g.chat, g.logger, prompt.TimelinePrompt(creation.Timeline), vars)
	if err != nil {
		return model.World{}, err
	}

	world := model.World{
		ID:            uuid.New(),
		Name:          creation.Name,
		Universe:      vars["universe"],
		WorldTheme:    vars["world_theme"],
		Tone:          vars["tone"],
		Backstory:     history,
		Timeline:      timeline,
		ImageFilename: g.generateImage(ctx, history),
	}

	if err := storeEntity(ctx, g.store, vectorstore.CollectionWorlds, world.ID.String(), world.Name, world); err != nil {
		return model.World{}, err
	}
	g.logger.Info("World generated",
		zap.String("id", world.ID.String()),
		zap.String("name", world.Name),
		zap.Bool("has_image", world.ImageFilename != ""))
	return world, nil
}

func (g *WorldGenerator) generateImage(ctx context.Context, description string) string {
	if description == "" {
		return ""
	}
	data, err := g.image.GenerateImage(ctx, prompt.WorldImagePrompt(description))
	if err != nil {
		g.logger.Warn("Image generation failed", zap.Error(err))
		return ""
	}
	if len(data) == 0 {
		g.logger.Warn("Image model returned no data")
		return ""
	}
	if err := writeAsset(g.assetDir, worldImageFilename, data); err != nil {
		g.logger.Warn("Failed to save image", zap.Error(err))
		return ""
	}
	return worldImageFilename
}
