package generator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lorewright/internal/llm"
	"lorewright/internal/model"
	"lorewright/internal/prompt"
	"lorewright/internal/vectorstore"
)

// defaultAlignment is assumed when the caller leaves alignment empty.
const defaultAlignment = "Neutral"

// CharacterGenerator produces characters: appearance, personality, and
// backstory in that order, each aspect feeding the next prompt.
type CharacterGenerator struct {
	chat     llm.ChatModel
	image    llm.ImageModel
	store    Store
	vocab    *prompt.Vocabulary
	assetDir string
	logger   *zap.Logger
}

func NewCharacterGenerator(chat llm.ChatModel, image llm.ImageModel, store Store, vocab *prompt.Vocabulary, assetDir string, logger *zap.Logger) *CharacterGenerator {
	return &CharacterGenerator{
		chat:     chat,
		image:    image,
		store:    store,
		vocab:    vocab,
		assetDir: assetDir,
		logger:   logger.Named("CharacterGenerator"),
	}
}

// Generate runs the full character pipeline and persists the result. Any
// aspect failure aborts without persisting; an image failure only logs.
func (g *CharacterGenerator) Generate(ctx context.Context, creation model.CharacterCreation) (model.Character, error) {
	alignment := creation.Alignment
	if alignment == "" {
		alignment = defaultAlignment
	}

	vars := prompt.Vars{
		"name":        creation.Name,
		"gender":      creation.Gender,
		"race":        creation.Race,
		"alignment":   alignment,
		"universe":    g.vocab.Universe(creation.Universe),
		"world_theme": g.vocab.WorldTheme(creation.WorldTheme),
		"tone":        g.vocab.Tone(creation.Tone),
		"appearance":  creation.Appearance,
		"personality": creation.Personality,
		"backstory":   creation.Backstory,
	}

	appearance, err := completeAspect(ctx, g.chat, g.logger, prompt.AppearancePrompt(creation.Appearance), vars)
	if err != nil {
		return model.Character{}, err
	}
	vars["appearance"] = appearance

	personality, err := completeAspect(ctx, g.chat, g.logger, prompt.PersonalityPrompt(creation.Personality), vars)
	if err != nil {
		return model.Character{}, err
	}
	vars["personality"] = personality

	backstory, err := completeAspect(ctx, g.chat, g.logger, prompt.BackstoryPrompt(creation.Backstory), vars)
	if err != nil {
		return model.Character{}, err
	}

	character := model.Character{
		ID:            uuid.New(),
		Name:          creation.Name,
		Gender:        creation.Gender,
		Race:          creation.Race,
		Alignment:     alignment,
		Appearance:    appearance,
		Personality:   personality,
		Backstory:     backstory,
		Universe:      vars["universe"],
		WorldTheme:    vars["world_theme"],
		Tone:          vars["tone"],
		LinkedWorldID: creation.LinkedWorldID,
		ImageFilename: g.generateImage(ctx, appearance),
	}

	if err := storeEntity(ctx, g.store, vectorstore.CollectionCharacters, character.ID.String(), character.Name, character); err != nil {
		return model.Character{}, err
	}
	g.logger.Info("Character generated",
		zap.String("id", character.ID.String()),
		zap.String("name", character.Name),
		zap.Bool("has_image", character.ImageFilename != ""))
	return character, nil
}

// generateImage renders a portrait from the appearance text. Failures are
// swallowed: the character simply ships without an image.
func (g *CharacterGenerator) generateImage(ctx context.Context, appearance string) string {
	if appearance == "" {
		return ""
	}
	data, err := g.image.GenerateImage(ctx, prompt.CharacterImagePrompt(appearance))
	if err != nil {
		g.logger.Warn("Image generation failed", zap.Error(err))
		return ""
	}
	if len(data) == 0 {
		g.logger.Warn("Image model returned no data")
		return ""
	}
	filename := fmt.Sprintf("character_image_%s.png", uuid.New())
	if err := writeAsset(g.assetDir, filename, data); err != nil {
		g.logger.Warn("Failed to save image", zap.Error(err))
		return ""
	}
	return filename
}
