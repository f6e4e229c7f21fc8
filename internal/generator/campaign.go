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

// CampaignGenerator produces campaign settings and their hidden elements.
// No image aspect exists for campaigns.
type CampaignGenerator struct {
	chat   llm.ChatModel
	store  Store
	vocab  *prompt.Vocabulary
	logger *zap.Logger
}

func NewCampaignGenerator(chat llm.ChatModel, store Store, vocab *prompt.Vocabulary, logger *zap.Logger) *CampaignGenerator {
	return &CampaignGenerator{
		chat:   chat,
		store:  store,
		vocab:  vocab,
		logger: logger.Named("CampaignGenerator"),
	}
}

// Generate runs the campaign pipeline and persists the result. A linked world
// is flattened into the prompt context; world fields overwrite campaign
// fields of the same name.
func (g *CampaignGenerator) Generate(ctx context.Context, creation model.CampaignCreation) (model.Campaign, error) {
	vars := g.flatten(creation)

	setting, err := completeAspect(ctx, g.chat, g.logger, prompt.CampaignSettingPrompt(creation.Campaign), vars)
	if err != nil {
		return model.Campaign{}, err
	}
	vars["campaign"] = setting

	hidden, err := completeAspect(ctx, g.chat, g.logger, prompt.HiddenElementsPrompt(), vars)
	if err != nil {
		return model.Campaign{}, err
	}

	campaign := model.Campaign{
		ID:             uuid.New(),
		Name:           creation.Name,
		Universe:       vars["universe"],
		WorldTheme:     vars["world_theme"],
		Tone:           vars["tone"],
		Campaign:       setting,
		HiddenElements: hidden,
	}

	if err := storeEntity(ctx, g.store, vectorstore.CollectionCampaigns, campaign.ID.String(), campaign.Name, campaign); err != nil {
		return model.Campaign{}, err
	}
	g.logger.Info("Campaign generated",
		zap.String("id", campaign.ID.String()),
		zap.String("name", campaign.Name),
		zap.Bool("linked_world", creation.LinkedWorld != nil))
	return campaign, nil
}

// flatten builds the prompt context. Campaign fields go in first, then the
// linked world overwrites whatever it shares a name with. Backstory and
// timeline stay empty when no world is linked.
func (g *CampaignGenerator) flatten(creation model.CampaignCreation) prompt.Vars {
	vars := prompt.Vars{
		"name":        creation.Name,
		"universe":    g.vocab.Universe(creation.Universe),
		"world_theme": g.vocab.WorldTheme(creation.WorldTheme),
		"tone":        g.vocab.Tone(creation.Tone),
		"campaign":    creation.Campaign,
		"backstory":   "",
		"timeline":    "",
	}
	if w := creation.LinkedWorld; w != nil {
		vars["name"] = w.Name
		vars["universe"] = g.vocab.Universe(w.Universe)
		vars["world_theme"] = g.vocab.WorldTheme(w.WorldTheme)
		vars["tone"] = g.vocab.Tone(w.Tone)
		vars["backstory"] = w.Backstory
		vars["timeline"] = w.Timeline
	}
	return vars
}
