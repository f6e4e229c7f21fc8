package generator_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lorewright/internal/generator"
	"lorewright/internal/mocks"
	"lorewright/internal/model"
	"lorewright/internal/prompt"
	"lorewright/internal/vectorstore"
)

func TestCampaignGenerateWithLinkedWorld(t *testing.T) {
	chat := mocks.NewMockChatModel(t)
	store := mocks.NewMockStore(t)

	// The linked world's history must reach the setting prompt; world fields
	// overwrite campaign fields of the same name.
	chat.On("Complete", mock.Anything, promptContaining("The ash chronicles.")).
		Return("## Introduction\nA campaign of ash.", nil).Once()
	chat.On("Complete", mock.Anything, promptContaining("hidden elements and secrets")).
		Return("- The advisor is the villain.", nil).Once()
	store.On("Add", mock.Anything, vectorstore.CollectionCampaigns, mock.Anything).Return(nil).Once()

	world := model.World{
		ID:         uuid.New(),
		Name:       "Aethel",
		Universe:   "homebrew stars",
		WorldTheme: "ash wastes",
		Tone:       "grim",
		Backstory:  "The ash chronicles.",
		Timeline:   "**Year 0** - **The Ashfall**",
	}

	gen := generator.NewCampaignGenerator(chat, store, prompt.DefaultVocabulary(), zap.NewNop())
	campaign, err := gen.Generate(context.Background(), model.CampaignCreation{
		Name:        "The Crystal Prophecy",
		Universe:    "d&d",
		WorldTheme:  "fantasy",
		Tone:        "epic",
		LinkedWorld: &world,
	})
	require.NoError(t, err)

	assert.Equal(t, "The Crystal Prophecy", campaign.Name)
	assert.Equal(t, "homebrew stars", campaign.Universe)
	assert.Equal(t, "ash wastes", campaign.WorldTheme)
	assert.Equal(t, "grim", campaign.Tone)
	assert.Equal(t, "## Introduction\nA campaign of ash.", campaign.Campaign)
	assert.Equal(t, "- The advisor is the villain.", campaign.HiddenElements)

	chat.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCampaignEnhanceModeSelection(t *testing.T) {
	chat := mocks.NewMockChatModel(t)
	store := mocks.NewMockStore(t)

	chat.On("Complete", mock.Anything, promptContaining("Enhance the existing campaign setting")).
		Return("Enhanced setting.", nil).Once()
	chat.On("Complete", mock.Anything, promptContaining("hidden elements and secrets")).
		Return("Secrets.", nil).Once()
	store.On("Add", mock.Anything, vectorstore.CollectionCampaigns, mock.Anything).Return(nil).Once()

	gen := generator.NewCampaignGenerator(chat, store, prompt.DefaultVocabulary(), zap.NewNop())
	campaign, err := gen.Generate(context.Background(), model.CampaignCreation{
		Name:       "The Crystal Prophecy",
		Universe:   "d&d",
		WorldTheme: "fantasy",
		Tone:       "epic",
		Campaign:   "A quest to recover the shattered pieces of the Crystal of Eternity.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Enhanced setting.", campaign.Campaign)

	chat.AssertExpectations(t)
}

func TestCampaignWithoutWorldLeavesWorldFieldsBlank(t *testing.T) {
	chat := mocks.NewMockChatModel(t)
	store := mocks.NewMockStore(t)

	var settingPrompt string
	chat.On("Complete", mock.Anything, promptContaining("Create a detailed campaign setting")).
		Run(func(args mock.Arguments) { settingPrompt = args.Get(1).(string) }).
		Return("A fresh campaign.", nil).Once()
	chat.On("Complete", mock.Anything, promptContaining("hidden elements and secrets")).
		Return("Secrets.", nil).Once()
	store.On("Add", mock.Anything, vectorstore.CollectionCampaigns, mock.Anything).Return(nil).Once()

	gen := generator.NewCampaignGenerator(chat, store, prompt.DefaultVocabulary(), zap.NewNop())
	_, err := gen.Generate(context.Background(), model.CampaignCreation{
		Name:       "The Crystal Prophecy",
		Universe:   "d&d",
		WorldTheme: "fantasy",
		Tone:       "epic",
	})
	require.NoError(t, err)

	// No linked world: history and timeline render as empty, not as an error.
	assert.Contains(t, settingPrompt, "World History: \n")
	assert.NotContains(t, settingPrompt, "{backstory}")
}
