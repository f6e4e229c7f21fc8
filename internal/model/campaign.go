package model

import "github.com/google/uuid"

// CampaignCreation is the input for campaign generation. A linked world, when
// present, is flattened into the prompt context; its fields win over campaign
// fields with the same name, so callers should not overlap names.
type CampaignCreation struct {
	Name       string `json:"name" binding:"required"`
	Universe   string `json:"universe" binding:"required"`
	WorldTheme string `json:"world_theme" binding:"required"`
	Tone       string `json:"tone" binding:"required"`

	// Campaign is an optional free-text setting; when present the setting
	// prompt runs in enhance mode.
	Campaign string `json:"campaign,omitempty"`

	LinkedWorld *World `json:"linked_world,omitempty"`

	// LinkedCharacters are accepted for forward compatibility but are not
	// wired into generation.
	LinkedCharacters []Character `json:"linked_character,omitempty"`
}

// Campaign is a fully generated campaign.
type Campaign struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Universe       string    `json:"universe"`
	WorldTheme     string    `json:"world_theme"`
	Tone           string    `json:"tone"`
	Campaign       string    `json:"campaign"`
	HiddenElements string    `json:"hidden_elements"`
}
