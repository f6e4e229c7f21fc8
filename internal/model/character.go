package model

import "github.com/google/uuid"

// CharacterCreation is the input for character generation. Optional narrative
// fields, when present, switch the matching prompt into enhance mode.
type CharacterCreation struct {
	Name      string `json:"name" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	Race      string `json:"race" binding:"required"`
	Alignment string `json:"alignment,omitempty"`

	Appearance  string `json:"appearance,omitempty"`
	Personality string `json:"personality,omitempty"`
	Backstory   string `json:"backstory,omitempty"`

	Universe   string `json:"universe" binding:"required"`
	WorldTheme string `json:"world_theme" binding:"required"`
	Tone       string `json:"tone" binding:"required"`

	LinkedWorldID *uuid.UUID `json:"linked_world_id,omitempty"`
}

// Character is a fully generated character. The id is assigned exactly once
// at generation time; stored characters are never updated or deleted.
type Character struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Race      string    `json:"race"`
	Alignment string    `json:"alignment"`

	Appearance  string `json:"appearance"`
	Personality string `json:"personality"`
	Backstory   string `json:"backstory"`

	Universe   string `json:"universe"`
	WorldTheme string `json:"world_theme"`
	Tone       string `json:"tone"`

	LinkedWorldID *uuid.UUID `json:"linked_world_id,omitempty"`
	ImageFilename string     `json:"image_filename,omitempty"`
}
