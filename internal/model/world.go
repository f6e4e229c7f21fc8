package model

import "github.com/google/uuid"

// WorldCreation is the input for world generation.
type WorldCreation struct {
	Name       string `json:"name" binding:"required"`
	Universe   string `json:"universe" binding:"required"`
	WorldTheme string `json:"world_theme" binding:"required"`
	Tone       string `json:"tone" binding:"required"`
	Backstory  string `json:"backstory,omitempty"`
	Timeline   string `json:"timeline,omitempty"`
}

// World is a fully generated world.
type World struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Universe      string    `json:"universe"`
	WorldTheme    string    `json:"world_theme"`
	Tone          string    `json:"tone"`
	Backstory     string    `json:"backstory"`
	Timeline      string    `json:"timeline"`
	ImageFilename string    `json:"image_filename,omitempty"`
}
