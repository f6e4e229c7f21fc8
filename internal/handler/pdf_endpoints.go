package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lorewright/internal/model"
	"lorewright/internal/pdf"
	"lorewright/internal/vectorstore"
)

func (h *Handler) getCharacterPDF(c *gin.Context) {
	doc, err := h.store.GetByID(c.Request.Context(), vectorstore.CollectionCharacters, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	character, err := decodeBody[model.Character](doc)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	data, err := pdf.CharacterSheet(character)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	servePDF(c, fmt.Sprintf("character_%s.pdf", character.ID), data)
}

func (h *Handler) getWorldPDF(c *gin.Context) {
	doc, err := h.store.GetByID(c.Request.Context(), vectorstore.CollectionWorlds, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	world, err := decodeBody[model.World](doc)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	data, err := pdf.WorldSheet(world)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	servePDF(c, fmt.Sprintf("world_%s.pdf", world.ID), data)
}

func servePDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
