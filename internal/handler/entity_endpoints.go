package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lorewright/internal/model"
	"lorewright/internal/vectorstore"
)

const defaultSearchTop = 2

func (h *Handler) createCharacter(c *gin.Context) {
	var req model.CharacterCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	character, err := h.characters.Generate(c.Request.Context(), req)
	if err != nil {
		generationsTotal.WithLabelValues("character", "failure").Inc()
		handleServiceError(c, err)
		return
	}

	generationsTotal.WithLabelValues("character", "success").Inc()
	c.JSON(http.StatusOK, character)
}

func (h *Handler) getCharacter(c *gin.Context) {
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
	c.JSON(http.StatusOK, character)
}

func (h *Handler) searchCharacters(c *gin.Context) {
	query, top, ok := searchParams(c)
	if !ok {
		return
	}

	matches, err := h.store.SearchSimilar(c.Request.Context(), vectorstore.CollectionCharacters, query, top)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	characters, err := decodeMatches[model.Character](matches)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, characters)
}

func (h *Handler) createWorld(c *gin.Context) {
	var req model.WorldCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	world, err := h.worlds.Generate(c.Request.Context(), req)
	if err != nil {
		generationsTotal.WithLabelValues("world", "failure").Inc()
		handleServiceError(c, err)
		return
	}

	generationsTotal.WithLabelValues("world", "success").Inc()
	c.JSON(http.StatusOK, world)
}

func (h *Handler) getWorld(c *gin.Context) {
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
	c.JSON(http.StatusOK, world)
}

func (h *Handler) searchWorlds(c *gin.Context) {
	query, top, ok := searchParams(c)
	if !ok {
		return
	}

	matches, err := h.store.SearchSimilar(c.Request.Context(), vectorstore.CollectionWorlds, query, top)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	worlds, err := decodeMatches[model.World](matches)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, worlds)
}

func (h *Handler) listWorlds(c *gin.Context) {
	docs, err := h.store.GetAllWorlds(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	worlds := make([]model.World, 0, len(docs))
	for _, doc := range docs {
		world, err := decodeBody[model.World](doc)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		worlds = append(worlds, world)
	}
	c.JSON(http.StatusOK, worlds)
}

func (h *Handler) createCampaign(c *gin.Context) {
	var req model.CampaignCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	campaign, err := h.campaigns.Generate(c.Request.Context(), req)
	if err != nil {
		generationsTotal.WithLabelValues("campaign", "failure").Inc()
		handleServiceError(c, err)
		return
	}

	generationsTotal.WithLabelValues("campaign", "success").Inc()
	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) getCampaign(c *gin.Context) {
	doc, err := h.store.GetByID(c.Request.Context(), vectorstore.CollectionCampaigns, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	campaign, err := decodeBody[model.Campaign](doc)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// searchParams reads the query and top parameters shared by the search
// endpoints. Reports its own error response when the input is invalid.
func searchParams(c *gin.Context) (string, int, bool) {
	query := c.Query("query")
	if query == "" {
		badRequest(c, "Missing required query parameter: query")
		return "", 0, false
	}

	top := defaultSearchTop
	if raw := c.Query("top"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(c, "Parameter top must be a positive integer")
			return "", 0, false
		}
		top = parsed
	}
	return query, top, true
}

// decodeBody deserializes a stored document body back into its entity type.
func decodeBody[T any](doc vectorstore.Document) (T, error) {
	var entity T
	if err := json.Unmarshal([]byte(doc.Body), &entity); err != nil {
		zap.L().Error("Corrupt document body in store", zap.String("id", doc.ID), zap.Error(err))
		return entity, fmt.Errorf("decode stored document %s: %w", doc.ID, err)
	}
	return entity, nil
}

func decodeMatches[T any](matches []vectorstore.Match) ([]T, error) {
	entities := make([]T, 0, len(matches))
	for _, m := range matches {
		entity, err := decodeBody[T](m.Document)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
