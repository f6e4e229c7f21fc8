// Package handler exposes the HTTP surface: entity generation and retrieval,
// user signup and signin, PDF sheets, and generated image assets.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lorewright/internal/generator"
	"lorewright/internal/model"
	"lorewright/internal/service"
)

// CharacterGenerator produces characters from creation payloads.
type CharacterGenerator interface {
	Generate(ctx context.Context, creation model.CharacterCreation) (model.Character, error)
}

// WorldGenerator produces worlds from creation payloads.
type WorldGenerator interface {
	Generate(ctx context.Context, creation model.WorldCreation) (model.World, error)
}

// CampaignGenerator produces campaigns from creation payloads.
type CampaignGenerator interface {
	Generate(ctx context.Context, creation model.CampaignCreation) (model.Campaign, error)
}

type Handler struct {
	authService service.AuthService
	characters  CharacterGenerator
	worlds      WorldGenerator
	campaigns   CampaignGenerator
	store       generator.Store
	assetDir    string
	logger      *zap.Logger
}

func NewHandler(
	authService service.AuthService,
	characters CharacterGenerator,
	worlds WorldGenerator,
	campaigns CampaignGenerator,
	store generator.Store,
	assetDir string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService: authService,
		characters:  characters,
		worlds:      worlds,
		campaigns:   campaigns,
		store:       store,
		assetDir:    assetDir,
		logger:      logger.Named("Handler"),
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/users", h.signup)
	router.POST("/signin", h.signin)

	protected := router.Group("/")
	protected.Use(h.AuthMiddleware())
	{
		protected.GET("/me", h.getMe)
		protected.POST("/signout", h.signout)
	}

	characterGroup := router.Group("/characters")
	{
		characterGroup.POST("", h.createCharacter)
		characterGroup.GET("/search", h.searchCharacters)
		characterGroup.GET("/:id", h.getCharacter)
	}

	worldGroup := router.Group("/worlds")
	{
		worldGroup.POST("", h.createWorld)
		worldGroup.GET("", h.listWorlds)
		worldGroup.GET("/search", h.searchWorlds)
		worldGroup.GET("/:id", h.getWorld)
	}

	campaignGroup := router.Group("/campaigns")
	{
		campaignGroup.POST("", h.createCampaign)
		campaignGroup.GET("/:id", h.getCampaign)
	}

	pdfGroup := router.Group("/pdf")
	{
		pdfGroup.GET("/character/:id", h.getCharacterPDF)
		pdfGroup.GET("/world/:id", h.getWorldPDF)
	}

	router.GET("/assets/:filename", h.getAsset)
}
