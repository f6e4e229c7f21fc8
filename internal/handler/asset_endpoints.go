package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"lorewright/internal/model"
)

// getAsset serves a generated image from the asset directory. The filename is
// restricted to a bare name so the route cannot escape the directory.
func (h *Handler) getAsset(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		badRequest(c, "Invalid asset filename")
		return
	}

	path := filepath.Join(h.assetDir, filename)
	if _, err := os.Stat(path); err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, model.ErrorResponse{
			Error:      "Asset not found",
			StatusCode: http.StatusNotFound,
		})
		return
	}
	c.File(path)
}
