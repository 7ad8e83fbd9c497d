package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stormlightlabs/inkfinite/internal/document"
)

// PreviewHandler renders documents to HTML for the shell's preview pane.
type PreviewHandler struct {
	renderer *document.Renderer
}

// NewPreviewHandler creates a new preview handler.
func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{renderer: document.NewRenderer()}
}

// GetPreview returns the rendered HTML, title, and outline for the
// document at the path given in the "path" query parameter.
func (h *PreviewHandler) GetPreview(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "path is required",
		})
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "document not found: " + path,
		})
		return
	}
	if info.IsDir() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "path is a directory: " + path,
		})
		return
	}

	doc, err := document.Load(path)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.renderer.Render(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to render document: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, preview)
}
