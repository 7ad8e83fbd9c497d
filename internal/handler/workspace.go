// Package handler provides HTTP handlers for the backend API consumed
// by the Inkfinite desktop shell.
package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stormlightlabs/inkfinite/internal/config"
	"github.com/stormlightlabs/inkfinite/internal/workspace"
)

// WorkspaceHandler exposes the workspace file operations.
type WorkspaceHandler struct {
	cfg *config.Config
	svc *workspace.Service

	// onWorkspacePicked is called after a new workspace directory is
	// chosen and persisted, e.g. to repoint the watcher.
	onWorkspacePicked func(path string)
}

// NewWorkspaceHandler creates a new workspace handler.
func NewWorkspaceHandler(cfg *config.Config, svc *workspace.Service) *WorkspaceHandler {
	return &WorkspaceHandler{cfg: cfg, svc: svc}
}

// OnWorkspacePicked registers a callback invoked with each newly picked
// workspace path.
func (h *WorkspaceHandler) OnWorkspacePicked(cb func(path string)) {
	h.onWorkspacePicked = cb
}

// statusFor maps workspace errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, workspace.ErrNotADirectory), errors.Is(err, workspace.ErrIsADirectory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// List returns the entries of a directory, filtered and sorted.
func (h *WorkspaceHandler) List(c *gin.Context) {
	dir := c.Query("dir")
	if dir == "" {
		dir = h.cfg.Workspace
	}
	if dir == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "no workspace selected",
		})
		return
	}

	pattern := c.Query("pattern")
	if pattern == "" {
		pattern = h.cfg.Pattern
	}

	entries, err := h.svc.List(dir, pattern)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// RenameRequest represents a request to rename a file.
type RenameRequest struct {
	OldPath string `json:"oldPath" binding:"required"`
	NewPath string `json:"newPath" binding:"required"`
}

// Rename moves a file to a new path.
func (h *WorkspaceHandler) Rename(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "oldPath and newPath are required",
		})
		return
	}

	if err := h.svc.Rename(req.OldPath, req.NewPath); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file renamed"})
}

// DeleteRequest represents a request to delete a file.
type DeleteRequest struct {
	Path string `json:"path" binding:"required"`
}

// Delete removes a single file. Directories are rejected.
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "path is required",
		})
		return
	}

	if err := h.svc.Delete(req.Path); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// Pick opens the native folder dialog and returns the chosen workspace
// path, or null if the user cancelled. The handler blocks until the
// dialog closes; other requests keep being served meanwhile.
func (h *WorkspaceHandler) Pick(c *gin.Context) {
	path := h.svc.PickDirectory()
	if path == "" {
		c.JSON(http.StatusOK, gin.H{"path": nil})
		return
	}

	if err := h.cfg.SetWorkspace(path); err != nil {
		log.Printf("Warning: failed to save workspace to config: %v", err)
	}
	if h.onWorkspacePicked != nil {
		h.onWorkspacePicked(path)
	}

	c.JSON(http.StatusOK, gin.H{"path": path})
}
