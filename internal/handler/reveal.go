package handler

import (
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/gin-gonic/gin"
)

// RevealRequest represents a request to show a path in the system file
// manager.
type RevealRequest struct {
	Path string `json:"path" binding:"required"`
}

// Reveal opens the system file manager at the given path. For files the
// containing directory is opened.
func Reveal(c *gin.Context) {
	var req RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "path is required",
		})
		return
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "path does not exist: " + req.Path,
		})
		return
	}

	target := req.Path
	if !info.IsDir() {
		target = filepath.Dir(req.Path)
	}

	if err := openFileManager(target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to open file manager: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "revealed"})
}

func openFileManager(dir string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "explorer"
		args = []string{dir}
	case "darwin":
		cmd = "open"
		args = []string{dir}
	default: // linux, etc.
		cmd = "xdg-open"
		args = []string{dir}
	}

	return exec.Command(cmd, args...).Start()
}
