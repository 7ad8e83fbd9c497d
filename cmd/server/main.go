// Package main is the entry point for the Inkfinite backend server.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stormlightlabs/inkfinite/internal/config"
	"github.com/stormlightlabs/inkfinite/internal/handler"
	"github.com/stormlightlabs/inkfinite/internal/picker"
	"github.com/stormlightlabs/inkfinite/internal/watcher"
	"github.com/stormlightlabs/inkfinite/internal/workspace"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Inkfinite backend")
	log.Printf("Config file: %s", cfg.GetConfigFilePath())
	if cfg.Workspace != "" {
		log.Printf("Workspace: %s", cfg.Workspace)
	} else {
		log.Printf("No workspace selected yet")
	}
	log.Printf("Listening at: http://127.0.0.1:%d", cfg.Port)

	// Create handlers
	svc := workspace.NewService(picker.New())
	wsHandler := handler.NewWSHandler(func() string { return cfg.Workspace })
	workspaceHandler := handler.NewWorkspaceHandler(cfg, svc)
	previewHandler := handler.NewPreviewHandler()

	// Setup workspace watcher if enabled
	if cfg.Watch {
		w, err := watcher.New()
		if err != nil {
			log.Printf("Warning: failed to create workspace watcher: %v", err)
		} else {
			w.OnChange(wsHandler.OnWorkspaceChange)
			if cfg.Workspace != "" {
				if err := w.SetRoot(cfg.Workspace); err != nil {
					log.Printf("Warning: cannot watch workspace %s: %v", cfg.Workspace, err)
				}
			}
			workspaceHandler.OnWorkspacePicked(func(path string) {
				if err := w.SetRoot(path); err != nil {
					log.Printf("Warning: cannot watch workspace %s: %v", path, err)
				}
			})
			w.Start()
			defer func() { _ = w.Stop() }()
			log.Printf("Workspace watcher enabled")
		}
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// API routes
	api := r.Group("/api")
	{
		api.GET("/workspace/list", workspaceHandler.List)
		api.POST("/workspace/rename", workspaceHandler.Rename)
		api.POST("/workspace/delete", workspaceHandler.Delete)
		api.POST("/workspace/pick", workspaceHandler.Pick)
		api.POST("/workspace/reveal", handler.Reveal)

		api.GET("/preview", previewHandler.GetPreview)
		api.GET("/ws", wsHandler.HandleWS)
	}

	// Start server; the shell is the only expected client
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
