package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Godswillconcept/expo-ecommerce/config"
	healthController "github.com/Godswillconcept/expo-ecommerce/controllers/health"
	"github.com/Godswillconcept/expo-ecommerce/media"
	"github.com/Godswillconcept/expo-ecommerce/store"
	"github.com/Godswillconcept/expo-ecommerce/webhook"
)

// Deps carries the explicitly constructed collaborators every route group
// needs. Nothing here is global: main builds one Deps and passes it down.
type Deps struct {
	Cfg        *config.Config
	DB         *gorm.DB
	Users      *store.UserStore
	Uploads    *media.Uploader
	Dispatcher *webhook.Dispatcher
	Feed       *webhook.Feed
}

// SetupRoutes is the single entry-point that wires up the API surface.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")
	{
		api.GET("/health", healthController.Check(deps.Cfg.Env))

		// Signed lifecycle events from the identity provider.
		api.POST("/webhooks/clerk", webhook.Handler(deps.Cfg.ClerkWebhookSecret, deps.Dispatcher))
	}

	SetupAdminRoutes(r, deps)

	// In production the pre-built admin SPA is served from its dist dir,
	// with a catch-all fallback to index.html for client-side routing.
	// API paths always answer JSON, never the fallback document.
	if deps.Cfg.IsProduction() {
		r.Static("/assets", filepath.Join(deps.Cfg.AdminDistDir, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(deps.Cfg.AdminDistDir, "favicon.ico"))
	}
	r.Static("/uploads", deps.Cfg.UploadsDir)

	r.NoRoute(func(c *gin.Context) {
		if deps.Cfg.IsProduction() && !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.File(filepath.Join(deps.Cfg.AdminDistDir, "index.html"))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not Found",
			"path":    c.Request.URL.Path,
		})
	})
}
