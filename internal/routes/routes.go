package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentia_backend/internal/handlers"
)

// RegisterRoutes mounts every handler group under /api/v1. Auth and role
// requirements live on the handler groups themselves.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
		appHandlers.Privacy.RegisterRoutes(api)
		appHandlers.Search.RegisterRoutes(api)
		appHandlers.FacultyView.RegisterRoutes(api)
		appHandlers.Contact.RegisterRoutes(api)
		appHandlers.Favorite.RegisterRoutes(api)
		appHandlers.Document.RegisterRoutes(api)
		appHandlers.Notification.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
	}
}
