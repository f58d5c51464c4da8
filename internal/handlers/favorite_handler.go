package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentia_backend/internal/middleware"
	"talentia_backend/internal/models"
	"talentia_backend/internal/services"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	favorites.Use(middleware.RequireRoles(models.UserRoleInstitution))
	{
		favorites.POST("/:facultyID/toggle", h.Toggle)
		favorites.GET("", h.List)
	}
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	resp, err := h.favoriteService.Toggle(db, userID, c.Param("facultyID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	favorites, err := h.favoriteService.List(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
