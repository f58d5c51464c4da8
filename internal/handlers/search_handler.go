package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentia_backend/internal/middleware"
	"talentia_backend/internal/models"
	"talentia_backend/internal/services"
	"talentia_backend/internal/services/dto"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	institutions := rg.Group("/institutions")
	institutions.Use(middleware.AuthMiddleware())
	institutions.Use(middleware.RequireRoles(models.UserRoleInstitution))
	{
		institutions.GET("/search", h.SearchFaculty)
	}
}

func (h *SearchHandler) SearchFaculty(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.SearchFacultyCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.searchService.SearchFaculty(db, &criteria, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
