package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentia_backend/internal/middleware"
	"talentia_backend/internal/services"
)

// FacultyViewHandler serves faculty profiles to outside viewers. What the
// caller sees is decided by the visibility engine, never by the route.
type FacultyViewHandler struct {
	*BaseHandler
	visibilityService services.VisibilityService
}

func NewFacultyViewHandler(base *BaseHandler, visibilityService services.VisibilityService) *FacultyViewHandler {
	return &FacultyViewHandler{
		BaseHandler:       base,
		visibilityService: visibilityService,
	}
}

func (h *FacultyViewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	directory := rg.Group("/directory")
	directory.Use(middleware.OptionalAuthMiddleware())
	{
		directory.GET("/:facultyID", h.ViewProfile)
	}
}

// ViewProfile renders one profile for the current viewer. Anonymous
// callers get the limited card on public profiles; institutions may get
// full access, an invitation token widens it further. A denial is a 404.
func (h *FacultyViewHandler) ViewProfile(c *gin.Context) {
	db := h.GetDB(c)

	viewer, err := h.visibilityService.BuildViewer(db, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	profile, err := h.visibilityService.ViewProfile(db, c.Param("facultyID"), viewer, c.Query("invitation_token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
