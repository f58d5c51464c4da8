package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentia_backend/internal/middleware"
	"talentia_backend/internal/models"
	"talentia_backend/internal/services"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/stats", h.GetStats)
		admin.PUT("/faculty/:id/verify", h.VerifyFaculty)
		admin.PUT("/institutions/:id/verify", h.VerifyInstitution)
	}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.adminService.GetStats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) VerifyFaculty(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.adminService.VerifyFaculty(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Faculty verified"})
}

func (h *AdminHandler) VerifyInstitution(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.adminService.VerifyInstitution(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Institution verified"})
}
