package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentia_backend/internal/middleware"
	"talentia_backend/internal/models"
	"talentia_backend/internal/services"
	"talentia_backend/internal/services/dto"
)

// PrivacyHandler exposes the faculty-side privacy controls: the
// visibility mode, block rules and invitations.
type PrivacyHandler struct {
	*BaseHandler
	visibilityService services.VisibilityService
}

func NewPrivacyHandler(base *BaseHandler, visibilityService services.VisibilityService) *PrivacyHandler {
	return &PrivacyHandler{
		BaseHandler:       base,
		visibilityService: visibilityService,
	}
}

func (h *PrivacyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	privacy := rg.Group("/faculty/privacy")
	privacy.Use(middleware.AuthMiddleware())
	privacy.Use(middleware.RequireRoles(models.UserRoleFaculty))
	{
		privacy.GET("/visibility", h.GetVisibility)
		privacy.PUT("/visibility", h.UpdateVisibility)

		privacy.GET("/blocks", h.ListBlocks)
		privacy.POST("/blocks", h.CreateBlock)
		privacy.DELETE("/blocks/:id", h.DeleteBlock)

		privacy.GET("/invitations", h.ListInvitations)
		privacy.POST("/invitations", h.CreateInvitation)
		privacy.DELETE("/invitations/:id", h.RevokeInvitation)
	}
}

func (h *PrivacyHandler) GetVisibility(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	resp, err := h.visibilityService.GetVisibility(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PrivacyHandler) UpdateVisibility(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVisibilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.visibilityService.UpdateVisibility(db, userID, models.VisibilityMode(req.Visibility))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PrivacyHandler) ListBlocks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	blocks, err := h.visibilityService.ListBlocks(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

func (h *PrivacyHandler) CreateBlock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBlockRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	block, err := h.visibilityService.CreateBlock(db, userID, req.InstitutionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *PrivacyHandler) DeleteBlock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.visibilityService.DeleteBlock(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Block removed"})
}

func (h *PrivacyHandler) ListInvitations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	invitations, err := h.visibilityService.ListInvitations(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

func (h *PrivacyHandler) CreateInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	invitation, err := h.visibilityService.CreateInvitation(db, userID, req.InstitutionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

func (h *PrivacyHandler) RevokeInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.visibilityService.RevokeInvitation(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation revoked"})
}
