package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentia_backend/internal/middleware"
	"talentia_backend/internal/models"
	"talentia_backend/internal/services"
	"talentia_backend/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	contacts.Use(middleware.AuthMiddleware())
	contacts.Use(middleware.RequireRoles(models.UserRoleInstitution))
	{
		contacts.POST("", h.CreateContact)
		contacts.GET("", h.ListSent)
	}

	requests := rg.Group("/faculty/requests")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.RequireRoles(models.UserRoleFaculty))
	{
		requests.GET("", h.ListReceived)
		requests.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	contact, err := h.contactService.CreateContact(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) ListSent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	contacts, err := h.contactService.ListForInstitution(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *ContactHandler) ListReceived(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	contacts, err := h.contactService.ListForFaculty(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateContactStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	contact, err := h.contactService.UpdateStatus(db, userID, c.Param("id"), models.ContactStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}
