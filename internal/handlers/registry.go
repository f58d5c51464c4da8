package handlers

import (
	"talentia_backend/internal/services"
	"talentia_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Privacy      *PrivacyHandler
	Search       *SearchHandler
	FacultyView  *FacultyViewHandler
	Contact      *ContactHandler
	Favorite     *FavoriteHandler
	Document     *DocumentHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.AuthService),
		Profile:      NewProfileHandler(base, sc.ProfileService),
		Privacy:      NewPrivacyHandler(base, sc.VisibilityService),
		Search:       NewSearchHandler(base, sc.SearchService),
		FacultyView:  NewFacultyViewHandler(base, sc.VisibilityService),
		Contact:      NewContactHandler(base, sc.ContactService),
		Favorite:     NewFavoriteHandler(base, sc.FavoriteService),
		Document:     NewDocumentHandler(base, sc.DocumentService),
		Notification: NewNotificationHandler(base, sc.NotificationService),
		Admin:        NewAdminHandler(base, sc.AdminService),
	}
}
