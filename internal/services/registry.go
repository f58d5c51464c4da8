package services

import (
	"talentia_backend/internal/email"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	VisibilityService   VisibilityService
	SearchService       SearchService
	ContactService      ContactService
	FavoriteService     FavoriteService
	DocumentService     DocumentService
	NotificationService NotificationService
	AdminService        AdminService
	EmailProvider       email.Provider
}

// NewServiceContainer wires repositories, storage and email into the
// service layer.
func NewServiceContainer(emailProvider email.Provider, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	facultyRepo := repositories.NewFacultyRepository()
	expertiseRepo := repositories.NewExpertiseRepository()
	institutionRepo := repositories.NewInstitutionRepository()
	ruleRepo := repositories.NewVisibilityRuleRepository()
	invitationRepo := repositories.NewInvitationRepository()
	contactRepo := repositories.NewContactRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	notificationRepo := repositories.NewNotificationRepository()
	documentRepo := repositories.NewDocumentRepository()

	visibilityService := NewVisibilityService(facultyRepo, ruleRepo, invitationRepo, institutionRepo)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, facultyRepo, institutionRepo, emailProvider),
		ProfileService:      NewProfileService(facultyRepo, expertiseRepo, documentRepo),
		VisibilityService:   visibilityService,
		SearchService:       NewSearchService(facultyRepo, ruleRepo, institutionRepo),
		ContactService:      NewContactService(contactRepo, facultyRepo, institutionRepo, userRepo, notificationRepo, visibilityService, emailProvider),
		FavoriteService:     NewFavoriteService(favoriteRepo, facultyRepo, institutionRepo),
		DocumentService:     NewDocumentService(documentRepo, facultyRepo, expertiseRepo, store),
		NotificationService: NewNotificationService(notificationRepo),
		AdminService:        NewAdminService(userRepo, facultyRepo, institutionRepo),
		EmailProvider:       emailProvider,
	}
}
