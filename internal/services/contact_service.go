package services

import (
	"gorm.io/gorm"

	"talentia_backend/internal/algorithms"
	"talentia_backend/internal/email"
	"talentia_backend/internal/logger"
	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type ContactService interface {
	CreateContact(db *gorm.DB, institutionUserID string, req *dto.CreateContactRequest) (*dto.ContactDTO, error)
	ListForFaculty(db *gorm.DB, facultyUserID string) ([]dto.ContactDTO, error)
	ListForInstitution(db *gorm.DB, institutionUserID string) ([]dto.ContactDTO, error)
	UpdateStatus(db *gorm.DB, facultyUserID, contactID string, status models.ContactStatus) (*dto.ContactDTO, error)
}

type ContactServiceImpl struct {
	contactRepo       repositories.ContactRepository
	facultyRepo       repositories.FacultyRepository
	institutionRepo   repositories.InstitutionRepository
	userRepo          repositories.UserRepository
	notificationRepo  repositories.NotificationRepository
	visibilityService VisibilityService
	emailProvider     email.Provider
}

func NewContactService(
	contactRepo repositories.ContactRepository,
	facultyRepo repositories.FacultyRepository,
	institutionRepo repositories.InstitutionRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	visibilityService VisibilityService,
	emailProvider email.Provider,
) ContactService {
	return &ContactServiceImpl{
		contactRepo:       contactRepo,
		facultyRepo:       facultyRepo,
		institutionRepo:   institutionRepo,
		userRepo:          userRepo,
		notificationRepo:  notificationRepo,
		visibilityService: visibilityService,
		emailProvider:     emailProvider,
	}
}

func (s *ContactServiceImpl) CreateContact(db *gorm.DB, institutionUserID string, req *dto.CreateContactRequest) (*dto.ContactDTO, error) {
	institution, err := s.institutionRepo.FindByUserID(db, institutionUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInvalidUserRole
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.facultyRepo.FindByID(db, req.FacultyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotVisible
		}
		return nil, apperrors.InternalError(err)
	}

	// Contacting requires the same access as viewing: a profile the
	// institution cannot see cannot be contacted either.
	viewer := &algorithms.Viewer{
		UserID:        institutionUserID,
		Role:          models.UserRoleInstitution,
		InstitutionID: institution.ID,
	}
	decision, err := s.visibilityService.Resolve(db, profile, viewer, req.InvitationToken)
	if err != nil {
		return nil, err
	}
	if !decision.Visible {
		return nil, apperrors.ErrProfileNotVisible
	}

	contact := &models.Contact{
		FacultyID:     profile.ID,
		InstitutionID: institution.ID,
		Subject:       req.Subject,
		Modality:      req.Modality,
		Dates:         req.Dates,
		Message:       req.Message,
		Status:        models.ContactStatusSent,
	}
	if err := s.contactRepo.Create(db, contact); err != nil {
		return nil, apperrors.InternalError(err)
	}
	contact.Institution = institution

	// Notification and email are best-effort; the contact row is the
	// source of truth and has already been written.
	if err := s.notificationRepo.CreateContactNotification(db, profile.UserID, contact.ID, institution.ID, institution.Name); err != nil {
		logger.WithError(err).Warn("failed to create contact notification")
	}
	s.sendContactEmail(db, profile, institution, contact)

	result := dto.NewContactDTO(contact)
	return &result, nil
}

func (s *ContactServiceImpl) ListForFaculty(db *gorm.DB, facultyUserID string) ([]dto.ContactDTO, error) {
	profile, err := s.facultyRepo.FindByUserID(db, facultyUserID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	contacts, err := s.contactRepo.FindByFacultyID(db, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toContactDTOs(contacts), nil
}

func (s *ContactServiceImpl) ListForInstitution(db *gorm.DB, institutionUserID string) ([]dto.ContactDTO, error) {
	institution, err := s.institutionRepo.FindByUserID(db, institutionUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInvalidUserRole
		}
		return nil, apperrors.InternalError(err)
	}

	contacts, err := s.contactRepo.FindByInstitutionID(db, institution.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toContactDTOs(contacts), nil
}

func (s *ContactServiceImpl) UpdateStatus(db *gorm.DB, facultyUserID, contactID string, status models.ContactStatus) (*dto.ContactDTO, error) {
	if status != models.ContactStatusReplied && status != models.ContactStatusArchived {
		return nil, apperrors.ErrInvalidStatus("contact", "Status must be replied or archived")
	}

	profile, err := s.facultyRepo.FindByUserID(db, facultyUserID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	contact, err := s.contactRepo.FindByID(db, contactID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if contact.FacultyID != profile.ID {
		return nil, apperrors.ErrNotFound(repositories.ErrContactNotFound)
	}

	// sent -> replied|archived, both terminal.
	if contact.IsClosed() {
		return nil, apperrors.ErrContactClosed
	}

	if err := s.contactRepo.UpdateStatus(db, contactID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	contact.Status = status

	result := dto.NewContactDTO(contact)
	return &result, nil
}

func (s *ContactServiceImpl) sendContactEmail(db *gorm.DB, profile *models.FacultyProfile, institution *models.Institution, contact *models.Contact) {
	user, err := s.userRepo.FindByID(db, profile.UserID)
	if err != nil {
		logger.WithError(err).Warn("failed to load faculty user for contact email")
		return
	}

	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplateContactRequest,
			email.TemplateData{
				"InstitutionName": institution.Name,
				"Subject":         contact.Subject,
				"Message":         contact.Message,
			},
			&email.Email{To: []string{user.Email}, Subject: "New contact request on Talentia"})
		if err != nil {
			logger.WithError(err).Warn("failed to send contact email")
		}
	}()
}

func toContactDTOs(contacts []models.Contact) []dto.ContactDTO {
	result := make([]dto.ContactDTO, 0, len(contacts))
	for i := range contacts {
		result = append(result, dto.NewContactDTO(&contacts[i]))
	}
	return result
}
