package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentia_backend/internal/algorithms"
	"talentia_backend/internal/config"
	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type VisibilityService interface {
	// BuildViewer resolves an authenticated identity into a viewer, looking
	// up the institution record for institution users. An empty userID
	// yields a nil (anonymous) viewer.
	BuildViewer(db *gorm.DB, userID string, role models.UserRole) (*algorithms.Viewer, error)

	// Resolve loads block and invitation state for one profile/viewer pair
	// and runs the rule engine over it.
	Resolve(db *gorm.DB, profile *models.FacultyProfile, viewer *algorithms.Viewer, invitationToken string) (algorithms.Decision, error)

	// ViewProfile renders a profile for the viewer, or the not-found error
	// when the engine denies. Returns *dto.FacultyProfileResponse for full
	// access and *dto.PublicFacultyProfile for limited.
	ViewProfile(db *gorm.DB, facultyID string, viewer *algorithms.Viewer, invitationToken string) (interface{}, error)

	// Privacy operations, keyed by the owning faculty user.
	GetVisibility(db *gorm.DB, userID string) (*dto.VisibilityResponse, error)
	UpdateVisibility(db *gorm.DB, userID string, mode models.VisibilityMode) (*dto.VisibilityResponse, error)
	ListBlocks(db *gorm.DB, userID string) ([]dto.BlockDTO, error)
	CreateBlock(db *gorm.DB, userID, institutionID string) (*dto.BlockDTO, error)
	DeleteBlock(db *gorm.DB, userID, ruleID string) error
	CreateInvitation(db *gorm.DB, userID, institutionID string) (*dto.InvitationDTO, error)
	ListInvitations(db *gorm.DB, userID string) ([]dto.InvitationDTO, error)
	RevokeInvitation(db *gorm.DB, userID, invitationID string) error
}

type VisibilityServiceImpl struct {
	facultyRepo     repositories.FacultyRepository
	ruleRepo        repositories.VisibilityRuleRepository
	invitationRepo  repositories.InvitationRepository
	institutionRepo repositories.InstitutionRepository
}

func NewVisibilityService(
	facultyRepo repositories.FacultyRepository,
	ruleRepo repositories.VisibilityRuleRepository,
	invitationRepo repositories.InvitationRepository,
	institutionRepo repositories.InstitutionRepository,
) VisibilityService {
	return &VisibilityServiceImpl{
		facultyRepo:     facultyRepo,
		ruleRepo:        ruleRepo,
		invitationRepo:  invitationRepo,
		institutionRepo: institutionRepo,
	}
}

// BuildViewer turns an authenticated identity into a visibility viewer.
// For institution users the institution record is resolved so block rules
// can be applied; a nil userID yields an anonymous viewer.
func (s *VisibilityServiceImpl) BuildViewer(db *gorm.DB, userID string, role models.UserRole) (*algorithms.Viewer, error) {
	if userID == "" {
		return nil, nil
	}

	viewer := &algorithms.Viewer{
		UserID: userID,
		Role:   role,
	}

	if role == models.UserRoleInstitution {
		institution, err := s.institutionRepo.FindByUserID(db, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
				return viewer, nil
			}
			return nil, apperrors.InternalError(err)
		}
		viewer.InstitutionID = institution.ID
	}

	return viewer, nil
}

func (s *VisibilityServiceImpl) Resolve(db *gorm.DB, profile *models.FacultyProfile, viewer *algorithms.Viewer, invitationToken string) (algorithms.Decision, error) {
	var invitation *models.Invitation
	if invitationToken != "" {
		inv, err := s.invitationRepo.FindByToken(db, invitationToken)
		if err != nil && !apperrors.Is(err, repositories.ErrInvitationNotFound) {
			return algorithms.Decision{}, apperrors.InternalError(err)
		}
		// An unknown token is simply ignored; the engine then decides on
		// mode and blocks alone.
		invitation = inv
	}

	blocked := false
	if viewer != nil && viewer.Role == models.UserRoleInstitution && viewer.InstitutionID != "" {
		b, err := s.ruleRepo.IsBlocked(db, profile.ID, viewer.InstitutionID)
		if err != nil {
			return algorithms.Decision{}, apperrors.InternalError(err)
		}
		blocked = b
	}

	return algorithms.ResolveVisibility(profile, viewer, invitation, blocked, time.Now()), nil
}

func (s *VisibilityServiceImpl) ViewProfile(db *gorm.DB, facultyID string, viewer *algorithms.Viewer, invitationToken string) (interface{}, error) {
	profile, err := s.facultyRepo.FindByID(db, facultyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotVisible
		}
		return nil, apperrors.InternalError(err)
	}

	decision, err := s.Resolve(db, profile, viewer, invitationToken)
	if err != nil {
		return nil, err
	}
	if !decision.Visible {
		// Same shape as a missing profile: existence must not leak.
		return nil, apperrors.ErrProfileNotVisible
	}

	if viewer == nil || viewer.UserID != profile.UserID {
		// View counting is best-effort.
		_ = s.facultyRepo.IncrementProfileViews(db, profile.ID)
	}

	if decision.Level == models.AccessFull {
		return dto.NewFacultyProfileResponse(profile), nil
	}
	return dto.NewPublicFacultyProfile(profile), nil
}

func (s *VisibilityServiceImpl) GetVisibility(db *gorm.DB, userID string) (*dto.VisibilityResponse, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return &dto.VisibilityResponse{
		Visibility:     profile.Visibility,
		MembershipTier: profile.MembershipTier,
	}, nil
}

func (s *VisibilityServiceImpl) UpdateVisibility(db *gorm.DB, userID string, mode models.VisibilityMode) (*dto.VisibilityResponse, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	// Any mode may transition to any other; the change takes effect on the
	// next resolution since nothing is cached.
	if err := s.facultyRepo.UpdateVisibility(db, profile.ID, mode); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VisibilityResponse{
		Visibility:     mode,
		MembershipTier: profile.MembershipTier,
	}, nil
}

func (s *VisibilityServiceImpl) ListBlocks(db *gorm.DB, userID string) ([]dto.BlockDTO, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	rules, err := s.ruleRepo.FindByFacultyID(db, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	blocks := make([]dto.BlockDTO, 0, len(rules))
	for _, rule := range rules {
		block := dto.BlockDTO{
			ID:            rule.ID,
			InstitutionID: rule.InstitutionID,
			CreatedAt:     rule.CreatedAt,
		}
		if inst, err := s.institutionRepo.FindByID(db, rule.InstitutionID); err == nil {
			block.InstitutionName = inst.Name
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (s *VisibilityServiceImpl) CreateBlock(db *gorm.DB, userID, institutionID string) (*dto.BlockDTO, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	// Creating block rules is a professional-tier feature; removing them
	// works on any tier so a downgrade cannot trap stale rules.
	if profile.MembershipTier != models.TierProfessional {
		return nil, apperrors.ErrTierRequired
	}

	institution, err := s.institutionRepo.FindByID(db, institutionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	rule := &models.VisibilityRule{
		FacultyID:     profile.ID,
		InstitutionID: institution.ID,
		Rule:          "block",
	}
	if err := s.ruleRepo.Create(db, rule); err != nil {
		if apperrors.Is(err, repositories.ErrRuleAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "visibility", "Institution is already blocked")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.BlockDTO{
		ID:              rule.ID,
		InstitutionID:   institution.ID,
		InstitutionName: institution.Name,
		CreatedAt:       rule.CreatedAt,
	}, nil
}

func (s *VisibilityServiceImpl) DeleteBlock(db *gorm.DB, userID, ruleID string) error {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return handleProfileError(err)
	}

	rule, err := s.ruleRepo.FindByID(db, ruleID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRuleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if rule.FacultyID != profile.ID {
		return apperrors.ErrNotFound(repositories.ErrRuleNotFound)
	}

	if err := s.ruleRepo.Delete(db, ruleID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *VisibilityServiceImpl) CreateInvitation(db *gorm.DB, userID, institutionID string) (*dto.InvitationDTO, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	if _, err := s.institutionRepo.FindByID(db, institutionID); err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	ttl := time.Duration(config.GetConfig().Invitation.TTLDays) * 24 * time.Hour

	invitation := &models.Invitation{
		FacultyID:     profile.ID,
		InstitutionID: institutionID,
		Token:         uuid.NewString(),
		ExpiresAt:     time.Now().Add(ttl),
	}
	if err := s.invitationRepo.Create(db, invitation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewInvitationDTO(invitation, time.Now())
	return &result, nil
}

func (s *VisibilityServiceImpl) ListInvitations(db *gorm.DB, userID string) ([]dto.InvitationDTO, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	invitations, err := s.invitationRepo.FindByFacultyID(db, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	result := make([]dto.InvitationDTO, 0, len(invitations))
	for i := range invitations {
		result = append(result, dto.NewInvitationDTO(&invitations[i], now))
	}
	return result, nil
}

func (s *VisibilityServiceImpl) RevokeInvitation(db *gorm.DB, userID, invitationID string) error {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return handleProfileError(err)
	}

	invitation, err := s.invitationRepo.FindByID(db, invitationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvitationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if invitation.FacultyID != profile.ID {
		return apperrors.ErrNotFound(repositories.ErrInvitationNotFound)
	}

	if err := s.invitationRepo.Revoke(db, invitationID, time.Now()); err != nil {
		if apperrors.Is(err, repositories.ErrInvitationNotFound) {
			// Already revoked; revocation is idempotent in effect.
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}
