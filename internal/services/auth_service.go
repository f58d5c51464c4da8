package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentia_backend/internal/auth"
	"talentia_backend/internal/email"
	"talentia_backend/internal/logger"
	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	VerifyEmail(db *gorm.DB, token string) error
	RequestPasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo        repositories.UserRepository
	facultyRepo     repositories.FacultyRepository
	institutionRepo repositories.InstitutionRepository
	emailProvider   email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	facultyRepo repositories.FacultyRepository,
	institutionRepo repositories.InstitutionRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		facultyRepo:     facultyRepo,
		institutionRepo: institutionRepo,
		emailProvider:   emailProvider,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	if req.Role != models.UserRoleFaculty && req.Role != models.UserRoleInstitution {
		return apperrors.ErrInvalidUserRole
	}

	if req.Role == models.UserRoleFaculty && req.FullName == "" {
		return apperrors.ValidationError("full_name is required for faculty accounts")
	}
	if req.Role == models.UserRoleInstitution && req.InstitutionName == "" {
		return apperrors.ValidationError("institution_name is required for institution accounts")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verificationToken := uuid.NewString()

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Role:              req.Role,
		Status:            models.UserStatusPending,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(tx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	// The role profile is created in the same transaction; a user row
	// without its profile must never be observable.
	switch req.Role {
	case models.UserRoleFaculty:
		profile := &models.FacultyProfile{
			UserID:     user.ID,
			FullName:   req.FullName,
			Country:    req.Country,
			Visibility: models.VisibilityPublic,
		}
		if err := s.facultyRepo.Create(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
	case models.UserRoleInstitution:
		institution := &models.Institution{
			UserID:  user.ID,
			Name:    req.InstitutionName,
			Country: req.Country,
			Status:  models.InstitutionStatusTrial,
		}
		if err := s.institutionRepo.Create(tx, institution); err != nil {
			return apperrors.InternalError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	// Best-effort mail; registration already succeeded.
	s.sendWelcomeEmail(user, req)
	s.sendVerificationEmail(user.Email, verificationToken)

	return nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended || user.Status == models.UserStatusBanned {
		return nil, apperrors.ErrAccountSuspended
	}

	return s.issueTokens(db, user)
}

func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(db, refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(db, refreshToken)
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Rotate: the old token dies with the new issue.
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidVerificationToken
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.VerifyUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Do not reveal whether the address is registered.
			return nil
		}
		return apperrors.InternalError(err)
	}

	resetToken := uuid.NewString()
	exp := time.Now().Add(time.Hour)
	user.ResetToken = resetToken
	user.ResetTokenExp = &exp

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplatePasswordReset,
			email.TemplateData{"Token": resetToken},
			&email.Email{To: []string{user.Email}, Subject: "Reset your Talentia password"})
		if err != nil {
			logger.WithError(err).Warn("failed to send password reset email")
		}
	}()

	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	// Invalidate every session after a password change.
	if err := s.userRepo.DeleteUserRefreshTokens(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User: dto.UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Role:       user.Role,
			Status:     user.Status,
			IsVerified: user.IsVerified,
			CreatedAt:  user.CreatedAt,
		},
	}, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User, req *dto.RegisterRequest) {
	templateName := email.TemplateWelcomeFaculty
	name := req.FullName
	if user.Role == models.UserRoleInstitution {
		templateName = email.TemplateWelcomeInstitution
		name = req.InstitutionName
	}

	go func() {
		err := s.emailProvider.SendWithTemplate(templateName,
			email.TemplateData{"Name": name},
			&email.Email{To: []string{user.Email}, Subject: "Welcome to Talentia"})
		if err != nil {
			logger.WithError(err).Warn("failed to send welcome email")
		}
	}()
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplateVerification,
			email.TemplateData{"Token": token},
			&email.Email{To: []string{to}, Subject: "Verify your Talentia account"})
		if err != nil {
			logger.WithError(err).Warn("failed to send verification email")
		}
	}()
}
