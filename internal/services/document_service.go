package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentia_backend/internal/algorithms"
	"talentia_backend/internal/config"
	"talentia_backend/internal/logger"
	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/internal/storage"
	"talentia_backend/pkg/apperrors"
)

const signedURLTTL = 15 * time.Minute

type DocumentService interface {
	Upload(db *gorm.DB, ctx context.Context, userID string, reader io.Reader, originalName, contentType string, size int64) (*dto.DocumentDTO, error)
	List(db *gorm.DB, ctx context.Context, userID string) ([]dto.DocumentDTO, error)
	Delete(db *gorm.DB, ctx context.Context, userID, documentID string) error
}

type DocumentServiceImpl struct {
	documentRepo  repositories.DocumentRepository
	facultyRepo   repositories.FacultyRepository
	expertiseRepo repositories.ExpertiseRepository
	store         storage.Storage
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	facultyRepo repositories.FacultyRepository,
	expertiseRepo repositories.ExpertiseRepository,
	store storage.Storage,
) DocumentService {
	return &DocumentServiceImpl{
		documentRepo:  documentRepo,
		facultyRepo:   facultyRepo,
		expertiseRepo: expertiseRepo,
		store:         store,
	}
}

func (s *DocumentServiceImpl) Upload(db *gorm.DB, ctx context.Context, userID string, reader io.Reader, originalName, contentType string, size int64) (*dto.DocumentDTO, error) {
	cfg := config.GetConfig()

	if size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !isAllowedType(contentType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidFileType
	}

	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	path := fmt.Sprintf("faculty/%s/cv/%s%s", profile.ID, uuid.NewString(), filepath.Ext(originalName))

	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	document := &models.FacultyDocument{
		FacultyID:       profile.ID,
		Kind:            "cv",
		Path:            path,
		OriginalName:    originalName,
		MimeType:        contentType,
		Size:            size,
		StorageProvider: cfg.Storage.Type,
	}
	if err := s.documentRepo.Create(db, document); err != nil {
		// The row is the source of truth; without it the file is orphaned
		// and should go too.
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.WithError(delErr).Warn("failed to remove orphaned document file")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.recomputeAfterDocumentChange(db, profile); err != nil {
		logger.WithError(err).Warn("failed to recompute completeness after upload")
	}

	result := s.toDocumentDTO(ctx, document)
	return &result, nil
}

func (s *DocumentServiceImpl) List(db *gorm.DB, ctx context.Context, userID string) ([]dto.DocumentDTO, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	documents, err := s.documentRepo.FindByFacultyID(db, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.DocumentDTO, 0, len(documents))
	for i := range documents {
		result = append(result, s.toDocumentDTO(ctx, &documents[i]))
	}
	return result, nil
}

func (s *DocumentServiceImpl) Delete(db *gorm.DB, ctx context.Context, userID, documentID string) error {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return handleProfileError(err)
	}

	document, err := s.documentRepo.FindByID(db, documentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if document.FacultyID != profile.ID {
		return apperrors.ErrNotFound(repositories.ErrDocumentNotFound)
	}

	if err := s.documentRepo.Delete(db, documentID); err != nil {
		return apperrors.InternalError(err)
	}

	// File removal is best-effort after the row is gone.
	if err := s.store.Delete(ctx, document.Path); err != nil {
		logger.WithError(err).Warn("failed to delete document file")
	}

	if err := s.recomputeAfterDocumentChange(db, profile); err != nil {
		logger.WithError(err).Warn("failed to recompute completeness after delete")
	}
	return nil
}

func (s *DocumentServiceImpl) recomputeAfterDocumentChange(db *gorm.DB, profile *models.FacultyProfile) error {
	expertiseCount, err := s.expertiseRepo.CountByFacultyID(db, profile.ID)
	if err != nil {
		return err
	}
	documentCount, err := s.documentRepo.CountByFacultyID(db, profile.ID)
	if err != nil {
		return err
	}
	score := algorithms.CalculateCompletenessScore(profile, int(expertiseCount), int(documentCount))
	return s.facultyRepo.UpdateCompleteness(db, profile.ID, score)
}

func (s *DocumentServiceImpl) toDocumentDTO(ctx context.Context, d *models.FacultyDocument) dto.DocumentDTO {
	result := dto.DocumentDTO{
		ID:           d.ID,
		Kind:         d.Kind,
		OriginalName: d.OriginalName,
		MimeType:     d.MimeType,
		Size:         d.Size,
		CreatedAt:    d.CreatedAt,
	}
	if url, err := s.store.GetSignedURL(ctx, d.Path, signedURLTTL); err == nil {
		result.URL = url
	}
	return result
}

func isAllowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}
