package dto

import (
	"time"

	"talentia_backend/internal/models"
)

type CreateContactRequest struct {
	FacultyID       string `json:"faculty_id" validate:"required,uuid"`
	Subject         string `json:"subject" validate:"required,min=3,max=200"`
	Modality        string `json:"modality,omitempty" validate:"omitempty,max=100"`
	Dates           string `json:"dates,omitempty" validate:"omitempty,max=500"`
	Message         string `json:"message" validate:"required,min=10,max=4000"`
	InvitationToken string `json:"invitation_token,omitempty"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,is-contact-status"`
}

type ContactDTO struct {
	ID              string               `json:"id"`
	FacultyID       string               `json:"faculty_id"`
	InstitutionID   string               `json:"institution_id"`
	InstitutionName string               `json:"institution_name,omitempty"`
	Subject         string               `json:"subject"`
	Modality        string               `json:"modality,omitempty"`
	Dates           string               `json:"dates,omitempty"`
	Message         string               `json:"message"`
	Status          models.ContactStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func NewContactDTO(c *models.Contact) ContactDTO {
	d := ContactDTO{
		ID:            c.ID,
		FacultyID:     c.FacultyID,
		InstitutionID: c.InstitutionID,
		Subject:       c.Subject,
		Modality:      c.Modality,
		Dates:         c.Dates,
		Message:       c.Message,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.Institution != nil {
		d.InstitutionName = c.Institution.Name
	}
	return d
}

type FavoriteDTO struct {
	FacultyID string    `json:"faculty_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ToggleFavoriteResponse struct {
	FacultyID string `json:"faculty_id"`
	Favorited bool   `json:"favorited"`
}
