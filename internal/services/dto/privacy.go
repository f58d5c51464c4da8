package dto

import (
	"time"

	"talentia_backend/internal/models"
)

type UpdateVisibilityRequest struct {
	Visibility string `json:"visibility" validate:"required,is-visibility-mode"`
}

type VisibilityResponse struct {
	Visibility     models.VisibilityMode `json:"visibility"`
	MembershipTier models.MembershipTier `json:"membership_tier"`
}

type CreateBlockRequest struct {
	InstitutionID string `json:"institution_id" validate:"required,uuid"`
}

type BlockDTO struct {
	ID              string    `json:"id"`
	InstitutionID   string    `json:"institution_id"`
	InstitutionName string    `json:"institution_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateInvitationRequest struct {
	InstitutionID string `json:"institution_id" validate:"required,uuid"`
}

type InvitationDTO struct {
	ID            string                  `json:"id"`
	InstitutionID string                  `json:"institution_id"`
	Token         string                  `json:"token"`
	Status        models.InvitationStatus `json:"status"`
	ExpiresAt     time.Time               `json:"expires_at"`
	CreatedAt     time.Time               `json:"created_at"`
}

func NewInvitationDTO(inv *models.Invitation, now time.Time) InvitationDTO {
	return InvitationDTO{
		ID:            inv.ID,
		InstitutionID: inv.InstitutionID,
		Token:         inv.Token,
		Status:        inv.Status(now),
		ExpiresAt:     inv.ExpiresAt,
		CreatedAt:     inv.CreatedAt,
	}
}
