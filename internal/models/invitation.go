package models

import "time"

// Invitation grants one institution direct access to a faculty profile,
// bypassing visibility mode and block rules while it is live.
type Invitation struct {
	BaseModel
	FacultyID     string    `gorm:"not null;index"`
	InstitutionID string    `gorm:"not null;index"`
	Token         string    `gorm:"type:uuid;uniqueIndex;not null"`
	ExpiresAt     time.Time `gorm:"not null"`
	RevokedAt     *time.Time
}

func (i *Invitation) IsLive(now time.Time) bool {
	return i.RevokedAt == nil && now.Before(i.ExpiresAt)
}

func (i *Invitation) Status(now time.Time) InvitationStatus {
	switch {
	case i.RevokedAt != nil:
		return InvitationStatusRevoked
	case !now.Before(i.ExpiresAt):
		return InvitationStatusExpired
	default:
		return InvitationStatusActive
	}
}
