package models

type UserStatus string
type UserRole string
type VisibilityMode string
type MembershipTier string
type ContactStatus string
type InstitutionStatus string
type InvitationStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleFaculty     UserRole = "faculty"
	UserRoleInstitution UserRole = "institution"
	UserRoleAdmin       UserRole = "admin"

	VisibilityPublic           VisibilityMode = "public"
	VisibilityInstitutionsOnly VisibilityMode = "institutions_only"
	VisibilityHidden           VisibilityMode = "hidden"

	TierBasic        MembershipTier = "basic"
	TierProfessional MembershipTier = "professional"

	ContactStatusSent     ContactStatus = "sent"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"

	InstitutionStatusTrial     InstitutionStatus = "trial"
	InstitutionStatusActive    InstitutionStatus = "active"
	InstitutionStatusSuspended InstitutionStatus = "suspended"

	InvitationStatusActive  InvitationStatus = "active"
	InvitationStatusExpired InvitationStatus = "expired"
	InvitationStatusRevoked InvitationStatus = "revoked"
)

// AccessLevel is what a visibility decision grants the viewer, not a stored
// column. "none" means the profile must look nonexistent to the viewer.
type AccessLevel string

const (
	AccessNone    AccessLevel = "none"
	AccessLimited AccessLevel = "limited"
	AccessFull    AccessLevel = "full"
)
