package algorithms

import (
	"time"

	"talentia_backend/internal/models"
)

// Viewer describes who is asking to see a profile. A nil Viewer (or one
// with an empty UserID) is an anonymous visitor.
type Viewer struct {
	UserID        string
	Role          models.UserRole
	InstitutionID string // set when Role is institution
}

// Decision is the outcome of a visibility resolution.
type Decision struct {
	Visible bool
	Level   models.AccessLevel
}

var denied = Decision{Visible: false, Level: models.AccessNone}

// ResolveVisibility decides whether viewer may see the profile and at what
// level. Pure function: every input it needs is a parameter, it is evaluated
// fresh on each call and must never be cached.
//
// Precedence, highest first: owner, live invitation, hidden mode, block
// rule, visibility mode. Unknown or empty modes deny; a mistake here must
// hide a profile, not expose one.
func ResolveVisibility(
	profile *models.FacultyProfile,
	viewer *Viewer,
	invitation *models.Invitation,
	blocked bool,
	now time.Time,
) Decision {
	if profile == nil {
		return denied
	}

	// The owner always sees their own profile, whatever its mode.
	if viewer != nil && viewer.UserID != "" && viewer.UserID == profile.UserID {
		return Decision{Visible: true, Level: models.AccessFull}
	}

	// A live invitation overrides both the mode and any block rule, but
	// only for the institution it was issued to.
	if invitation != nil && viewer != nil && viewer.Role == models.UserRoleInstitution &&
		invitation.FacultyID == profile.ID &&
		invitation.InstitutionID == viewer.InstitutionID &&
		invitation.IsLive(now) {
		return Decision{Visible: true, Level: models.AccessFull}
	}

	// Block rules only make sense for institution viewers; an anonymous
	// visitor cannot be identified, so a public profile stays public to
	// them even when every institution is blocked.
	if blocked && viewer != nil && viewer.Role == models.UserRoleInstitution {
		return denied
	}

	switch profile.Visibility {
	case models.VisibilityPublic:
		if viewer != nil && viewer.Role == models.UserRoleInstitution {
			return Decision{Visible: true, Level: models.AccessFull}
		}
		return Decision{Visible: true, Level: models.AccessLimited}
	case models.VisibilityInstitutionsOnly:
		if viewer != nil && viewer.Role == models.UserRoleInstitution {
			return Decision{Visible: true, Level: models.AccessFull}
		}
		return denied
	case models.VisibilityHidden:
		return denied
	default:
		// Unknown mode, fail closed.
		return denied
	}
}
