package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"talentia_backend/internal/models"
)

// registerCustomRules installs the domain validation tags on the
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect,
			// the application must not run without it.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-visibility-mode", validateVisibilityMode)
	mustRegister("is-membership-tier", validateMembershipTier)
	mustRegister("is-contact-status", validateContactStatus)
}

// Empty values pass every rule; 'required' is a separate concern.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleFaculty, models.UserRoleInstitution, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateVisibilityMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.VisibilityMode(value) {
	case models.VisibilityPublic, models.VisibilityInstitutionsOnly, models.VisibilityHidden:
		return true
	default:
		return false
	}
}

func validateMembershipTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.MembershipTier(value) {
	case models.TierBasic, models.TierProfessional:
		return true
	default:
		return false
	}
}

// validateContactStatus accepts only the statuses a faculty member may set;
// "sent" is assigned by the system at creation and never by a client.
func validateContactStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ContactStatus(value) {
	case models.ContactStatusReplied, models.ContactStatusArchived:
		return true
	default:
		return false
	}
}
