package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"talentia_backend/internal/email"
	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
)

// In-memory repository fakes. The db argument is ignored everywhere; tests
// pass nil and assert on service behavior alone.

type fakeFacultyRepo struct {
	profiles []*models.FacultyProfile
	nextID   int
}

func (r *fakeFacultyRepo) add(p *models.FacultyProfile) *models.FacultyProfile {
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("profile-%d", r.nextID)
	}
	r.profiles = append(r.profiles, p)
	return p
}

func (r *fakeFacultyRepo) Create(db *gorm.DB, profile *models.FacultyProfile) error {
	r.add(profile)
	return nil
}

func (r *fakeFacultyRepo) FindByID(db *gorm.DB, id string) (*models.FacultyProfile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeFacultyRepo) FindByUserID(db *gorm.DB, userID string) (*models.FacultyProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeFacultyRepo) Update(db *gorm.DB, profile *models.FacultyProfile) error {
	return nil
}

func (r *fakeFacultyRepo) UpdateVisibility(db *gorm.DB, profileID string, mode models.VisibilityMode) error {
	p, err := r.FindByID(db, profileID)
	if err != nil {
		return err
	}
	p.Visibility = mode
	return nil
}

func (r *fakeFacultyRepo) UpdateCompleteness(db *gorm.DB, profileID string, score int) error {
	p, err := r.FindByID(db, profileID)
	if err != nil {
		return err
	}
	p.CompletenessScore = score
	return nil
}

func (r *fakeFacultyRepo) IncrementProfileViews(db *gorm.DB, profileID string) error {
	p, err := r.FindByID(db, profileID)
	if err != nil {
		return err
	}
	p.ProfileViews++
	return nil
}

func (r *fakeFacultyRepo) SearchFacultyProfiles(db *gorm.DB, criteria repositories.FacultySearchCriteria) ([]models.FacultyProfile, error) {
	limit := criteria.Limit
	if limit <= 0 {
		limit = 100
	}

	var out []models.FacultyProfile
	for _, p := range r.profiles {
		if p.Visibility != models.VisibilityPublic && p.Visibility != models.VisibilityInstitutionsOnly {
			continue
		}
		if criteria.Query != "" {
			haystack := strings.ToLower(p.FullName + " " + p.Headline + " " + p.Bio)
			if !strings.Contains(haystack, strings.ToLower(criteria.Query)) {
				continue
			}
		}
		if criteria.Country != "" && p.Country != criteria.Country {
			continue
		}
		if criteria.Accreditation != "" && (p.AnecaAccreditation == nil || *p.AnecaAccreditation != criteria.Accreditation) {
			continue
		}
		out = append(out, *p)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeFacultyRepo) CountAll(db *gorm.DB) (int64, error) {
	return int64(len(r.profiles)), nil
}

type fakeRuleRepo struct {
	rules  []*models.VisibilityRule
	nextID int
}

func (r *fakeRuleRepo) Create(db *gorm.DB, rule *models.VisibilityRule) error {
	for _, existing := range r.rules {
		if existing.FacultyID == rule.FacultyID && existing.InstitutionID == rule.InstitutionID {
			return repositories.ErrRuleAlreadyExists
		}
	}
	r.nextID++
	rule.ID = fmt.Sprintf("rule-%d", r.nextID)
	r.rules = append(r.rules, rule)
	return nil
}

func (r *fakeRuleRepo) FindByID(db *gorm.DB, id string) (*models.VisibilityRule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, repositories.ErrRuleNotFound
}

func (r *fakeRuleRepo) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.VisibilityRule, error) {
	var out []models.VisibilityRule
	for _, rule := range r.rules {
		if rule.FacultyID == facultyID {
			out = append(out, *rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) IsBlocked(db *gorm.DB, facultyID, institutionID string) (bool, error) {
	for _, rule := range r.rules {
		if rule.FacultyID == facultyID && rule.InstitutionID == institutionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRuleRepo) FindBlockedFacultyIDs(db *gorm.DB, institutionID string) ([]string, error) {
	var out []string
	for _, rule := range r.rules {
		if rule.InstitutionID == institutionID {
			out = append(out, rule.FacultyID)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) Delete(db *gorm.DB, id string) error {
	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return repositories.ErrRuleNotFound
}

type fakeInstitutionRepo struct {
	institutions []*models.Institution
	nextID       int
}

func (r *fakeInstitutionRepo) add(inst *models.Institution) *models.Institution {
	if inst.ID == "" {
		r.nextID++
		inst.ID = fmt.Sprintf("institution-%d", r.nextID)
	}
	r.institutions = append(r.institutions, inst)
	return inst
}

func (r *fakeInstitutionRepo) Create(db *gorm.DB, institution *models.Institution) error {
	r.add(institution)
	return nil
}

func (r *fakeInstitutionRepo) FindByID(db *gorm.DB, id string) (*models.Institution, error) {
	for _, inst := range r.institutions {
		if inst.ID == id {
			return inst, nil
		}
	}
	return nil, repositories.ErrInstitutionNotFound
}

func (r *fakeInstitutionRepo) FindByUserID(db *gorm.DB, userID string) (*models.Institution, error) {
	for _, inst := range r.institutions {
		if inst.UserID == userID {
			return inst, nil
		}
	}
	return nil, repositories.ErrInstitutionNotFound
}

func (r *fakeInstitutionRepo) Update(db *gorm.DB, institution *models.Institution) error {
	return nil
}

func (r *fakeInstitutionRepo) Verify(db *gorm.DB, institutionID string) error {
	inst, err := r.FindByID(db, institutionID)
	if err != nil {
		return err
	}
	inst.IsVerified = true
	inst.Status = models.InstitutionStatusActive
	return nil
}

func (r *fakeInstitutionRepo) CountAll(db *gorm.DB) (int64, error) {
	return int64(len(r.institutions)), nil
}

type fakeInvitationRepo struct {
	invitations []*models.Invitation
	nextID      int
}

func (r *fakeInvitationRepo) Create(db *gorm.DB, invitation *models.Invitation) error {
	r.nextID++
	invitation.ID = fmt.Sprintf("invitation-%d", r.nextID)
	r.invitations = append(r.invitations, invitation)
	return nil
}

func (r *fakeInvitationRepo) FindByID(db *gorm.DB, id string) (*models.Invitation, error) {
	for _, inv := range r.invitations {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, repositories.ErrInvitationNotFound
}

func (r *fakeInvitationRepo) FindByToken(db *gorm.DB, token string) (*models.Invitation, error) {
	for _, inv := range r.invitations {
		if inv.Token == token {
			return inv, nil
		}
	}
	return nil, repositories.ErrInvitationNotFound
}

func (r *fakeInvitationRepo) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.Invitation, error) {
	var out []models.Invitation
	for _, inv := range r.invitations {
		if inv.FacultyID == facultyID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) Revoke(db *gorm.DB, id string, at time.Time) error {
	inv, err := r.FindByID(db, id)
	if err != nil {
		return err
	}
	if inv.RevokedAt != nil {
		return repositories.ErrInvitationNotFound
	}
	inv.RevokedAt = &at
	return nil
}

func (r *fakeInvitationRepo) DeleteExpiredBefore(db *gorm.DB, cutoff time.Time) (int64, error) {
	var kept []*models.Invitation
	var deleted int64
	for _, inv := range r.invitations {
		if inv.ExpiresAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, inv)
	}
	r.invitations = kept
	return deleted, nil
}

type fakeContactRepo struct {
	contacts []*models.Contact
	nextID   int
}

func (r *fakeContactRepo) Create(db *gorm.DB, contact *models.Contact) error {
	r.nextID++
	contact.ID = fmt.Sprintf("contact-%d", r.nextID)
	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *fakeContactRepo) FindByID(db *gorm.DB, id string) (*models.Contact, error) {
	for _, c := range r.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrContactNotFound
}

func (r *fakeContactRepo) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range r.contacts {
		if c.FacultyID == facultyID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) FindByInstitutionID(db *gorm.DB, institutionID string) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range r.contacts {
		if c.InstitutionID == institutionID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) UpdateStatus(db *gorm.DB, id string, status models.ContactStatus) error {
	c, err := r.FindByID(db, id)
	if err != nil {
		return err
	}
	c.Status = status
	return nil
}

type fakeFavoriteRepo struct {
	favorites []*models.Favorite
}

func (r *fakeFavoriteRepo) Find(db *gorm.DB, institutionID, facultyID string) (*models.Favorite, error) {
	for _, f := range r.favorites {
		if f.InstitutionID == institutionID && f.FacultyID == facultyID {
			return f, nil
		}
	}
	return nil, repositories.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) Create(db *gorm.DB, favorite *models.Favorite) error {
	r.favorites = append(r.favorites, favorite)
	return nil
}

func (r *fakeFavoriteRepo) Delete(db *gorm.DB, institutionID, facultyID string) error {
	for i, f := range r.favorites {
		if f.InstitutionID == institutionID && f.FacultyID == facultyID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return repositories.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) FindByInstitutionID(db *gorm.DB, institutionID string) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, f := range r.favorites {
		if f.InstitutionID == institutionID {
			out = append(out, *f)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	contactCalls  int
}

func (r *fakeNotificationRepo) Create(db *gorm.DB, notification *models.Notification) error {
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) FindByUserID(db *gorm.DB, userID string, limit, offset int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(db *gorm.DB, id string) error {
	return nil
}

func (r *fakeNotificationRepo) GetUnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) CreateContactNotification(db *gorm.DB, userID, contactID, institutionID, institutionName string) error {
	r.contactCalls++
	r.notifications = append(r.notifications, &models.Notification{
		UserID: userID,
		Type:   repositories.NotificationTypeRequest,
		Title:  "New contact request",
	})
	return nil
}

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, emailAddr string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == emailAddr {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) Update(db *gorm.DB, user *models.User) error { return nil }

func (r *fakeUserRepo) UpdateStatus(db *gorm.DB, userID string, status models.UserStatus) error {
	return nil
}

func (r *fakeUserRepo) VerifyUser(db *gorm.DB, userID string) error { return nil }

func (r *fakeUserRepo) FindByVerificationToken(db *gorm.DB, token string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(db *gorm.DB, token string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) CountByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) FindRecent(db *gorm.DB, since time.Time, limit int) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error { return nil }

func (r *fakeUserRepo) FindRefreshToken(db *gorm.DB, token string) (*models.RefreshToken, error) {
	return nil, repositories.ErrRefreshTokenNotFound
}

func (r *fakeUserRepo) DeleteRefreshToken(db *gorm.DB, token string) error { return nil }

func (r *fakeUserRepo) DeleteUserRefreshTokens(db *gorm.DB, userID string) error { return nil }

func (r *fakeUserRepo) CleanExpiredRefreshTokens(db *gorm.DB) (int64, error) { return 0, nil }

type fakeEmailProvider struct {
	sent []string // template names
}

func (p *fakeEmailProvider) Send(msg *email.Email) error { return nil }

func (p *fakeEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	p.sent = append(p.sent, templateName)
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }
func (p *fakeEmailProvider) Close() error    { return nil }
