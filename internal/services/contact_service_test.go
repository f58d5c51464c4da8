package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentia_backend/internal/models"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type contactFixture struct {
	contactRepo      *fakeContactRepo
	facultyRepo      *fakeFacultyRepo
	institutionRepo  *fakeInstitutionRepo
	userRepo         *fakeUserRepo
	notificationRepo *fakeNotificationRepo
	ruleRepo         *fakeRuleRepo
	invitationRepo   *fakeInvitationRepo
	emailProvider    *fakeEmailProvider
	service          ContactService
	profile          *models.FacultyProfile
	institution      *models.Institution
}

func newContactFixture(t *testing.T) *contactFixture {
	setTestConfig(t)

	f := &contactFixture{
		contactRepo:      &fakeContactRepo{},
		facultyRepo:      &fakeFacultyRepo{},
		institutionRepo:  &fakeInstitutionRepo{},
		userRepo:         &fakeUserRepo{},
		notificationRepo: &fakeNotificationRepo{},
		ruleRepo:         &fakeRuleRepo{},
		invitationRepo:   &fakeInvitationRepo{},
		emailProvider:    &fakeEmailProvider{},
	}
	f.profile = f.facultyRepo.add(&models.FacultyProfile{
		UserID:     "user-faculty-1",
		FullName:   "Dr. Elena Ruiz",
		Visibility: models.VisibilityPublic,
	})
	f.institution = f.institutionRepo.add(&models.Institution{
		UserID: "user-institution-1",
		Name:   "Universidad de Prueba",
	})
	f.userRepo.users = append(f.userRepo.users, &models.User{
		BaseModel: models.BaseModel{ID: "user-faculty-1"},
		Email:     "elena@example.com",
		Role:      models.UserRoleFaculty,
	})

	visibilityService := NewVisibilityService(f.facultyRepo, f.ruleRepo, f.invitationRepo, f.institutionRepo)
	f.service = NewContactService(
		f.contactRepo, f.facultyRepo, f.institutionRepo, f.userRepo,
		f.notificationRepo, visibilityService, f.emailProvider)
	return f
}

func contactRequest(facultyID string) *dto.CreateContactRequest {
	return &dto.CreateContactRequest{
		FacultyID: facultyID,
		Subject:   "Curso de IA aplicada",
		Modality:  "online",
		Dates:     "2026-10-01 to 2026-12-20",
		Message:   "We would like to discuss a teaching engagement.",
	}
}

func TestCreateContact_HappyPath(t *testing.T) {
	f := newContactFixture(t)

	contact, err := f.service.CreateContact(nil, f.institution.UserID, contactRequest(f.profile.ID))
	require.NoError(t, err)

	assert.Equal(t, models.ContactStatusSent, contact.Status)
	assert.Equal(t, f.institution.Name, contact.InstitutionName)

	// The faculty owner is notified.
	assert.Equal(t, 1, f.notificationRepo.contactCalls)
	count, err := f.notificationRepo.GetUnreadCount(nil, f.profile.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateContact_RequiresVisibleProfile(t *testing.T) {
	f := newContactFixture(t)
	f.profile.Visibility = models.VisibilityHidden

	_, err := f.service.CreateContact(nil, f.institution.UserID, contactRequest(f.profile.ID))
	assert.ErrorIs(t, err, apperrors.ErrProfileNotVisible)

	// A missing profile renders the same error shape.
	_, err = f.service.CreateContact(nil, f.institution.UserID, contactRequest("no-such-profile"))
	assert.ErrorIs(t, err, apperrors.ErrProfileNotVisible)
}

func TestCreateContact_BlockedInstitutionDenied(t *testing.T) {
	f := newContactFixture(t)
	require.NoError(t, f.ruleRepo.Create(nil, &models.VisibilityRule{
		FacultyID:     f.profile.ID,
		InstitutionID: f.institution.ID,
		Rule:          "block",
	}))

	_, err := f.service.CreateContact(nil, f.institution.UserID, contactRequest(f.profile.ID))
	assert.ErrorIs(t, err, apperrors.ErrProfileNotVisible)
	assert.Empty(t, f.contactRepo.contacts)
}

func TestCreateContact_InvitationTokenOpensHiddenProfile(t *testing.T) {
	f := newContactFixture(t)
	f.profile.Visibility = models.VisibilityHidden

	invitation := &models.Invitation{
		FacultyID:     f.profile.ID,
		InstitutionID: f.institution.ID,
		Token:         "token-1",
		ExpiresAt:     time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, f.invitationRepo.Create(nil, invitation))

	req := contactRequest(f.profile.ID)
	req.InvitationToken = "token-1"

	contact, err := f.service.CreateContact(nil, f.institution.UserID, req)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusSent, contact.Status)
}

func TestUpdateContactStatus_Transitions(t *testing.T) {
	f := newContactFixture(t)

	contact, err := f.service.CreateContact(nil, f.institution.UserID, contactRequest(f.profile.ID))
	require.NoError(t, err)

	updated, err := f.service.UpdateStatus(nil, f.profile.UserID, contact.ID, models.ContactStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReplied, updated.Status)

	// replied and archived are terminal.
	_, err = f.service.UpdateStatus(nil, f.profile.UserID, contact.ID, models.ContactStatusArchived)
	assert.ErrorIs(t, err, apperrors.ErrContactClosed)
}

func TestUpdateContactStatus_RejectsSent(t *testing.T) {
	f := newContactFixture(t)

	contact, err := f.service.CreateContact(nil, f.institution.UserID, contactRequest(f.profile.ID))
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(nil, f.profile.UserID, contact.ID, models.ContactStatusSent)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUpdateContactStatus_OtherFacultyLooksMissing(t *testing.T) {
	f := newContactFixture(t)
	f.facultyRepo.add(&models.FacultyProfile{
		UserID:     "user-faculty-2",
		FullName:   "Dr. Pablo Vega",
		Visibility: models.VisibilityPublic,
	})

	contact, err := f.service.CreateContact(nil, f.institution.UserID, contactRequest(f.profile.ID))
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(nil, "user-faculty-2", contact.ID, models.ContactStatusReplied)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListContacts_BothSides(t *testing.T) {
	f := newContactFixture(t)

	_, err := f.service.CreateContact(nil, f.institution.UserID, contactRequest(f.profile.ID))
	require.NoError(t, err)

	received, err := f.service.ListForFaculty(nil, f.profile.UserID)
	require.NoError(t, err)
	assert.Len(t, received, 1)

	sent, err := f.service.ListForInstitution(nil, f.institution.UserID)
	require.NoError(t, err)
	assert.Len(t, sent, 1)
}
