package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentia_backend/internal/config"
	"talentia_backend/internal/models"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Search.CandidateCap = 100
	cfg.Search.DoctorateKeywords = []string{"phd", "doctor", "doctorado"}
	cfg.Invitation.TTLDays = 7
	config.AppConfig = cfg
}

type searchFixture struct {
	facultyRepo     *fakeFacultyRepo
	ruleRepo        *fakeRuleRepo
	institutionRepo *fakeInstitutionRepo
	service         SearchService
	institution     *models.Institution
}

func newSearchFixture(t *testing.T) *searchFixture {
	setTestConfig(t)

	f := &searchFixture{
		facultyRepo:     &fakeFacultyRepo{},
		ruleRepo:        &fakeRuleRepo{},
		institutionRepo: &fakeInstitutionRepo{},
	}
	f.institution = f.institutionRepo.add(&models.Institution{
		UserID: "user-institution-1",
		Name:   "Universidad de Prueba",
	})
	f.service = NewSearchService(f.facultyRepo, f.ruleRepo, f.institutionRepo)
	return f
}

func (f *searchFixture) addProfile(name string, visibility models.VisibilityMode) *models.FacultyProfile {
	return f.facultyRepo.add(&models.FacultyProfile{
		UserID:     "user-" + name,
		FullName:   name,
		Visibility: visibility,
		Languages:  pq.StringArray{"Spanish"},
	})
}

func TestSearchFaculty_ExcludesHiddenProfiles(t *testing.T) {
	f := newSearchFixture(t)
	f.addProfile("Ana Garcia", models.VisibilityPublic)
	f.addProfile("Luis Perez", models.VisibilityInstitutionsOnly)
	f.addProfile("Marta Ocultada", models.VisibilityHidden)

	resp, err := f.service.SearchFaculty(nil, &dto.SearchFacultyCriteria{}, "user-institution-1")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	names := []string{resp.Results[0].FullName, resp.Results[1].FullName}
	assert.NotContains(t, names, "Marta Ocultada")
}

func TestSearchFaculty_ExcludesBlockedProfiles(t *testing.T) {
	f := newSearchFixture(t)
	visible := f.addProfile("Ana Garcia", models.VisibilityPublic)
	blocker := f.addProfile("Luis Perez", models.VisibilityPublic)
	require.NoError(t, f.ruleRepo.Create(nil, &models.VisibilityRule{
		FacultyID:     blocker.ID,
		InstitutionID: f.institution.ID,
		Rule:          "block",
	}))

	resp, err := f.service.SearchFaculty(nil, &dto.SearchFacultyCriteria{}, "user-institution-1")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, visible.ID, resp.Results[0].ID)
}

func TestSearchFaculty_BlockOnlyAffectsBlockedInstitution(t *testing.T) {
	f := newSearchFixture(t)
	profile := f.addProfile("Ana Garcia", models.VisibilityPublic)
	require.NoError(t, f.ruleRepo.Create(nil, &models.VisibilityRule{
		FacultyID:     profile.ID,
		InstitutionID: f.institution.ID,
		Rule:          "block",
	}))

	other := f.institutionRepo.add(&models.Institution{
		UserID: "user-institution-2",
		Name:   "Otra Universidad",
	})
	_ = other

	resp, err := f.service.SearchFaculty(nil, &dto.SearchFacultyCriteria{}, "user-institution-2")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestSearchFaculty_LanguageFilterIsExact(t *testing.T) {
	f := newSearchFixture(t)
	match := f.addProfile("Ana Garcia", models.VisibilityPublic)
	noMatch := f.addProfile("Luis Perez", models.VisibilityPublic)
	noMatch.Languages = pq.StringArray{"Spanish Sign Language"}

	resp, err := f.service.SearchFaculty(nil,
		&dto.SearchFacultyCriteria{Language: "Spanish"}, "user-institution-1")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, match.ID, resp.Results[0].ID)
}

func TestSearchFaculty_DoctorateOnly(t *testing.T) {
	f := newSearchFixture(t)
	phd := f.addProfile("Ana Garcia", models.VisibilityPublic)
	phd.DegreeLevel = "PhD in Physics"
	f.addProfile("Luis Perez", models.VisibilityPublic)

	resp, err := f.service.SearchFaculty(nil,
		&dto.SearchFacultyCriteria{DoctorateOnly: true}, "user-institution-1")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, phd.ID, resp.Results[0].ID)
}

func TestSearchFaculty_ModalityMatchesDeclaredOrText(t *testing.T) {
	f := newSearchFixture(t)
	declared := f.addProfile("Ana Garcia", models.VisibilityPublic)
	declared.Modalities = pq.StringArray{"online"}
	textOnly := f.addProfile("Luis Perez", models.VisibilityPublic)
	textOnly.Modalities = pq.StringArray{"in-person"}
	textOnly.Bio = "Also teaching online courses every semester."
	f.addProfile("Marta Ruiz", models.VisibilityPublic).Modalities = pq.StringArray{"in-person"}

	resp, err := f.service.SearchFaculty(nil,
		&dto.SearchFacultyCriteria{Modality: []string{"online"}}, "user-institution-1")
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, declared.ID, resp.Results[0].ID)
	assert.Equal(t, textOnly.ID, resp.Results[1].ID)
}

func TestSearchFaculty_FiltersOnlyNarrow(t *testing.T) {
	// Adding criteria must never surface a profile the unfiltered search
	// would not return.
	f := newSearchFixture(t)
	f.addProfile("Ana Garcia", models.VisibilityPublic)
	blocked := f.addProfile("Luis Perez", models.VisibilityPublic)
	f.addProfile("Marta Ocultada", models.VisibilityHidden)
	require.NoError(t, f.ruleRepo.Create(nil, &models.VisibilityRule{
		FacultyID:     blocked.ID,
		InstitutionID: f.institution.ID,
		Rule:          "block",
	}))

	unfiltered, err := f.service.SearchFaculty(nil, &dto.SearchFacultyCriteria{}, "user-institution-1")
	require.NoError(t, err)

	baseline := make(map[string]bool)
	for _, r := range unfiltered.Results {
		baseline[r.ID] = true
	}

	criteria := []*dto.SearchFacultyCriteria{
		{Language: "Spanish"},
		{Query: "Garcia"},
		{DoctorateOnly: true},
		{Language: "Spanish", Query: "Perez", DoctorateOnly: true},
	}
	for _, c := range criteria {
		resp, err := f.service.SearchFaculty(nil, c, "user-institution-1")
		require.NoError(t, err)
		assert.LessOrEqual(t, resp.Total, unfiltered.Total)
		for _, r := range resp.Results {
			assert.True(t, baseline[r.ID], "filtered search surfaced profile %s missing from baseline", r.ID)
		}
	}
}

func TestSearchFaculty_PreservesCandidateOrder(t *testing.T) {
	f := newSearchFixture(t)
	first := f.addProfile("Ana Garcia", models.VisibilityPublic)
	second := f.addProfile("Luis Perez", models.VisibilityPublic)
	third := f.addProfile("Carmen Soto", models.VisibilityPublic)

	resp, err := f.service.SearchFaculty(nil, &dto.SearchFacultyCriteria{}, "user-institution-1")
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{resp.Results[0].ID, resp.Results[1].ID, resp.Results[2].ID})
}

func TestSearchFaculty_UnknownInstitutionUser(t *testing.T) {
	f := newSearchFixture(t)

	_, err := f.service.SearchFaculty(nil, &dto.SearchFacultyCriteria{}, "user-nobody")
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}
