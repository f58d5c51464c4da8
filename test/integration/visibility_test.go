package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentia_backend/test/helpers"
)

func TestDirectory_AnonymousSeesLimitedCard(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	require.NoError(t, ts.DB.Model(profile).Update("bio", "A long private biography").Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/directory/"+profile.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, profile.FullName)
	assert.NotContains(t, bodyStr, "A long private biography")
}

func TestDirectory_InstitutionSeesFullProfile(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	require.NoError(t, ts.DB.Model(profile).Update("bio", "Full biography text for institutions").Error)
	instToken, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/directory/"+profile.ID, instToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Full biography text for institutions")
}

func TestDirectory_HiddenProfileIs404(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/faculty/privacy/visibility", facultyToken,
		map[string]interface{}{"visibility": "hidden"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	for _, token := range []string{"", instToken} {
		res, _ := ts.SendRequest(t, "GET", "/api/v1/directory/"+profile.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	}
}

func TestDirectory_InstitutionsOnlyMode(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/faculty/privacy/visibility", facultyToken,
		map[string]interface{}{"visibility": "institutions_only"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	anonRes, _ := ts.SendRequest(t, "GET", "/api/v1/directory/"+profile.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, anonRes.StatusCode)

	instRes, _ := ts.SendRequest(t, "GET", "/api/v1/directory/"+profile.ID, instToken, nil)
	assert.Equal(t, http.StatusOK, instRes.StatusCode)
}

func TestBlocks_ProfessionalTierGate(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	_, _, institution := helpers.CreateAndLoginInstitution(t, ts)

	body := map[string]interface{}{"institution_id": institution.ID}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/faculty/privacy/blocks", facultyToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	require.NoError(t, ts.DB.Model(profile).Update("membership_tier", "professional").Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/faculty/privacy/blocks", facultyToken, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
}

func TestBlock_HidesProfileFromBlockedInstitution(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, institution := helpers.CreateAndLoginInstitution(t, ts)
	require.NoError(t, ts.DB.Model(profile).Update("membership_tier", "professional").Error)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/faculty/privacy/blocks", facultyToken,
		map[string]interface{}{"institution_id": institution.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	blockedRes, _ := ts.SendRequest(t, "GET", "/api/v1/directory/"+profile.ID, instToken, nil)
	assert.Equal(t, http.StatusNotFound, blockedRes.StatusCode)

	// Blocking one institution leaves the public card alone.
	anonRes, _ := ts.SendRequest(t, "GET", "/api/v1/directory/"+profile.ID, "", nil)
	assert.Equal(t, http.StatusOK, anonRes.StatusCode)
}

func TestInvitation_GrantsAccessUntilRevoked(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, institution := helpers.CreateAndLoginInstitution(t, ts)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/faculty/privacy/visibility", facultyToken,
		map[string]interface{}{"visibility": "hidden"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/faculty/privacy/invitations", facultyToken,
		map[string]interface{}{"institution_id": institution.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var invitation struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &invitation))

	viewPath := "/api/v1/directory/" + profile.ID + "?invitation_token=" + invitation.Token
	viewRes, _ := ts.SendRequest(t, "GET", viewPath, instToken, nil)
	assert.Equal(t, http.StatusOK, viewRes.StatusCode)

	revokeRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/faculty/privacy/invitations/"+invitation.ID, facultyToken, nil)
	require.Equal(t, http.StatusOK, revokeRes.StatusCode)

	viewRes, _ = ts.SendRequest(t, "GET", viewPath, instToken, nil)
	assert.Equal(t, http.StatusNotFound, viewRes.StatusCode)
}
