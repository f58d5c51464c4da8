package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentia_backend/test/helpers"
)

func TestGetOwnProfile(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	token, _, profile := helpers.CreateAndLoginFaculty(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/faculty/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, profile.FullName)
}

func TestUpdateProfile_RecomputesCompleteness(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	token, _, _ := helpers.CreateAndLoginFaculty(t, ts)

	_, beforeStr := ts.SendRequest(t, "GET", "/api/v1/faculty/profile", token, nil)
	var before struct {
		CompletenessScore int `json:"completeness_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(beforeStr), &before))

	updateBody := map[string]interface{}{
		"bio":              "Over a decade of teaching experience in computer science, with a focus on applied machine learning.",
		"degree_level":     "PhD",
		"research_summary": "Neural network interpretability.",
		"languages":        []string{"Spanish", "English"},
		"modalities":       []string{"online"},
	}
	res, afterStr := ts.SendRequest(t, "PUT", "/api/v1/faculty/profile", token, updateBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var after struct {
		CompletenessScore int `json:"completeness_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(afterStr), &after))
	assert.Greater(t, after.CompletenessScore, before.CompletenessScore)
}

func TestExpertiseLifecycle(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	token, _, _ := helpers.CreateAndLoginFaculty(t, ts)

	addBody := map[string]interface{}{
		"area":    "Computer Science",
		"subarea": "Machine Learning",
		"topics":  []string{"neural networks", "NLP"},
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/faculty/expertise", token, addBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var entry struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &entry))
	require.NotEmpty(t, entry.ID)

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/faculty/expertise/"+entry.ID, token, nil)
	assert.Equal(t, http.StatusOK, delRes.StatusCode)

	// Deleting twice reads as missing.
	delRes, _ = ts.SendRequest(t, "DELETE", "/api/v1/faculty/expertise/"+entry.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, delRes.StatusCode)
}

func TestProfileRoutes_RejectInstitutionRole(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	token, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/faculty/profile", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
