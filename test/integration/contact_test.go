package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentia_backend/test/helpers"
)

func TestContactFlow(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	createBody := map[string]interface{}{
		"faculty_id": profile.ID,
		"subject":    "Guest lecture invitation",
		"modality":   "online",
		"message":    "We would like to invite you for a guest lecture series.",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/contacts", instToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var contact struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &contact))
	assert.Equal(t, "sent", contact.Status)

	// Both sides see the request.
	sentRes, sentBody := ts.SendRequest(t, "GET", "/api/v1/contacts", instToken, nil)
	assert.Equal(t, http.StatusOK, sentRes.StatusCode)
	assert.Contains(t, sentBody, contact.ID)

	recvRes, recvBody := ts.SendRequest(t, "GET", "/api/v1/faculty/requests", facultyToken, nil)
	assert.Equal(t, http.StatusOK, recvRes.StatusCode)
	assert.Contains(t, recvBody, contact.ID)

	// The faculty closes it; a second transition is rejected.
	upRes, upBody := ts.SendRequest(t, "PUT", "/api/v1/faculty/requests/"+contact.ID+"/status",
		facultyToken, map[string]interface{}{"status": "replied"})
	require.Equal(t, http.StatusOK, upRes.StatusCode, upBody)
	assert.Contains(t, upBody, "replied")

	upRes, _ = ts.SendRequest(t, "PUT", "/api/v1/faculty/requests/"+contact.ID+"/status",
		facultyToken, map[string]interface{}{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, upRes.StatusCode)
}

func TestContact_HiddenProfileCannotBeContacted(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/faculty/privacy/visibility", facultyToken,
		map[string]interface{}{"visibility": "hidden"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/contacts", instToken, map[string]interface{}{
		"faculty_id": profile.ID,
		"subject":    "Guest lecture invitation",
		"message":    "We would like to invite you for a guest lecture series.",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestContact_CreatesNotification(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	facultyToken, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/contacts", instToken, map[string]interface{}{
		"faculty_id": profile.ID,
		"subject":    "Curriculum review",
		"message":    "Could you help us review our new master's curriculum?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	notifRes, notifBody := ts.SendRequest(t, "GET", "/api/v1/notifications", facultyToken, nil)
	assert.Equal(t, http.StatusOK, notifRes.StatusCode)
	assert.Contains(t, notifBody, `"type":"request"`)
}

func TestFavoriteToggle(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, _, profile := helpers.CreateAndLoginFaculty(t, ts)
	instToken, _, _ := helpers.CreateAndLoginInstitution(t, ts)

	path := "/api/v1/favorites/" + profile.ID + "/toggle"

	res, bodyStr := ts.SendRequest(t, "POST", path, instToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"favorited":true`)

	listRes, listBody := ts.SendRequest(t, "GET", "/api/v1/favorites", instToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBody, profile.ID)

	res, bodyStr = ts.SendRequest(t, "POST", path, instToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"favorited":false`)
}
